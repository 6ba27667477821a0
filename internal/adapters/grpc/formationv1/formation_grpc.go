// Package formationv1 は formation.v1.FormationService のサービス定義です。
// メッセージには protobuf の well-known types を使い、コード生成を必要としません。
package formationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName はサービスの完全修飾名です。
const ServiceName = "formation.v1.FormationService"

const (
	FormationService_GenerateDocument_FullMethodName = "/" + ServiceName + "/GenerateDocument"
	FormationService_GetFiling_FullMethodName        = "/" + ServiceName + "/GetFiling"
	FormationService_ListFilings_FullMethodName      = "/" + ServiceName + "/ListFilings"
)

// レスポンスヘッダーのキー。
const (
	HeaderFilingID     = "x-filing-id"
	HeaderDocumentKind = "x-document-kind"
)

// FormationServiceClient は FormationService のクライアント API です。
type FormationServiceClient interface {
	GenerateDocument(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	GetFiling(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	ListFilings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type formationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFormationServiceClient は接続からクライアントを生成します。
func NewFormationServiceClient(cc grpc.ClientConnInterface) FormationServiceClient {
	return &formationServiceClient{cc: cc}
}

func (c *formationServiceClient) GenerateDocument(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, FormationService_GenerateDocument_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *formationServiceClient) GetFiling(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, FormationService_GetFiling_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *formationServiceClient) ListFilings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FormationService_ListFilings_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FormationServiceServer はサーバー側で実装する API です。
type FormationServiceServer interface {
	GenerateDocument(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
	GetFiling(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	ListFilings(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedFormationServiceServer は前方互換のために埋め込みます。
type UnimplementedFormationServiceServer struct{}

func (UnimplementedFormationServiceServer) GenerateDocument(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateDocument not implemented")
}

func (UnimplementedFormationServiceServer) GetFiling(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFiling not implemented")
}

func (UnimplementedFormationServiceServer) ListFilings(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFilings not implemented")
}

// RegisterFormationServiceServer はサービスを gRPC サーバーへ登録します。
func RegisterFormationServiceServer(s grpc.ServiceRegistrar, srv FormationServiceServer) {
	s.RegisterService(&FormationService_ServiceDesc, srv)
}

func generateDocumentHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FormationServiceServer).GenerateDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FormationService_GenerateDocument_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FormationServiceServer).GenerateDocument(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getFilingHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FormationServiceServer).GetFiling(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FormationService_GetFiling_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FormationServiceServer).GetFiling(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listFilingsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FormationServiceServer).ListFilings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FormationService_ListFilings_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FormationServiceServer).ListFilings(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// FormationService_ServiceDesc は grpc.ServiceDesc です。
var FormationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FormationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateDocument", Handler: generateDocumentHandler},
		{MethodName: "GetFiling", Handler: getFilingHandler},
		{MethodName: "ListFilings", Handler: listFilingsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "formation/v1/formation.proto",
}
