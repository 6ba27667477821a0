package handler

import (
	"context"
	"time"

	"github.com/ogurasousui/formation-docs/internal/adapters/grpc/formationv1"
	"github.com/ogurasousui/formation-docs/internal/core/filing"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ListFilings のリクエスト/レスポンスで使うキー。
const (
	keyPageSize      = "page_size"
	keyPageToken     = "page_token"
	keyState         = "state"
	keyFilings       = "filings"
	keyNextPageToken = "next_page_token"
)

// FormationGrpcHandler は FormationService の gRPC 実装です。
type FormationGrpcHandler struct {
	svc filing.UseCase
	log *zap.Logger
	formationv1.UnimplementedFormationServiceServer
}

// NewFormationGrpcHandler は FormationGrpcHandler を生成します。
func NewFormationGrpcHandler(svc filing.UseCase, log *zap.Logger) *FormationGrpcHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &FormationGrpcHandler{svc: svc, log: log}
}

// GenerateDocument は設立情報から書類を生成し PDF を返します。
func (h *FormationGrpcHandler) GenerateDocument(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	fields := make(map[string]string, len(req.GetFields()))
	for key, value := range req.GetFields() {
		str, ok := value.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "field %s must be a string", key)
		}
		fields[key] = str.StringValue
	}

	created, err := h.svc.GenerateDocument(ctx, filing.GenerateDocumentInput{Fields: fields})
	if err != nil {
		return nil, toStatusError(err)
	}

	h.sendFilingHeader(ctx, created)
	return wrapperspb.Bytes(created.Content), nil
}

// GetFiling は保存済みの PDF を返します。
func (h *FormationGrpcHandler) GetFiling(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetFiling(ctx, filing.GetFilingInput{ID: req.GetValue()})
	if err != nil {
		return nil, toStatusError(err)
	}

	h.sendFilingHeader(ctx, found)
	return wrapperspb.Bytes(found.Content), nil
}

// ListFilings は生成記録の一覧を返します。
func (h *FormationGrpcHandler) ListFilings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toListFilingsInput(req)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ListFilings(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	filings := make([]any, 0, len(result.Filings))
	for _, f := range result.Filings {
		filings = append(filings, toFilingSummary(f))
	}

	resp, err := structpb.NewStruct(map[string]any{
		keyFilings:       filings,
		keyNextPageToken: result.NextPageToken,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (h *FormationGrpcHandler) sendFilingHeader(ctx context.Context, f *filing.Filing) {
	md := metadata.Pairs(
		formationv1.HeaderFilingID, f.ID,
		formationv1.HeaderDocumentKind, string(f.Kind),
	)
	if err := grpc.SetHeader(ctx, md); err != nil {
		h.log.Warn("failed to set response header", zap.String("filing_id", f.ID), zap.Error(err))
	}
}

func toListFilingsInput(req *structpb.Struct) (filing.ListFilingsInput, error) {
	var in filing.ListFilingsInput
	fields := req.GetFields()

	if v, ok := fields[keyPageSize]; ok {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue != float64(int(n.NumberValue)) {
			return in, status.Errorf(codes.InvalidArgument, "%s must be an integer", keyPageSize)
		}
		in.PageSize = int(n.NumberValue)
	}

	for key, dst := range map[string]*string{keyPageToken: &in.PageToken, keyState: &in.State} {
		v, ok := fields[key]
		if !ok {
			continue
		}
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return in, status.Errorf(codes.InvalidArgument, "%s must be a string", key)
		}
		*dst = s.StringValue
	}

	return in, nil
}

func toFilingSummary(f *filing.Filing) map[string]any {
	return map[string]any{
		"id":                 f.ID,
		"company_name":       f.CompanyName,
		"state_of_formation": f.StateOfFormation,
		"company_type":       string(f.CompanyType),
		"incorporator_name":  f.IncorporatorName,
		"document_kind":      string(f.Kind),
		"checksum":           f.Checksum,
		"created_at":         f.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

var _ formationv1.FormationServiceServer = (*FormationGrpcHandler)(nil)
