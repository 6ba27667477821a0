package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/ogurasousui/formation-docs/internal/adapters/grpc/formationv1"
	"github.com/ogurasousui/formation-docs/internal/adapters/grpc/handler"
	"github.com/ogurasousui/formation-docs/internal/core/filing"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// RequestMetrics は RPC 単位の計測先です。
type RequestMetrics interface {
	RequestHandled(method, code string, elapsed time.Duration)
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
	log        *zap.Logger
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// metrics が nil の場合は計測を行いません。
func New(listenAddr string, svc filing.UseCase, log *zap.Logger, metrics RequestMetrics, opts ...grpc.ServerOption) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(UnaryInterceptor(log, metrics))}, opts...)
	srv := grpc.NewServer(opts...)

	formationv1.RegisterFormationServiceServer(srv, handler.NewFormationGrpcHandler(svc, log))

	hs := health.NewServer()
	hs.SetServingStatus(formationv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     hs,
		log:        log,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は与えられたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	s.log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

// UnaryInterceptor は RPC ごとにログと計測を記録します。
func UnaryInterceptor(log *zap.Logger, metrics RequestMetrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		started := time.Now()
		resp, err := next(ctx, req)
		elapsed := time.Since(started)

		code := status.Code(err)
		if metrics != nil {
			metrics.RequestHandled(info.FullMethod, code.String(), elapsed)
		}

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("elapsed", elapsed),
		}
		if err != nil {
			log.Warn("rpc failed", append(fields, zap.Error(err))...)
		} else {
			log.Debug("rpc handled", fields...)
		}

		return resp, err
	}
}
