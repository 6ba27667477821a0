package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/formation-docs/internal/adapters/render/pdf"
	"github.com/ogurasousui/formation-docs/internal/adapters/repository/postgres"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/filing"
	"github.com/ogurasousui/formation-docs/internal/platform/config"
	pg "github.com/ogurasousui/formation-docs/internal/platform/db/postgres"
	"github.com/ogurasousui/formation-docs/internal/platform/logger"
	"github.com/ogurasousui/formation-docs/internal/platform/metrics"
	"github.com/ogurasousui/formation-docs/internal/platform/server"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	dbPool, err := pg.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("initialize database pool: %w", err)
	}
	defer dbPool.Close()

	m := metrics.New()

	renderer := pdf.NewRenderer(pdf.Options{
		Creator:  cfg.Document.Creator,
		Compress: cfg.Document.CompressEnabled(),
	})
	filingSvc := filing.NewService(
		postgres.NewFilingRepository(dbPool),
		document.NewGenerator(renderer),
		filing.WithTransactionManager(pg.NewTransactionManager(dbPool)),
		filing.WithMetrics(m),
		filing.WithLogger(log.Named("filing")),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, filingSvc, log.Named("grpc"), m)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Run(gctx)
	})
	if cfg.Metrics.ListenAddr != "" {
		g.Go(func() error {
			log.Info("metrics listening", zap.String("addr", cfg.Metrics.ListenAddr))
			return m.Serve(gctx, cfg.Metrics.ListenAddr, log)
		})
	}

	return g.Wait()
}
