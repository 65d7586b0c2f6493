package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitorsantos08-ui/API/internal/application/usecase"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
	"github.com/vitorsantos08-ui/API/internal/domain/service"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/config"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/messaging"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/provider"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/sink"
	"github.com/vitorsantos08-ui/API/internal/presentation/console"
	"github.com/vitorsantos08-ui/API/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "text",
	})

	audit, auditCloser, err := observability.NewAuditLogger(cfg.AuditLogFile)
	if err != nil {
		logger.Error("failed to open audit log", "error", err)
		os.Exit(1)
	}
	defer auditCloser.Close()

	fileSink, err := sink.NewFileSink(cfg.ResultsDir)
	if err != nil {
		logger.Error("failed to prepare results directory", "error", err)
		os.Exit(1)
	}

	fetchOpts := provider.Options{
		Retries:    cfg.FetchRetries,
		Timeout:    cfg.FetchTimeout,
		RetryDelay: cfg.FetchRetryDelay,
	}

	renderer := console.NewRenderer(os.Stdout)

	validateUC := usecase.NewValidateIntegration(
		provider.NewUserClient(cfg.UsersAPIBase, fetchOpts, audit),
		provider.NewProductClient(cfg.ProductsAPIBase, fetchOpts, audit),
		service.NewRiskScorer(),
		[]port.ResultSink{fileSink},
		messaging.NewLogPublisher(logger),
		renderer,
		audit,
		cfg.RiskThreshold,
	)

	ui := console.New(
		validateUC,
		renderer,
		os.Stdin,
		cfg.UsersAPIBase,
		cfg.ProductsAPIBase,
		cfg.RiskThreshold,
	)

	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("console session ended with error", "error", err)
		os.Exit(1)
	}
}
