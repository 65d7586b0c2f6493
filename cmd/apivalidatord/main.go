package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitorsantos08-ui/API/internal/application/usecase"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
	"github.com/vitorsantos08-ui/API/internal/domain/service"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/config"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/messaging"
	pgrepo "github.com/vitorsantos08-ui/API/internal/infrastructure/postgres"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/provider"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/sink"
	grpcpresentation "github.com/vitorsantos08-ui/API/internal/presentation/grpc"
	"github.com/vitorsantos08-ui/API/internal/presentation/rest"
	"github.com/vitorsantos08-ui/API/pkg/kafka"
	"github.com/vitorsantos08-ui/API/pkg/observability"
	"github.com/vitorsantos08-ui/API/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})

	logger.Info("starting integration validator daemon",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	audit, auditCloser, err := observability.NewAuditLogger(cfg.AuditLogFile)
	if err != nil {
		logger.Error("failed to open audit log", "error", err)
		os.Exit(1)
	}
	defer auditCloser.Close()

	// Metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "integration-validator",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	evalMetrics := observability.NewEvaluationMetrics()

	// Database connection and migrations.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := postgres.NewPool(dbCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DatabaseURL, "file://./migrations"); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Infrastructure adapters.
	assessmentRepo := pgrepo.NewAssessmentRepository(pool)

	fileSink, err := sink.NewFileSink(cfg.ResultsDir)
	if err != nil {
		logger.Error("failed to prepare results directory", "error", err)
		os.Exit(1)
	}

	producer := kafka.NewProducer(kafka.Config{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   "integration.assessments",
	})
	defer producer.Close()
	eventPublisher := messaging.NewKafkaPublisher(producer, logger)

	fetchOpts := provider.Options{
		Retries:    cfg.FetchRetries,
		Timeout:    cfg.FetchTimeout,
		RetryDelay: cfg.FetchRetryDelay,
	}

	// Use cases.
	validateUC := usecase.NewValidateIntegration(
		provider.NewUserClient(cfg.UsersAPIBase, fetchOpts, logger),
		provider.NewProductClient(cfg.ProductsAPIBase, fetchOpts, logger),
		service.NewRiskScorer(),
		[]port.ResultSink{fileSink, assessmentRepo},
		eventPublisher,
		evalMetrics,
		audit,
		cfg.RiskThreshold,
	)
	getUC := usecase.NewGetAssessment(assessmentRepo)

	// gRPC server.
	grpcHandler := grpcpresentation.NewIntegrationServiceHandler(validateUC, getUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server (health checks and metrics).
	healthHandler := rest.NewHealthHandler(logger)
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("integration validator started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	logger.Info("shutting down integration validator")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("integration validator stopped")
}
