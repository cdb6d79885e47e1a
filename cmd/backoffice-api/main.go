package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/config"
	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/events"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
	"github.com/MikeMC777/ordenes-backoffice/internal/store"
	"github.com/MikeMC777/ordenes-backoffice/internal/telemetry"
)

const (
	serviceName    = "backoffice-api"
	serviceVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)
	logger.Info("config loaded", "config", cfg)

	if err := run(cfg, logger); err != nil {
		logger.Error("backoffice-api stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, serviceName, serviceVersion)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracer(context.Background()) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(serviceName, serviceVersion)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownMeter(context.Background()) }()

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return err
	}

	if cfg.MigrationsOnStart {
		if err := store.MigrateUp(cfg.PostgresDSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	pool, err := store.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() { _ = producer.Close() }()
		publisher = producer
		logger.Info("publishing order events", "topic", cfg.KafkaTopic)
	}

	authRepo := auth.NewPGRepo(pool)
	gin.SetMode(gin.ReleaseMode)
	router := newRouter(app{
		customers: customer.NewPGRepo(pool),
		products:  product.NewPGRepo(pool),
		orders:    order.NewPGRepo(pool),
		auth:      auth.NewService(authRepo, authRepo, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		events:    publisher,
		metrics:   metrics,
		metricsH:  metricsHandler,
		log:       logger,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return err
		}
		logger.Info("grpc health listening", "addr", cfg.GRPCAddr)
		return grpcSrv.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthSrv.Shutdown()
		grpcSrv.GracefulStop()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})
	return g.Wait()
}
