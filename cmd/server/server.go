package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/CWSpear/stumpy/internal/config"
	"github.com/CWSpear/stumpy/internal/errors"
	"github.com/CWSpear/stumpy/internal/handlers/tracker/v1alpha1"
	"github.com/CWSpear/stumpy/internal/metrics"
	"github.com/CWSpear/stumpy/internal/orchestrators/tracker"
	"github.com/CWSpear/stumpy/internal/pkg/clock"
	"github.com/CWSpear/stumpy/internal/pkg/idgen"
	redisclient "github.com/CWSpear/stumpy/internal/redis"
	"github.com/CWSpear/stumpy/internal/repositories/settings"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort    int
	metricsPort int
	redisAddr   string
	logLevel    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the tracker gRPC server. Flags override the STUMPY_* environment.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&metricsPort, "metrics-port", 9090, "Prometheus metrics port, 0 disables")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address, empty keeps state in memory")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, cleanup, err := newTracker(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{TrackerService: svc})
	if err != nil {
		return fmt.Errorf("failed to create tracker handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metrics.UnaryServerInterceptor(),
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	v1alpha1.RegisterTrackerServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	metricsSrv := startMetrics(cfg.MetricsPort)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "redis", cfg.UsesRedis())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Metrics server shutdown failed", "error", err)
			}
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// loadConfig reads the environment and applies any flags set explicitly
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("metrics-port") {
		cfg.MetricsPort = metricsPort
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newTracker wires repositories and restores the stored settings for the
// configured profile
func newTracker(ctx context.Context, cfg *config.Config) (tracker.Service, func(), error) {
	clk := clock.New()
	cleanup := func() {}

	var (
		settingsRepo settings.Repository
		snapshotRepo snapshots.Repository
	)

	if cfg.UsesRedis() {
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		cleanup = func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		settingsRepo, err = settings.NewRedis(&settings.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create settings repository: %w", err)
		}
		snapshotRepo, err = snapshots.NewRedis(&snapshots.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create snapshot repository: %w", err)
		}
	} else {
		settingsRepo = settings.NewInMemory()
		snapshotRepo = snapshots.NewInMemory(clk)
	}

	current := cfg.Settings()
	stored, err := settingsRepo.Get(ctx, &settings.GetInput{Profile: cfg.Profile})
	switch {
	case err == nil:
		current = stored.Settings
		slog.Info("Restored settings", "profile", cfg.Profile, "sword_logic", current.Sword, "start_state", current.Start)
	case errors.IsNotFound(err):
		slog.Info("No stored settings, using configured defaults", "profile", cfg.Profile)
	default:
		cleanup()
		return nil, nil, fmt.Errorf("failed to read settings: %w", err)
	}

	svc, err := tracker.NewOrchestrator(&tracker.Config{
		SettingsRepo: settingsRepo,
		SnapshotRepo: snapshotRepo,
		IDGenerator:  idgen.NewUUID("snap"),
		Clock:        clk,
		Profile:      cfg.Profile,
		Settings:     current,
		SnapshotTTL:  cfg.SnapshotTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create tracker: %w", err)
	}

	return svc, cleanup, nil
}

// startMetrics serves /metrics in the background. A zero port disables it.
func startMetrics(port int) *http.Server {
	if port == 0 {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Metrics server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server failed", "error", err)
		}
	}()

	return srv
}

// interceptorLogger adapts slog to the go-grpc-middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic", "panic", p)
	return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
}
