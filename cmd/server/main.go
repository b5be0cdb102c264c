package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"symbol_catalog/internal/app/di"
	"symbol_catalog/internal/app/router"
	"symbol_catalog/internal/feature/symbols/transport/handler"
	"symbol_catalog/internal/feature/symbols/transport/rpc"
	"symbol_catalog/internal/feature/symbols/usecase"
	"symbol_catalog/internal/platform/config"
	"symbol_catalog/internal/platform/db"
	"symbol_catalog/internal/platform/grpcserver"
	"symbol_catalog/internal/platform/logger"
	infraredis "symbol_catalog/internal/platform/redis"
	"symbol_catalog/internal/shared/ratelimiter"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file (yaml, json or toml)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Logging.Level, Development: cfg.Logging.Development})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(db.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Name:         cfg.Database.Name,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}, cfg.Database.ConnectTimeout, log)
	if err != nil {
		return err
	}
	defer closeDB(gdb, log)

	if cfg.Database.Migrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		log.Info("schema migrated")
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		tmp, err := infraredis.NewRedisClient(ctx, infraredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log)
		if err != nil {
			log.Warn("Redis unavailable. Running without cache.", zap.Error(err))
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error("failed to close Redis client", zap.Error(err))
				}
			}()
		}
	}

	// Repository / Events
	repo := di.NewSymbolRepository(gdb, rdb, cfg.Redis.TTL, log)
	events, closeEvents := di.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	defer func() {
		if err := closeEvents(); err != nil {
			log.Error("failed to close event publisher", zap.Error(err))
		}
	}()

	// Usecase / Handler
	symbolUC := usecase.NewSymbolUsecase(repo, events, log)
	symbolH := handler.NewSymbolHandler(symbolUC)

	// gRPC
	metrics, err := grpcserver.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	var limiter grpcserver.Limiter
	if cfg.RateLimit.Limit > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Interval)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is not set. Mutating RPCs are unauthenticated.")
	}
	grpcSrv := grpcserver.New(grpcserver.Options{
		Log:       log,
		Metrics:   metrics,
		Limiter:   limiter,
		JWTSecret: cfg.Auth.JWTSecret,
		ProtectedMethods: []string{
			rpc.SymbolService_PostSymbol_FullMethodName,
			rpc.SymbolService_ToggleSymbolActivation_FullMethodName,
		},
	})
	rpc.RegisterSymbolServiceServer(grpcSrv, symbolH)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	// 運用HTTP（ヘルスチェック・メトリクス）
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.HTTPPort,
		Handler:           router.NewRouter(func(ctx context.Context) error { return db.Ping(ctx, gdb) }, promhttp.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()
	go func() {
		log.Info("HTTP ops server listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case serveErr = <-errCh:
	}

	shutdown(grpcSrv, httpSrv, cfg.Server.ShutdownTimeout, log)
	return serveErr
}

// shutdown stops both servers, forcing the gRPC server once timeout elapses.
func shutdown(grpcSrv interface {
	GracefulStop()
	Stop()
}, httpSrv *http.Server, timeout time.Duration, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("HTTP ops server shutdown failed", zap.Error(err))
	}

	done := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		log.Info("gRPC server stopped")
	case <-ctx.Done():
		log.Warn("gRPC graceful stop timed out, forcing")
		grpcSrv.Stop()
	}
}

func closeDB(gdb *gorm.DB, log *zap.Logger) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("failed to close DB", zap.Error(err))
	}
}
