// Command ingest bulk-registers symbols from a "ticker,exchange" CSV file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"symbol_catalog/internal/app/di"
	"symbol_catalog/internal/feature/symbols/adapters"
	"symbol_catalog/internal/feature/symbols/usecase"
	"symbol_catalog/internal/platform/config"
	"symbol_catalog/internal/platform/db"
	"symbol_catalog/internal/platform/logger"
	infraredis "symbol_catalog/internal/platform/redis"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file")
	file := pflag.StringP("file", "f", "", "CSV file with ticker,exchange rows (required)")
	timeout := pflag.Duration("timeout", 5*time.Minute, "overall timeout")
	pflag.Parse()

	if *file == "" {
		pflag.Usage()
		os.Exit(2)
	}

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

	if err := run(cfg, *file, *timeout, log); err != nil {
		log.Error("ingest failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, path string, timeout time.Duration, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := adapters.ReadSymbolsCSV(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.Database.Migrate {
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}

	// Redis が設定されていれば、登録後にサーバーの一覧キャッシュを無効化する
	var rdb *redisv9.Client
	if cfg.Redis.Addr != "" {
		if rdb, err = infraredis.NewRedisClient(ctx, infraredis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, log); err != nil {
			log.Warn("Redis unavailable. Cached symbol lists expire by TTL only.", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	repo := di.NewSymbolRepository(gdb, rdb, cfg.Redis.TTL, log)
	events, closeEvents := di.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	defer func() { _ = closeEvents() }()

	uc := usecase.NewImportUsecase(usecase.NewSymbolUsecase(repo, events, log), log)
	report, err := uc.ImportAll(ctx, rows)
	log.Info("ingest finished",
		zap.Int("rows", len(rows)),
		zap.Int("created", report.Created),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("invalid", report.Invalid),
		zap.Int("failed", report.Failed))
	return err
}
