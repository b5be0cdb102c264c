// Package db opens the PostgreSQL connection used by the symbol repository.
package db

import (
	"context"
	"fmt"
	"time"

	"symbol_catalog/internal/feature/symbols/domain/entity"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds connection settings for PostgreSQL.
type Config struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// Opener opens a gorm connection for a DSN. It is replaced in tests.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN は接続設定からPostgreSQLのDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// PostgresOpener returns an Opener backed by gorm.io/driver/postgres.
// Driver errors are translated so that unique violations surface as gorm.ErrDuplicatedKey.
func PostgresOpener() Opener {
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
	}
}

// ConnectWithRetry は接続に成功するかtimeoutが経過するまで指数バックオフで接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	return connectWithRetry(dsn, timeout, open, zap.NewNop())
}

func connectWithRetry(dsn string, timeout time.Duration, open Opener, log *zap.Logger) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 3 * time.Second
	b.MaxElapsedTime = timeout

	var db *gorm.DB
	op := func() error {
		conn, err := open(dsn)
		if err != nil {
			return err
		}
		db = conn
		return nil
	}
	notify := func(err error, wait time.Duration) {
		log.Warn("DB connect failed, retrying", zap.Duration("wait", wait), zap.Error(err))
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
	}
	return db, nil
}

// Open connects to PostgreSQL, retrying for up to timeout, and applies pool limits.
func Open(cfg Config, timeout time.Duration, log *zap.Logger) (*gorm.DB, error) {
	db, err := connectWithRetry(BuildDSN(cfg), timeout, PostgresOpener(), log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	log.Info("DB connection established", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// Migrate creates or updates the symbols table, including the unique index on ticker.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Symbol{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Ping checks that the database answers within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
