// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"symbol_catalog/internal/feature/symbols/adapters"
	"symbol_catalog/internal/feature/symbols/usecase"
	"symbol_catalog/internal/platform/cache"
)

// NewSymbolRepository creates a SymbolRepository implementation.
// If Redis is available, the database repository is wrapped with a read-through list cache.
// Otherwise, the database repository is returned as is.
func NewSymbolRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration, log *zap.Logger) usecase.SymbolRepository {
	repo := adapters.NewSymbolRepository(db)
	if rdb != nil {
		return cache.NewCachingSymbolRepository(rdb, ttl, repo, "symbols", log)
	}
	return repo
}

// NewEventPublisher creates the EventPublisher for change notifications.
// With no brokers configured it returns a nil publisher and a no-op closer,
// which disables publishing in the usecase.
func NewEventPublisher(brokers []string, topic string, log *zap.Logger) (usecase.EventPublisher, func() error) {
	if len(brokers) == 0 {
		return nil, func() error { return nil }
	}
	p := adapters.NewKafkaEventPublisher(brokers, topic, log)
	return p, p.Close
}
