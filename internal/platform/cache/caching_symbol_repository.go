// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"symbol_catalog/internal/feature/symbols/domain/entity"
	"symbol_catalog/internal/feature/symbols/usecase"
)

// CachingSymbolRepository decorates a SymbolRepository with Redis caching of
// the two list reads. FindByTicker always goes to the store so that the
// uniqueness and existence checks never see stale data.
type CachingSymbolRepository struct {
	inner     usecase.SymbolRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       *zap.Logger
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository decorates a SymbolRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "symbols".
// A nil rdb disables caching.
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SymbolRepository, namespace string, log *zap.Logger) *CachingSymbolRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "symbols"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: safe(namespace),
		log:       log,
	}
}

// FindByTicker is never cached.
func (c *CachingSymbolRepository) FindByTicker(ctx context.Context, ticker string) (*entity.Symbol, error) {
	return c.inner.FindByTicker(ctx, ticker)
}

// ListAll returns every symbol, checking cache first then falling back to the database.
func (c *CachingSymbolRepository) ListAll(ctx context.Context) ([]entity.Symbol, error) {
	return c.cachedList(ctx, listAll, c.inner.ListAll)
}

// ListActive returns active symbols, checking cache first then falling back to the database.
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	return c.cachedList(ctx, listActive, c.inner.ListActive)
}

// Create inserts through the inner repository and invalidates the lists once the row is committed.
func (c *CachingSymbolRepository) Create(ctx context.Context, s *entity.Symbol) (bool, error) {
	created, err := c.inner.Create(ctx, s)
	if err == nil && created {
		c.invalidate(ctx)
	}
	return created, err
}

// SaveActivation updates through the inner repository and invalidates the lists once the row is committed.
func (c *CachingSymbolRepository) SaveActivation(ctx context.Context, s *entity.Symbol) (bool, error) {
	saved, err := c.inner.SaveActivation(ctx, s)
	if err == nil && saved {
		c.invalidate(ctx)
	}
	return saved, err
}

// cachedList reads list at the current generation. An entry written by a reader
// whose load overlapped a committed write lands under a generation nobody reads again.
func (c *CachingSymbolRepository) cachedList(ctx context.Context, list string, load func(context.Context) ([]entity.Symbol, error)) ([]entity.Symbol, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load(ctx)
	}

	// 0) 世代はロード前に読む
	gen, err := c.generation(ctx)
	if err != nil {
		c.log.Warn("symbol list cache generation unavailable", zap.Error(err))
		return load(ctx)
	}
	key := c.listKey(list, gen)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Symbol
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// generation returns the current list generation. A missing counter is generation 0.
func (c *CachingSymbolRepository) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// invalidate advances the generation so that both lists miss on the next read.
// Entries of older generations expire by TTL. Failure only delays freshness until then.
func (c *CachingSymbolRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, c.genKey()).Err(); err != nil {
		c.log.Warn("symbol list cache invalidation failed", zap.Error(err))
	}
}

const (
	listAll    = "all"
	listActive = "active"
)

func (c *CachingSymbolRepository) genKey() string { return c.namespace + ":gen" }

func (c *CachingSymbolRepository) listKey(list string, gen int64) string {
	return c.namespace + ":" + list + ":" + strconv.FormatInt(gen, 10)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
