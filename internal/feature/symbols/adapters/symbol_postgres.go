// Package adapters はsymbolsフィーチャーのリポジトリ実装とイベント発行の実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"symbol_catalog/internal/feature/symbols/domain/entity"
	"symbol_catalog/internal/feature/symbols/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// symbolPostgres はSymbolRepositoryインターフェースのPostgreSQL実装です。
type symbolPostgres struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolPostgres)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolPostgresリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolPostgres {
	return &symbolPostgres{db: db}
}

// FindByTicker はティッカーに一致する銘柄を返します。存在しない場合は (nil, nil) を返します。
func (r *symbolPostgres) FindByTicker(ctx context.Context, ticker string) (*entity.Symbol, error) {
	var symbol entity.Symbol
	err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Take(&symbol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find symbol %q: %w", ticker, err)
	}
	return &symbol, nil
}

// ListAll は作成順にすべての銘柄を返します。
func (r *symbolPostgres) ListAll(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, ticker ASC").
		Find(&symbols).Error; err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	return symbols, nil
}

// ListActive は作成順にアクティブな銘柄を返します。
func (r *symbolPostgres) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC, ticker ASC").
		Find(&symbols).Error; err != nil {
		return nil, fmt.Errorf("list active symbols: %w", err)
	}
	return symbols, nil
}

// Create は銘柄を1件挿入します。ユニーク制約違反は usecase.ErrTickerTaken として返します。
func (r *symbolPostgres) Create(ctx context.Context, s *entity.Symbol) (bool, error) {
	res := r.db.WithContext(ctx).Create(s)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return false, fmt.Errorf("insert symbol %q: %w", s.Ticker, usecase.ErrTickerTaken)
		}
		return false, fmt.Errorf("insert symbol %q: %w", s.Ticker, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// SaveActivation は保存済みのフラグが反対の値である場合に限りactiveを更新します。
// 同時に行われたトグルと競合した場合は false を返します。
func (r *symbolPostgres) SaveActivation(ctx context.Context, s *entity.Symbol) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("id = ? AND active = ?", s.ID, !s.Active).
		Update("active", s.Active)
	if res.Error != nil {
		return false, fmt.Errorf("save activation of %q: %w", s.Ticker, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// isUniqueViolation はドライバに依存せずユニーク制約違反を判定します。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// SQLite without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
