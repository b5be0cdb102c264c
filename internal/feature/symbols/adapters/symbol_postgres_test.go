package adapters

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"symbol_catalog/internal/feature/symbols/domain/entity"
	"symbol_catalog/internal/feature/symbols/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T, translateError bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: translateError})
	require.NoError(t, err, "failed to initialize test database")

	// :memory: はコネクションごとに別DBになるため1本に固定
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entity.Symbol{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// seedSymbol はテスト用の銘柄データをデータベースに作成します。
func seedSymbol(t *testing.T, db *gorm.DB, ticker string, active bool, order int) *entity.Symbol {
	t.Helper()

	symbol := entity.NewSymbol(ticker, "NYSE")
	symbol.Active = active
	symbol.CreatedAt = baseTime.Add(time.Duration(order) * time.Minute)
	require.NoError(t, db.Create(symbol).Error, "failed to seed symbol")

	return symbol
}

func tickersOf(symbols []entity.Symbol) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, s.Ticker)
	}
	return out
}

// TestNewSymbolRepository はNewSymbolRepositoryコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewSymbolRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t, true)
	repo := NewSymbolRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

func TestSymbolPostgres_FindByTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T, db *gorm.DB)
		ticker    string
		wantFound bool
		wantErr   bool
	}{
		{
			name: "success: returns stored symbol",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "ABC", true, 1)
				seedSymbol(t, db, "XYZ", false, 2)
			},
			ticker:    "XYZ",
			wantFound: true,
		},
		{
			name:      "success: returns nil when ticker is unknown",
			ticker:    "NOPE",
			wantFound: false,
		},
		{
			name: "success: ticker match is case sensitive",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "ABC", true, 1)
			},
			ticker:    "abc",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t, true)
			repo := NewSymbolRepository(db)
			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			got, err := repo.FindByTicker(context.Background(), tt.ticker)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.wantFound {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.ticker, got.Ticker)
		})
	}
}

func TestSymbolPostgres_FindByTicker_PreservesFields(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t, true)
	repo := NewSymbolRepository(db)
	seeded := seedSymbol(t, db, "ABC", false, 1)

	got, err := repo.FindByTicker(context.Background(), "ABC")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, "NYSE", got.Exchange)
	assert.False(t, got.Active)
}

// TestSymbolPostgres_ListAll はListAllが作成順にすべての銘柄を返すことを検証します。
func TestSymbolPostgres_ListAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T, db *gorm.DB)
		expectedCodes []string
	}{
		{
			name: "success: returns all symbols in creation order",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "MSFT", true, 2)
				seedSymbol(t, db, "AAPL", false, 1)
				seedSymbol(t, db, "GOOG", true, 3)
			},
			expectedCodes: []string{"AAPL", "MSFT", "GOOG"},
		},
		{
			name: "success: ties are ordered by ticker",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "B", true, 1)
				seedSymbol(t, db, "A", true, 1)
			},
			expectedCodes: []string{"A", "B"},
		},
		{
			name:          "success: returns empty list when no symbols",
			expectedCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t, true)
			repo := NewSymbolRepository(db)
			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			symbols, err := repo.ListAll(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCodes, tickersOf(symbols))
		})
	}
}

// TestSymbolPostgres_ListActive はListActiveが非アクティブな銘柄を除外することを検証します。
func TestSymbolPostgres_ListActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T, db *gorm.DB)
		expectedCodes []string
	}{
		{
			name: "success: excludes inactive symbols",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "AAPL", true, 1)
				seedSymbol(t, db, "MSFT", false, 2)
				seedSymbol(t, db, "GOOG", true, 3)
			},
			expectedCodes: []string{"AAPL", "GOOG"},
		},
		{
			name: "success: returns empty list when all symbols are inactive",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedSymbol(t, db, "AAPL", false, 1)
				seedSymbol(t, db, "MSFT", false, 2)
			},
			expectedCodes: []string{},
		},
		{
			name:          "success: returns empty list when no symbols",
			expectedCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t, true)
			repo := NewSymbolRepository(db)
			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}

			symbols, err := repo.ListActive(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCodes, tickersOf(symbols))
			for _, s := range symbols {
				assert.True(t, s.Active)
			}
		})
	}
}

func TestSymbolPostgres_Create(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t, true)
	repo := NewSymbolRepository(db)
	symbol := entity.NewSymbol("ABC", "NYSE")

	created, err := repo.Create(context.Background(), symbol)

	require.NoError(t, err)
	assert.True(t, created)

	var stored entity.Symbol
	require.NoError(t, db.Where("ticker = ?", "ABC").Take(&stored).Error)
	assert.Equal(t, symbol.ID, stored.ID)
	assert.True(t, stored.Active)
	assert.False(t, stored.CreatedAt.IsZero())
}

// TestSymbolPostgres_Create_Duplicate はユニーク制約違反がErrTickerTakenとして返ることを検証します。
func TestSymbolPostgres_Create_Duplicate(t *testing.T) {
	t.Parallel()

	for _, translate := range []bool{true, false} {
		t.Run(fmt.Sprintf("translate_error=%v", translate), func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t, translate)
			repo := NewSymbolRepository(db)
			ctx := context.Background()

			_, err := repo.Create(ctx, entity.NewSymbol("ABC", "NYSE"))
			require.NoError(t, err)

			created, err := repo.Create(ctx, entity.NewSymbol("ABC", "NASDAQ"))

			assert.False(t, created)
			assert.ErrorIs(t, err, usecase.ErrTickerTaken)

			var count int64
			require.NoError(t, db.Model(&entity.Symbol{}).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestSymbolPostgres_SaveActivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stored     bool
		newActive  bool
		wantSaved  bool
		wantStored bool
	}{
		{
			name:       "success: deactivates active symbol",
			stored:     true,
			newActive:  false,
			wantSaved:  true,
			wantStored: false,
		},
		{
			name:       "success: activates inactive symbol",
			stored:     false,
			newActive:  true,
			wantSaved:  true,
			wantStored: true,
		},
		{
			name:       "failure: stored flag already changed by another writer",
			stored:     true,
			newActive:  true,
			wantSaved:  false,
			wantStored: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t, true)
			repo := NewSymbolRepository(db)
			seeded := seedSymbol(t, db, "ABC", tt.stored, 1)

			update := *seeded
			update.Active = tt.newActive
			saved, err := repo.SaveActivation(context.Background(), &update)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)

			var stored entity.Symbol
			require.NoError(t, db.Where("id = ?", seeded.ID).Take(&stored).Error)
			assert.Equal(t, tt.wantStored, stored.Active)
		})
	}
}

func TestSymbolPostgres_SaveActivation_UnknownSymbol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t, true)
	repo := NewSymbolRepository(db)

	saved, err := repo.SaveActivation(context.Background(), entity.NewSymbol("GHOST", "NYSE"))

	require.NoError(t, err)
	assert.False(t, saved)
}

func TestSymbolPostgres_CanceledContext(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t, true)
	repo := NewSymbolRepository(db)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAll(ctx)

	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm duplicated key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "postgres other error", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "sqlite message", err: errors.New("UNIQUE constraint failed: symbols.ticker"), want: true},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
