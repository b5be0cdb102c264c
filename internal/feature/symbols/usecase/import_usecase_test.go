package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol_catalog/internal/feature/symbols/usecase"
	"symbol_catalog/internal/shared/result"
)

type mockSymbolCreator struct {
	CreateSymbolFunc func(ctx context.Context, dto usecase.CreateSymbolDto) result.Result[usecase.SymbolDto]
	calls            []string
}

func (m *mockSymbolCreator) CreateSymbol(ctx context.Context, dto usecase.CreateSymbolDto) result.Result[usecase.SymbolDto] {
	m.calls = append(m.calls, dto.Ticker)
	return m.CreateSymbolFunc(ctx, dto)
}

func TestImportUsecase_ImportAll(t *testing.T) {
	t.Parallel()

	creator := &mockSymbolCreator{
		CreateSymbolFunc: func(ctx context.Context, dto usecase.CreateSymbolDto) result.Result[usecase.SymbolDto] {
			switch dto.Ticker {
			case "DUP":
				return result.Failure[usecase.SymbolDto]("DuplicateTicker", "Provided Ticker already exists", result.BadRequest)
			case "BOOM":
				return result.Failure[usecase.SymbolDto]("InternalError", "Could not create Symbol", result.SomethingWentWrong)
			default:
				return result.Success(usecase.SymbolDto{Ticker: dto.Ticker, Exchange: dto.Exchange, Active: true})
			}
		},
	}
	uc := usecase.NewImportUsecase(creator, nil)

	rows := []usecase.CreateSymbolDto{
		{Ticker: "ABC", Exchange: "NYSE"},
		{Ticker: "DUP", Exchange: "NYSE"},
		{Ticker: "", Exchange: "NYSE"},
		{Ticker: strings.Repeat("X", 13), Exchange: "NYSE"},
		{Ticker: "BOOM", Exchange: "NYSE"},
		{Ticker: "XYZ", Exchange: "NASDAQ"},
	}

	report, err := uc.ImportAll(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, usecase.ImportReport{Created: 2, Duplicates: 1, Invalid: 2, Failed: 1}, report)
	assert.Equal(t, len(rows), report.Total())
	// 不正な行は登録処理に渡されない
	assert.Equal(t, []string{"ABC", "DUP", "BOOM", "XYZ"}, creator.calls)
}

func TestImportUsecase_ImportAll_Empty(t *testing.T) {
	t.Parallel()

	creator := &mockSymbolCreator{}
	uc := usecase.NewImportUsecase(creator, nil)

	report, err := uc.ImportAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, report.Total())
	assert.Empty(t, creator.calls)
}

func TestImportUsecase_ImportAll_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	creator := &mockSymbolCreator{
		CreateSymbolFunc: func(ctx context.Context, dto usecase.CreateSymbolDto) result.Result[usecase.SymbolDto] {
			cancel()
			return result.Success(usecase.SymbolDto{Ticker: dto.Ticker})
		},
	}
	uc := usecase.NewImportUsecase(creator, nil)

	report, err := uc.ImportAll(ctx, []usecase.CreateSymbolDto{
		{Ticker: "A", Exchange: "NYSE"},
		{Ticker: "B", Exchange: "NYSE"},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, []string{"A"}, creator.calls)
}

// TestImportUsecase_WithSymbolUsecase は実際の SymbolUsecase と組み合わせ、
// 同じティッカーが2回現れても1件しか登録されないことを検証します。
func TestImportUsecase_WithSymbolUsecase(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	uc := usecase.NewImportUsecase(usecase.NewSymbolUsecase(repo, nil, nil), nil)

	report, err := uc.ImportAll(context.Background(), []usecase.CreateSymbolDto{
		{Ticker: "ABC", Exchange: "NYSE"},
		{Ticker: "ABC", Exchange: "NASDAQ"},
		{Ticker: "XYZ", Exchange: "NASDAQ"},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.ImportReport{Created: 2, Duplicates: 1}, report)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
