// Package usecase implements the business rules of the symbol catalog.
package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"symbol_catalog/internal/feature/symbols/domain/entity"
	"symbol_catalog/internal/shared/result"
)

// SymbolRepository abstracts the persistence layer for symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	// FindByTicker returns the symbol with the given ticker, or nil when none exists.
	FindByTicker(ctx context.Context, ticker string) (*entity.Symbol, error)

	// ListAll returns every symbol.
	ListAll(ctx context.Context) ([]entity.Symbol, error)

	// ListActive returns the symbols whose Active flag is set.
	ListActive(ctx context.Context) ([]entity.Symbol, error)

	// Create inserts s and reports whether a row was written.
	// A ticker collision detected by the store is reported as ErrTickerTaken.
	Create(ctx context.Context, s *entity.Symbol) (bool, error)

	// SaveActivation persists s.Active, provided the stored flag still holds the
	// opposite value. It reports false when no row matched.
	SaveActivation(ctx context.Context, s *entity.Symbol) (bool, error)
}

// EventPublisher announces committed changes to other services.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.SymbolEvent) error
}

// SymbolUsecase owns the catalog rules: ticker uniqueness and existence checks.
// It holds no mutable state and is safe for concurrent use.
type SymbolUsecase struct {
	repo   SymbolRepository
	events EventPublisher
	log    *zap.Logger
}

// NewSymbolUsecase creates a SymbolUsecase. events and log may be nil.
func NewSymbolUsecase(repo SymbolRepository, events EventPublisher, log *zap.Logger) *SymbolUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SymbolUsecase{repo: repo, events: events, log: log}
}

// CreateSymbol registers a new symbol after checking that its ticker is free.
func (u *SymbolUsecase) CreateSymbol(ctx context.Context, dto CreateSymbolDto) result.Result[SymbolDto] {
	existing, err := u.repo.FindByTicker(ctx, dto.Ticker)
	if err != nil {
		u.log.Error("lookup before create failed", zap.String("ticker", dto.Ticker), zap.Error(err))
		return result.Failure[SymbolDto](codeInternalError, msgCreateFailed, result.SomethingWentWrong)
	}
	if existing != nil {
		u.log.Warn("duplicate ticker rejected", zap.String("ticker", dto.Ticker))
		return result.Failure[SymbolDto](codeDuplicateTicker, msgDuplicateTicker, result.BadRequest)
	}

	symbol := toEntity(dto)
	created, err := u.repo.Create(ctx, symbol)
	if errors.Is(err, ErrTickerTaken) {
		// lost the race against a concurrent create of the same ticker
		u.log.Warn("duplicate ticker rejected by store", zap.String("ticker", dto.Ticker))
		return result.Failure[SymbolDto](codeDuplicateTicker, msgDuplicateTicker, result.BadRequest)
	}
	if err != nil || !created {
		u.log.Error("create symbol failed", zap.String("ticker", dto.Ticker), zap.Bool("created", created), zap.Error(err))
		return result.Failure[SymbolDto](codeInternalError, msgCreateFailed, result.SomethingWentWrong)
	}

	u.publish(ctx, entity.EventSymbolCreated, symbol)
	return result.Success(toDto(symbol))
}

// GetSymbols returns every symbol.
func (u *SymbolUsecase) GetSymbols(ctx context.Context) result.Result[[]SymbolDto] {
	symbols, err := u.repo.ListAll(ctx)
	if err != nil {
		u.log.Error("list symbols failed", zap.Error(err))
		return result.Failure[[]SymbolDto](codeInternalError, msgLoadFailed, result.SomethingWentWrong)
	}
	return result.Success(toDtos(symbols))
}

// GetActiveSymbols returns the symbols whose Active flag is set.
func (u *SymbolUsecase) GetActiveSymbols(ctx context.Context) result.Result[[]SymbolDto] {
	symbols, err := u.repo.ListActive(ctx)
	if err != nil {
		u.log.Error("list active symbols failed", zap.Error(err))
		return result.Failure[[]SymbolDto](codeInternalError, msgLoadFailed, result.SomethingWentWrong)
	}
	return result.Success(toDtos(symbols))
}

// ToggleSymbolActivation flips the Active flag of the symbol with the given ticker.
func (u *SymbolUsecase) ToggleSymbolActivation(ctx context.Context, ticker string) result.Result[bool] {
	symbol, err := u.repo.FindByTicker(ctx, ticker)
	if err != nil {
		u.log.Error("lookup before toggle failed", zap.String("ticker", ticker), zap.Error(err))
		return result.Failure[bool](codeInternalError, msgToggleFailed, result.SomethingWentWrong)
	}
	if symbol == nil {
		u.log.Warn("toggle of unknown ticker rejected", zap.String("ticker", ticker))
		return result.Failure[bool](codeInvalidTicker, msgInvalidTicker, result.BadRequest)
	}

	symbol.Toggle()
	saved, err := u.repo.SaveActivation(ctx, symbol)
	if err != nil || !saved {
		u.log.Error("save activation failed", zap.String("ticker", ticker), zap.Bool("saved", saved), zap.Error(err))
		return result.Failure[bool](codeInternalError, msgToggleFailed, result.SomethingWentWrong)
	}

	u.publish(ctx, entity.EventSymbolActivationToggled, symbol)
	return result.Success(true)
}

// publish is best effort: the write is already committed.
func (u *SymbolUsecase) publish(ctx context.Context, eventType string, s *entity.Symbol) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, entity.NewSymbolEvent(eventType, s)); err != nil {
		u.log.Warn("publish symbol event failed", zap.String("type", eventType), zap.String("ticker", s.Ticker), zap.Error(err))
	}
}
