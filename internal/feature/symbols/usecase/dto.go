package usecase

import (
	"symbol_catalog/internal/feature/symbols/domain/entity"

	"github.com/google/uuid"
)

// CreateSymbolDto is the input of CreateSymbol.
// The validate tags are enforced by the transport layer before the usecase is called.
type CreateSymbolDto struct {
	Ticker   string `validate:"required,min=1,max=12"`
	Exchange string `validate:"required,min=1,max=12"`
}

// SymbolDto is the read projection of a Symbol.
type SymbolDto struct {
	ID       uuid.UUID
	Ticker   string
	Exchange string
	Active   bool
}

// toEntity builds a new Symbol from the create input.
func toEntity(dto CreateSymbolDto) *entity.Symbol {
	return entity.NewSymbol(dto.Ticker, dto.Exchange)
}

// toDto projects a Symbol.
func toDto(s *entity.Symbol) SymbolDto {
	return SymbolDto{
		ID:       s.ID,
		Ticker:   s.Ticker,
		Exchange: s.Exchange,
		Active:   s.Active,
	}
}

// toDtos projects symbols preserving order.
func toDtos(symbols []entity.Symbol) []SymbolDto {
	out := make([]SymbolDto, 0, len(symbols))
	for i := range symbols {
		out = append(out, toDto(&symbols[i]))
	}
	return out
}
