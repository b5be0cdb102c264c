package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event types published after a committed write.
const (
	EventSymbolCreated           = "symbol.created"
	EventSymbolActivationToggled = "symbol.activation_toggled"
)

// SymbolEvent describes a change to a symbol.
type SymbolEvent struct {
	Type       string    `json:"type"`
	SymbolID   uuid.UUID `json:"symbol_id"`
	Ticker     string    `json:"ticker"`
	Exchange   string    `json:"exchange"`
	Active     bool      `json:"active"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewSymbolEvent snapshots s into an event of the given type.
func NewSymbolEvent(eventType string, s *Symbol) SymbolEvent {
	return SymbolEvent{
		Type:       eventType,
		SymbolID:   s.ID,
		Ticker:     s.Ticker,
		Exchange:   s.Exchange,
		Active:     s.Active,
		OccurredAt: time.Now().UTC(),
	}
}
