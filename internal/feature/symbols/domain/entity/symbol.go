// Package entity defines the domain models for the symbols feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Symbol is a tradable ticker listed on an exchange.
// Ticker is unique across all symbols; Active gates whether the symbol is tradable.
type Symbol struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Ticker    string    `gorm:"size:12;not null;uniqueIndex" json:"ticker"`
	Exchange  string    `gorm:"size:12;not null" json:"exchange"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewSymbol creates an active symbol with a fresh time-ordered identifier.
func NewSymbol(ticker, exchange string) *Symbol {
	return &Symbol{
		ID:       NewID(),
		Ticker:   ticker,
		Exchange: exchange,
		Active:   true,
	}
}

// Toggle flips the activation flag.
func (s *Symbol) Toggle() {
	s.Active = !s.Active
}

// NewID returns a UUIDv7, falling back to a random UUID if the clock source fails.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
