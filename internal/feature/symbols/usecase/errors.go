package usecase

import "errors"

var (
	// ErrTickerTaken is returned by SymbolRepository.Create when the store rejects
	// the insert because another symbol already holds the ticker.
	ErrTickerTaken = errors.New("ticker already taken")
)

// Result codes and messages reported to callers.
const (
	codeDuplicateTicker = "DuplicateTicker"
	codeInvalidTicker   = "InvalidTicker"
	codeInternalError   = "InternalError"

	msgDuplicateTicker = "Provided Ticker already exists"
	msgInvalidTicker   = "Provided Ticker does not exist"
	msgCreateFailed    = "Could not create Symbol"
	msgToggleFailed    = "Could not save changes made to symbol"
	msgLoadFailed      = "Could not load symbols"
)
