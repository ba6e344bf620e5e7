package life

import "errors"

var (
	// ErrInvalidInput flags a malformed configuration or initial board.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFinalized flags use of an engine whose run has already finalized.
	ErrFinalized = errors.New("engine already finalized")
)
