package wheel

import "errors"

// Sentinel errors. Callers match with errors.Is; detail is wrapped with %w.
var (
	// ErrInvalidInput covers empty entry sets, non-positive weights, blank
	// names, out-of-range indices and malformed documents
	ErrInvalidInput = errors.New("invalid input")

	// ErrBusy is returned when a spin or mutation is requested while a spin is in flight
	ErrBusy = errors.New("wheel is spinning")
)
