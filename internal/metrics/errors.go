package metrics

import "errors"

var (
	// ErrNonPositiveWeight indicates a zero or negative weight input.
	ErrNonPositiveWeight = errors.New("weight must be positive")

	// ErrNonPositiveHeight indicates a zero or negative height input.
	ErrNonPositiveHeight = errors.New("height must be positive")
)
