package service

import "errors"

var (
	// ErrValidationFailed marks an input rejected before any store
	// interaction. The joined error chain carries the field→message
	// mapping; unwrap it with validators.AsFieldErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrVersionIsNotSpecified is returned when the application version
	// is missing from the configuration at service construction time.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
