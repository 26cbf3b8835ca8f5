package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileNotSet is returned when the profile is read before any
	// profile has been saved. The application starts with no profile.
	ErrProfileNotSet = errors.New("profile is not set")

	// ErrMeasurementNotFound is returned when a lookup by ID matches no
	// stored measurement.
	ErrMeasurementNotFound = errors.New("measurement was not found")

	// ErrNoMeasurements is returned when the latest measurement is
	// requested from an empty collection.
	ErrNoMeasurements = errors.New("no measurements recorded")
)
