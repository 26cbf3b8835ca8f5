package config

import "errors"

// Validation errors returned when the merged configuration is inconsistent.
var (
	// ErrSeedFileWithoutSeeding indicates a seed file was supplied while
	// seeding itself is disabled.
	ErrSeedFileWithoutSeeding = errors.New("seed file configured but seeding is disabled")
)
