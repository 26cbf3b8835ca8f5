package clientservice

import "errors"

var (
	// ErrValidationFailed marks a submission rejected by validation, either
	// locally before the request or by the server afterwards. The joined
	// error chain carries the field→message mapping; unwrap it with
	// validators.AsFieldErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrProfileNotSet is returned when an operation needs the saved
	// profile but none exists on the server yet.
	ErrProfileNotSet = errors.New("profile is not set")

	// ErrNoMeasurements is returned when the latest reading is requested
	// from an empty history.
	ErrNoMeasurements = errors.New("no measurements recorded yet")

	// ErrBMIDerivationFailed is returned when the server accepts the
	// submission shape but rejects the readings in the BMI calculation.
	ErrBMIDerivationFailed = errors.New("bmi could not be derived from the submitted values")
)
