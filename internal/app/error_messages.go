// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HealthKeeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded into the expected payload.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgValidationFailed is the summary line of a rejected submission.
	// The per-field explanations travel alongside it in the response body.
	MsgValidationFailed = "validation failed"

	// MsgProfileNotSet is returned when an operation needs the saved
	// profile but none has been created yet.
	MsgProfileNotSet = "profile is not set"

	// MsgProfileRequiredForMeasurement is returned when a measurement is
	// submitted before a profile exists; height is needed to derive BMI.
	MsgProfileRequiredForMeasurement = "a profile must be saved before recording measurements"

	// MsgBMIDerivationFailed is returned when the submitted readings reach
	// the BMI calculation but are rejected by it.
	MsgBMIDerivationFailed = "bmi could not be derived from the submitted values"

	// MsgMeasurementNotFound is returned when a read targets a measurement
	// ID that does not exist.
	MsgMeasurementNotFound = "measurement not found"

	// MsgNoMeasurements is returned when the latest reading is requested
	// from an empty history.
	MsgNoMeasurements = "no measurements recorded yet"
)
