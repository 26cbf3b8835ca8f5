// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the HealthKeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// services from the underlying protocol. The package currently ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409). A structured
// rejection of a submitted form surfaces as [*ValidationFailedError], which
// carries the per-field messages alongside the summary line.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the HealthKeeper
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// FetchProfile retrieves the current profile. Returns [ErrNotFound]
	// (wrapped) when no profile has been saved yet.
	FetchProfile(ctx context.Context) (models.User, error)

	// SaveProfile creates or replaces the profile and returns the stored
	// value, including the server-assigned ID on first save. A rejected
	// submission surfaces as [*ValidationFailedError] so the caller can
	// attach each message to the offending form field.
	SaveProfile(ctx context.Context, user models.User) (models.User, error)

	// Measurements retrieves the full measurement history in insertion
	// order. An empty history yields an empty slice, not an error.
	Measurements(ctx context.Context) ([]models.Measurement, error)

	// Record submits a new measurement entry and returns the stored
	// measurement with its derived values (BMI, fat mass) filled in.
	// Returns [ErrConflict] (wrapped) when no profile exists yet,
	// [ErrUnprocessable] (wrapped) when the readings survive validation but
	// are rejected by the BMI derivation, and [*ValidationFailedError] for
	// a rejected submission.
	Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error)

	// Latest retrieves the measurement with the most recent date. Returns
	// [ErrNotFound] (wrapped) when the history is empty.
	Latest(ctx context.Context) (models.Measurement, error)

	// Dashboard retrieves the aggregated dashboard snapshot (profile,
	// latest measurement, full history, entry count) in one round trip.
	Dashboard(ctx context.Context) (models.Dashboard, error)

	// Version reports the server build version as plain text.
	Version(ctx context.Context) (string, error)
}
