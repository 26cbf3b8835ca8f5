// Package clientservice contains the client-side application services that
// back the terminal UI. Each service is a thin layer over
// [adapter.ServerAdapter]: form submissions are validated locally with the
// same validators the server uses, so an invalid profile or measurement never
// leaves the client, and transport errors are translated back into the
// business sentinels defined in errors.go.
package clientservice

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

// ProfileService is the client-side contract for reading and replacing the
// single profile.
type ProfileService interface {
	// GetProfile fetches the current profile from the server.
	// Returns [ErrProfileNotSet] when none has been saved yet.
	GetProfile(ctx context.Context) (models.User, error)

	// SaveProfile validates user locally and submits it as the new profile.
	// A validation failure, local or server-side, joins
	// [ErrValidationFailed] with the field-level report so the form can
	// render each message inline.
	SaveProfile(ctx context.Context, user models.User) (models.User, error)
}

// MeasurementService is the client-side contract for the measurement log and
// its derived views.
type MeasurementService interface {
	// Record validates the entry locally and submits it. On success it
	// returns the stored measurement with the server-derived values (BMI,
	// fat mass) filled in. Returns [ErrProfileNotSet] when the server
	// rejects the submission because no profile exists yet.
	Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error)

	// ListMeasurements fetches the full history in insertion order.
	ListMeasurements(ctx context.Context) ([]models.Measurement, error)

	// LatestMeasurement fetches the most recent measurement by date.
	// Returns [ErrNoMeasurements] when the history is empty.
	LatestMeasurement(ctx context.Context) (models.Measurement, error)

	// Dashboard fetches the aggregated snapshot the dashboard page renders:
	// profile, latest measurement, full history and entry count. A fresh
	// install yields an empty snapshot, not an error.
	Dashboard(ctx context.Context) (models.Dashboard, error)
}

// AppInfoService exposes build information of the connected server.
type AppInfoService interface {
	// GetServerVersion fetches the server build version.
	GetServerVersion(ctx context.Context) (string, error)
}
