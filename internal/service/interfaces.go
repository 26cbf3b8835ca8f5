package service

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

// ProfileService manages the single user profile of the application.
type ProfileService interface {
	// GetProfile returns the current profile.
	// Returns store.ErrProfileNotSet when no profile has been saved yet.
	GetProfile(ctx context.Context) (models.User, error)

	// SaveProfile stores user as the new profile, replacing any prior
	// value whole. A profile arriving without an ID is assigned one.
	SaveProfile(ctx context.Context, user models.User) (models.User, error)
}

// MeasurementService manages the append-only measurement log and its
// derived views.
type MeasurementService interface {
	// Record runs the data-entry flow for a raw submission: derive the
	// BMI from the current profile height, construct the immutable
	// record and append it to the store. The profile must exist;
	// store.ErrProfileNotSet aborts the submission with no partial insert.
	Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error)

	// ListMeasurements returns the full history in insertion order.
	ListMeasurements(ctx context.Context) ([]models.Measurement, error)

	// GetMeasurement returns the measurement with the given ID.
	// Returns store.ErrMeasurementNotFound when there is none.
	GetMeasurement(ctx context.Context, id string) (models.Measurement, error)

	// LatestMeasurement returns the most recent measurement by Date.
	// Returns store.ErrNoMeasurements when the collection is empty.
	LatestMeasurement(ctx context.Context) (models.Measurement, error)

	// Dashboard aggregates everything the dashboard page needs: the
	// profile (when set), the full history, the latest measurement and
	// the record count. An empty history is not an error.
	Dashboard(ctx context.Context) (models.Dashboard, error)
}

// AppInfoService exposes application build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
// Implementations wrap an existing ProfileService to add behavior such as
// logging or validating.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService // returns a decorated ProfileService applying additional behavior
}

// MeasurementServiceWrapper defines middleware composition for
// MeasurementService. Implementations wrap an existing MeasurementService
// to add behavior such as logging or validating.
type MeasurementServiceWrapper interface {
	Wrap(MeasurementService) MeasurementService // returns a decorated MeasurementService applying additional behavior
}
