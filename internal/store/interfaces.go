package store

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

// ProfileRepository holds the single user profile of the application.
//
// At most one profile exists at a time. Replace swaps the whole value;
// there is no partial merge and no history. The store performs no
// validation; that is the caller's responsibility.
type ProfileRepository interface {
	// Get returns the current profile, or ErrProfileNotSet when none has
	// been saved yet.
	Get(ctx context.Context) (models.User, error)

	// Replace stores user as the new profile, discarding any prior value,
	// and returns the stored profile. Subscribers are notified
	// synchronously before Replace returns.
	Replace(ctx context.Context, user models.User) (models.User, error)

	// SubscribeProfile registers fn to be called with the new profile
	// after every successful Replace. Subscribers cannot unsubscribe.
	SubscribeProfile(fn func(models.User))
}

// MeasurementRepository holds the append-only collection of recorded
// measurements in insertion order.
//
// Records are immutable once added; there is no edit or delete. Insertion
// order is preserved but is not assumed chronological: Latest compares
// Date values, never positions.
type MeasurementRepository interface {
	// List returns all measurements in insertion order. The returned slice
	// is a copy: mutating it does not affect store state.
	List(ctx context.Context) ([]models.Measurement, error)

	// Add appends m to the collection. No deduplication by ID, no
	// validation, no size limit. Subscribers are notified synchronously
	// before Add returns.
	Add(ctx context.Context, m models.Measurement) error

	// GetByID returns the first measurement in insertion order whose ID
	// matches exactly, or ErrMeasurementNotFound when there is none.
	GetByID(ctx context.Context, id string) (models.Measurement, error)

	// Latest returns the measurement with the maximum Date, or
	// ErrNoMeasurements when the collection is empty. When several
	// measurements share the maximum Date, the earliest inserted of the
	// tied set wins, deterministically on every call.
	Latest(ctx context.Context) (models.Measurement, error)

	// SubscribeMeasurements registers fn to be called with every newly
	// added measurement. Subscribers cannot unsubscribe.
	SubscribeMeasurements(fn func(models.Measurement))
}
