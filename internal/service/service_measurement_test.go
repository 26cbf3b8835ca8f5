// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/metrics"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.MeasurementRepository
// ─────────────────────────────────────────────

type mockMeasurementRepository struct {
	listFn      func(ctx context.Context) ([]models.Measurement, error)
	addFn       func(ctx context.Context, m models.Measurement) error
	getByIDFn   func(ctx context.Context, id string) (models.Measurement, error)
	latestFn    func(ctx context.Context) (models.Measurement, error)
	subscribeFn func(fn func(models.Measurement))
}

func (m *mockMeasurementRepository) List(ctx context.Context) ([]models.Measurement, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockMeasurementRepository) Add(ctx context.Context, measurement models.Measurement) error {
	if m.addFn != nil {
		return m.addFn(ctx, measurement)
	}
	return nil
}

func (m *mockMeasurementRepository) GetByID(ctx context.Context, id string) (models.Measurement, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Measurement{}, store.ErrMeasurementNotFound
}

func (m *mockMeasurementRepository) Latest(ctx context.Context) (models.Measurement, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx)
	}
	return models.Measurement{}, store.ErrNoMeasurements
}

func (m *mockMeasurementRepository) SubscribeMeasurements(fn func(models.Measurement)) {
	if m.subscribeFn != nil {
		m.subscribeFn(fn)
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fixedNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func profileRepoWith(user models.User) *mockProfileRepository {
	return &mockProfileRepository{
		getFn: func(_ context.Context) (models.User, error) { return user, nil },
	}
}

// newRawMeasurementService bypasses the validation wrapper and pins the
// clock so date defaulting is deterministic.
func newRawMeasurementService(profiles *mockProfileRepository, measurements *mockMeasurementRepository) *measurementService {
	return &measurementService{
		profiles:     profiles,
		measurements: measurements,
		generator:    utils.NewUUIDGenerator(),
		now:          func() time.Time { return fixedNow },
		logger:       logger.Nop(),
	}
}

func fptr(v float64) *float64 {
	return &v
}

// ─────────────────────────────────────────────
// Record
// ─────────────────────────────────────────────

func TestMeasurementService_Record_DerivesMetrics(t *testing.T) {
	profiles := profileRepoWith(models.User{ID: "u-1", Name: "Bob", Age: 41, Gender: models.GenderMale, Height: 180})
	var added models.Measurement
	measurements := &mockMeasurementRepository{
		addFn: func(_ context.Context, m models.Measurement) error {
			added = m
			return nil
		},
	}
	svc := newRawMeasurementService(profiles, measurements)

	got, err := svc.Record(context.Background(), models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})

	require.NoError(t, err)
	assert.Equal(t, added, got, "the stored record must be returned as-is")
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, fixedNow, got.Date, "dateless submissions default to the current time")
	assert.InDelta(t, 80.0, got.Weight, 1e-9)
	assert.InDelta(t, 16.0, got.BodyFatMass, 1e-9, "80 kg at 20%% body fat")
	assert.InDelta(t, 20.0, got.BodyFatPercentage, 1e-9)
	assert.InDelta(t, 35.0, got.SkeletalMuscleMass, 1e-9)
	assert.InDelta(t, 24.7, got.BMI, 1e-9, "80 kg at 180 cm")
	assert.InDelta(t, 20.0, got.PBF, 1e-9, "pbf mirrors body fat percentage")
}

func TestMeasurementService_Record_OptionalReadingsDefaultToZero(t *testing.T) {
	profiles := profileRepoWith(models.User{ID: "u-1", Height: 180})
	svc := newRawMeasurementService(profiles, &mockMeasurementRepository{})

	got, err := svc.Record(context.Background(), models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})

	require.NoError(t, err)
	assert.Zero(t, got.VisceralFat)
	assert.Zero(t, got.WaterPercentage)
	assert.Zero(t, got.BasalMetabolicRate)
	assert.Zero(t, got.MetabolicAge)
}

func TestMeasurementService_Record_KeepsOptionalReadings(t *testing.T) {
	profiles := profileRepoWith(models.User{ID: "u-1", Height: 175})
	svc := newRawMeasurementService(profiles, &mockMeasurementRepository{})

	got, err := svc.Record(context.Background(), models.MeasurementEntry{
		Weight:             fptr(72.4),
		BodyFatPercentage:  fptr(18.3),
		SkeletalMuscleMass: fptr(33.1),
		VisceralFat:        fptr(7),
		WaterPercentage:    fptr(55.2),
		BasalMetabolicRate: fptr(1630),
		MetabolicAge:       fptr(29),
	})

	require.NoError(t, err)
	assert.InDelta(t, 7.0, got.VisceralFat, 1e-9)
	assert.InDelta(t, 55.2, got.WaterPercentage, 1e-9)
	assert.InDelta(t, 1630.0, got.BasalMetabolicRate, 1e-9)
	assert.InDelta(t, 29.0, got.MetabolicAge, 1e-9)
}

func TestMeasurementService_Record_KeepsSubmittedDate(t *testing.T) {
	profiles := profileRepoWith(models.User{ID: "u-1", Height: 180})
	svc := newRawMeasurementService(profiles, &mockMeasurementRepository{})

	submitted := time.Date(2026, time.January, 2, 8, 0, 0, 0, time.UTC)
	got, err := svc.Record(context.Background(), models.MeasurementEntry{
		Date:               &submitted,
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})

	require.NoError(t, err)
	assert.Equal(t, submitted, got.Date)
}

func TestMeasurementService_Record_UniqueIDs(t *testing.T) {
	profiles := profileRepoWith(models.User{ID: "u-1", Height: 180})
	svc := newRawMeasurementService(profiles, &mockMeasurementRepository{})
	entry := models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	}

	first, err := svc.Record(context.Background(), entry)
	require.NoError(t, err)
	second, err := svc.Record(context.Background(), entry)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestMeasurementService_Record_NoProfile(t *testing.T) {
	svc := newRawMeasurementService(&mockProfileRepository{}, &mockMeasurementRepository{})

	_, err := svc.Record(context.Background(), models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})

	assert.ErrorIs(t, err, store.ErrProfileNotSet, "recording requires a saved profile for bmi derivation")
}

func TestMeasurementService_Record_ZeroHeightProfile(t *testing.T) {
	// A profile stored without validation can carry height 0;
	// bmi derivation must refuse it instead of dividing by zero.
	profiles := profileRepoWith(models.User{ID: "u-1", Height: 0})
	svc := newRawMeasurementService(profiles, &mockMeasurementRepository{})

	_, err := svc.Record(context.Background(), models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})

	assert.ErrorIs(t, err, metrics.ErrNonPositiveHeight)
}

func TestMeasurementService_Record_StorageError(t *testing.T) {
	profiles := profileRepoWith(models.User{ID: "u-1", Height: 180})
	measurements := &mockMeasurementRepository{
		addFn: func(_ context.Context, _ models.Measurement) error {
			return errStorage
		},
	}
	svc := newRawMeasurementService(profiles, measurements)

	_, err := svc.Record(context.Background(), models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})

	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Read passthroughs
// ─────────────────────────────────────────────

func TestMeasurementService_ListMeasurements_Delegates(t *testing.T) {
	want := []models.Measurement{{ID: "m-1"}, {ID: "m-2"}}
	measurements := &mockMeasurementRepository{
		listFn: func(_ context.Context) ([]models.Measurement, error) { return want, nil },
	}
	svc := newRawMeasurementService(&mockProfileRepository{}, measurements)

	got, err := svc.ListMeasurements(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMeasurementService_GetMeasurement_Delegates(t *testing.T) {
	measurements := &mockMeasurementRepository{
		getByIDFn: func(_ context.Context, id string) (models.Measurement, error) {
			assert.Equal(t, "m-7", id)
			return models.Measurement{ID: "m-7"}, nil
		},
	}
	svc := newRawMeasurementService(&mockProfileRepository{}, measurements)

	got, err := svc.GetMeasurement(context.Background(), "m-7")

	require.NoError(t, err)
	assert.Equal(t, "m-7", got.ID)
}

func TestMeasurementService_GetMeasurement_NotFound(t *testing.T) {
	svc := newRawMeasurementService(&mockProfileRepository{}, &mockMeasurementRepository{})

	_, err := svc.GetMeasurement(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrMeasurementNotFound)
}

func TestMeasurementService_LatestMeasurement_Delegates(t *testing.T) {
	measurements := &mockMeasurementRepository{
		latestFn: func(_ context.Context) (models.Measurement, error) {
			return models.Measurement{ID: "m-latest"}, nil
		},
	}
	svc := newRawMeasurementService(&mockProfileRepository{}, measurements)

	got, err := svc.LatestMeasurement(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "m-latest", got.ID)
}

// ─────────────────────────────────────────────
// Dashboard
// ─────────────────────────────────────────────

func TestMeasurementService_Dashboard_Full(t *testing.T) {
	user := models.User{ID: "u-1", Name: "Alice", Height: 165.5}
	history := []models.Measurement{{ID: "m-1"}, {ID: "m-2"}}
	latest := history[1]

	profiles := profileRepoWith(user)
	measurements := &mockMeasurementRepository{
		listFn:   func(_ context.Context) ([]models.Measurement, error) { return history, nil },
		latestFn: func(_ context.Context) (models.Measurement, error) { return latest, nil },
	}
	svc := newRawMeasurementService(profiles, measurements)

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, user, *got.Profile)
	require.NotNil(t, got.Latest)
	assert.Equal(t, latest, *got.Latest)
	assert.Equal(t, history, got.History)
	assert.Equal(t, 2, got.Count)
}

func TestMeasurementService_Dashboard_EmptyState(t *testing.T) {
	// Before any data has been entered the dashboard still renders:
	// no profile and no latest reading is not an error.
	svc := newRawMeasurementService(&mockProfileRepository{}, &mockMeasurementRepository{})

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got.Profile)
	assert.Nil(t, got.Latest)
	assert.Empty(t, got.History)
	assert.Zero(t, got.Count)
}

func TestMeasurementService_Dashboard_HistoryWithoutProfile(t *testing.T) {
	history := []models.Measurement{{ID: "m-1"}}
	measurements := &mockMeasurementRepository{
		listFn:   func(_ context.Context) ([]models.Measurement, error) { return history, nil },
		latestFn: func(_ context.Context) (models.Measurement, error) { return history[0], nil },
	}
	svc := newRawMeasurementService(&mockProfileRepository{}, measurements)

	got, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got.Profile, "seeded histories may exist before a profile is saved")
	require.NotNil(t, got.Latest)
	assert.Equal(t, 1, got.Count)
}

func TestMeasurementService_Dashboard_ListError(t *testing.T) {
	measurements := &mockMeasurementRepository{
		listFn: func(_ context.Context) ([]models.Measurement, error) { return nil, errStorage },
	}
	svc := newRawMeasurementService(&mockProfileRepository{}, measurements)

	_, err := svc.Dashboard(context.Background())

	assert.ErrorIs(t, err, errStorage)
}

func TestMeasurementService_Dashboard_ProfileError(t *testing.T) {
	profiles := &mockProfileRepository{
		getFn: func(_ context.Context) (models.User, error) { return models.User{}, errStorage },
	}
	svc := newRawMeasurementService(profiles, &mockMeasurementRepository{})

	_, err := svc.Dashboard(context.Background())

	assert.ErrorIs(t, err, errStorage, "only a missing profile is tolerated, not storage failures")
}
