// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testMeasurement(id string, date time.Time, weight float64) models.Measurement {
	return models.Measurement{
		ID:                 id,
		UserID:             "u-1",
		Date:               date,
		Weight:             weight,
		BodyFatMass:        weight * 0.2,
		BodyFatPercentage:  20,
		SkeletalMuscleMass: 35,
		BMI:                24.7,
		PBF:                20,
	}
}

// ─────────────────────────────────────────────
// List / Add
// ─────────────────────────────────────────────

func TestMeasurementRepository_List_EmptyStore(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())

	list, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMeasurementRepository_AddThenGetByID(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	m := testMeasurement("m-1", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Add(ctx, m))

	got, err := repo.GetByID(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMeasurementRepository_List_PreservesInsertionOrder(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	// Insertion order deliberately disagrees with chronological order.
	newest := testMeasurement("m-1", time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC), 80)
	oldest := testMeasurement("m-2", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 81)
	middle := testMeasurement("m-3", time.Date(2026, 8, 2, 8, 0, 0, 0, time.UTC), 82)

	require.NoError(t, repo.Add(ctx, newest))
	require.NoError(t, repo.Add(ctx, oldest))
	require.NoError(t, repo.Add(ctx, middle))

	list, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, []models.Measurement{newest, oldest, middle}, list)
}

func TestMeasurementRepository_List_GrowsByOnePerAdd(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	for i, id := range []string{"m-1", "m-2", "m-3"} {
		m := testMeasurement(id, time.Date(2026, 8, 1+i, 8, 0, 0, 0, time.UTC), 80)
		require.NoError(t, repo.Add(ctx, m))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, i+1)
	}
}

// TestMeasurementRepository_List_ReturnsCopy verifies that mutating the
// returned slice leaves store state untouched.
func TestMeasurementRepository_List_ReturnsCopy(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	m := testMeasurement("m-1", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Add(ctx, m))

	list, err := repo.List(ctx)
	require.NoError(t, err)

	list[0].Weight = 999

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, m, fresh[0])
}

// ─────────────────────────────────────────────
// GetByID
// ─────────────────────────────────────────────

func TestMeasurementRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())

	_, err := repo.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMeasurementNotFound)
}

// TestMeasurementRepository_GetByID_FirstMatchWins verifies duplicate-ID
// resolution: the store does not deduplicate, the earliest inserted record
// with the requested ID is returned.
func TestMeasurementRepository_GetByID_FirstMatchWins(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	first := testMeasurement("dup", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	second := testMeasurement("dup", time.Date(2026, 8, 2, 8, 0, 0, 0, time.UTC), 85)

	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	got, err := repo.GetByID(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

// ─────────────────────────────────────────────
// Latest
// ─────────────────────────────────────────────

func TestMeasurementRepository_Latest_EmptyStore(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())

	_, err := repo.Latest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMeasurements)
}

// TestMeasurementRepository_Latest_MaxDateWins verifies that Latest is
// decided by Date, not by insertion position.
func TestMeasurementRepository_Latest_MaxDateWins(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	newest := testMeasurement("m-1", time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC), 80)
	oldest := testMeasurement("m-2", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 81)

	// The newest reading is inserted first.
	require.NoError(t, repo.Add(ctx, newest))
	require.NoError(t, repo.Add(ctx, oldest))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newest, got)
}

// TestMeasurementRepository_Latest_TieBreak verifies the documented
// tie-break: among records sharing the maximum Date, the earliest inserted
// wins, on every call.
func TestMeasurementRepository_Latest_TieBreak(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	sameDate := time.Date(2026, 8, 3, 8, 0, 0, 0, time.UTC)
	a := testMeasurement("m-a", sameDate, 80)
	b := testMeasurement("m-b", sameDate, 81)

	require.NoError(t, repo.Add(ctx, a))
	require.NoError(t, repo.Add(ctx, b))

	for i := 0; i < 3; i++ {
		got, err := repo.Latest(ctx)
		require.NoError(t, err)
		assert.Equal(t, a, got, "call %d must return the earliest inserted of the tied set", i)
	}
}

func TestMeasurementRepository_Latest_SingleRecord(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	only := testMeasurement("m-1", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Add(ctx, only))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, only, got)
}

// ─────────────────────────────────────────────
// SubscribeMeasurements
// ─────────────────────────────────────────────

func TestMeasurementRepository_Subscribe_NotifiedOnAdd(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	var received []models.Measurement
	repo.SubscribeMeasurements(func(m models.Measurement) {
		received = append(received, m)
	})

	first := testMeasurement("m-1", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	second := testMeasurement("m-2", time.Date(2026, 8, 2, 8, 0, 0, 0, time.UTC), 81)

	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	assert.Equal(t, []models.Measurement{first, second}, received)
}

// TestMeasurementRepository_Subscribe_LateSubscriber verifies that a
// subscriber only observes adds performed after registration. Seeding
// relies on this: records loaded before subscribers attach produce no
// notifications.
func TestMeasurementRepository_Subscribe_LateSubscriber(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	early := testMeasurement("m-1", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Add(ctx, early))

	var received []models.Measurement
	repo.SubscribeMeasurements(func(m models.Measurement) {
		received = append(received, m)
	})

	late := testMeasurement("m-2", time.Date(2026, 8, 2, 8, 0, 0, 0, time.UTC), 81)
	require.NoError(t, repo.Add(ctx, late))

	assert.Equal(t, []models.Measurement{late}, received)
}

// TestMeasurementRepository_SubscriberReadsBack verifies that a subscriber
// can query the store during notification and already sees the new record.
func TestMeasurementRepository_SubscriberReadsBack(t *testing.T) {
	repo := NewMeasurementRepository(logger.Nop())
	ctx := context.Background()

	var observedLen int
	repo.SubscribeMeasurements(func(models.Measurement) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		observedLen = len(list)
	})

	m := testMeasurement("m-1", time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Add(ctx, m))

	assert.Equal(t, 1, observedLen)
}
