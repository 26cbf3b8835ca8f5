// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
)

// memoryMeasurementRepository is the default implementation of
// [MeasurementRepository]. The collection lives in process memory in
// insertion order and only ever grows.
//
// A sync.RWMutex guards the slice. Add notifies subscribers synchronously
// after releasing the lock, so subscribers may call back into the store
// without deadlocking.
type memoryMeasurementRepository struct {
	mu    sync.RWMutex
	items []models.Measurement
	subs  []func(models.Measurement)

	logger *logger.Logger
}

// NewMeasurementRepository constructs an empty in-memory
// [MeasurementRepository].
func NewMeasurementRepository(logger *logger.Logger) MeasurementRepository {
	logger.Debug().Msg("creating in-memory measurement store")

	return &memoryMeasurementRepository{
		logger: logger,
	}
}

// List returns a copy of the collection in insertion order. Callers may
// mutate the returned slice freely without affecting store state.
func (r *memoryMeasurementRepository) List(ctx context.Context) ([]models.Measurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Measurement, len(r.items))
	copy(out, r.items)

	return out, nil
}

// Add appends m to the end of the collection. Duplicate IDs are not
// rejected here; GetByID resolves them by insertion order. Registered
// subscribers are invoked with m before Add returns.
func (r *memoryMeasurementRepository) Add(ctx context.Context, m models.Measurement) error {
	r.mu.Lock()
	r.items = append(r.items, m)
	subs := r.subs
	r.mu.Unlock()

	for _, fn := range subs {
		fn(m)
	}

	return nil
}

// GetByID scans the collection in insertion order and returns the first
// measurement whose ID matches exactly.
func (r *memoryMeasurementRepository) GetByID(ctx context.Context, id string) (models.Measurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}

	return models.Measurement{}, ErrMeasurementNotFound
}

// Latest returns the measurement with the maximum Date value.
//
// The scan replaces the candidate only on a strictly later Date, so among
// measurements tied on the maximum Date the earliest inserted one wins.
// The result is deterministic on every call.
func (r *memoryMeasurementRepository) Latest(ctx context.Context) (models.Measurement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return models.Measurement{}, ErrNoMeasurements
	}

	latest := r.items[0]
	for _, m := range r.items[1:] {
		if m.Date.After(latest.Date) {
			latest = m
		}
	}

	return latest, nil
}

// SubscribeMeasurements registers fn for synchronous notification on every
// successful Add.
func (r *memoryMeasurementRepository) SubscribeMeasurements(fn func(models.Measurement)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = append(r.subs, fn)
}
