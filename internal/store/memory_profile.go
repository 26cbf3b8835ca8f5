// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/models"
)

// memoryProfileRepository is the default implementation of
// [ProfileRepository]. State lives in process memory only and is lost on
// shutdown; the measurement domain has no durable storage requirement.
//
// A sync.RWMutex guards the profile value so that every replacement takes
// effect atomically from any reader's perspective. Subscribers run
// synchronously inside Replace, after the lock is released, so a
// subscriber reading the store back observes the value it was notified
// about and cannot deadlock on the mutex.
type memoryProfileRepository struct {
	mu   sync.RWMutex
	user models.User
	set  bool
	subs []func(models.User)

	logger *logger.Logger
}

// NewProfileRepository constructs an empty in-memory [ProfileRepository].
// The store starts with no profile: Get returns ErrProfileNotSet until the
// first Replace.
func NewProfileRepository(logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating in-memory profile store")

	return &memoryProfileRepository{
		logger: logger,
	}
}

// Get returns the current profile or ErrProfileNotSet when none is stored.
func (r *memoryProfileRepository) Get(ctx context.Context) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.set {
		return models.User{}, ErrProfileNotSet
	}

	return r.user, nil
}

// Replace stores user as the new profile, discarding any prior value.
// Registered subscribers are invoked with the stored value before Replace
// returns; a read issued after Replace observes the new profile.
func (r *memoryProfileRepository) Replace(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	r.user = user
	r.set = true
	subs := r.subs
	r.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}

	return user, nil
}

// SubscribeProfile registers fn for synchronous notification on every
// successful Replace.
func (r *memoryProfileRepository) SubscribeProfile(fn func(models.User)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs = append(r.subs, fn)
}
