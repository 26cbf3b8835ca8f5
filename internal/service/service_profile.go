package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

type profileService struct {
	profiles  store.ProfileRepository
	generator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewProfileService constructs the storage-facing profile service.
// Input validation is not performed here; wrap the result with
// NewProfileValidationService for the full save pipeline.
func NewProfileService(profiles store.ProfileRepository, generator *utils.UUIDGenerator, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles:  profiles,
		generator: generator,
		logger:    logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context) (models.User, error) {
	return p.profiles.Get(ctx)
}

// SaveProfile assigns an ID to a first-time profile and replaces the
// stored value whole. A profile that already carries an ID keeps it, so
// re-saving does not re-identify the user.
func (p *profileService) SaveProfile(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		user.ID = p.generator.Generate()
	}

	stored, err := p.profiles.Replace(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error replacing profile: %w", err)
	}

	return stored, nil
}
