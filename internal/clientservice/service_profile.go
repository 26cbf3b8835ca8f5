package clientservice

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type profileService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewProfileService(serverAdapter adapter.ServerAdapter) ProfileService {
	return &profileService{adapter: serverAdapter, validator: validators.NewUserValidator()}
}

func (p *profileService) GetProfile(ctx context.Context) (models.User, error) {
	profile, err := p.adapter.FetchProfile(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return profile, nil
}

// SaveProfile validates the form input before it leaves the client. The
// server runs the same checks again, so a rejection can still come back as
// [ErrValidationFailed] from the adapter path.
func (p *profileService) SaveProfile(ctx context.Context, user models.User) (models.User, error) {
	if err := p.validator.Validate(ctx, user); err != nil {
		return models.User{}, errors.Join(ErrValidationFailed, err)
	}

	saved, err := p.adapter.SaveProfile(ctx, user)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return saved, nil
}
