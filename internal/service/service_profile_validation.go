package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

// ProfileValidationService rejects malformed profiles before they replace
// the stored one. Reads pass through untouched.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *ProfileValidationService) GetProfile(ctx context.Context) (models.User, error) {
	return v.inner.GetProfile(ctx)
}

// SaveProfile validates the profile and delegates to the wrapped service.
// A failure joins [ErrValidationFailed] with the field-level report.
func (v *ProfileValidationService) SaveProfile(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, errors.Join(ErrValidationFailed, err)
	}

	return v.inner.SaveProfile(ctx, user)
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
