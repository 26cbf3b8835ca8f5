package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

// MeasurementValidationService rejects malformed submissions before they
// reach the storage-facing measurement service. Read operations pass
// through untouched.
type MeasurementValidationService struct {
	inner     MeasurementService
	validator validators.Validator
}

func NewMeasurementValidationService() MeasurementServiceWrapper {
	return &MeasurementValidationService{
		validator: validators.NewMeasurementValidator(),
	}
}

// Record validates the submission and delegates to the wrapped service.
// A failure joins [ErrValidationFailed] with the field-level report, so
// callers can both recognize the class of error with [errors.Is] and
// recover the mapping with [validators.AsFieldErrors].
func (v *MeasurementValidationService) Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error) {
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.Measurement{}, errors.Join(ErrValidationFailed, err)
	}

	return v.inner.Record(ctx, entry)
}

func (v *MeasurementValidationService) ListMeasurements(ctx context.Context) ([]models.Measurement, error) {
	return v.inner.ListMeasurements(ctx)
}

func (v *MeasurementValidationService) GetMeasurement(ctx context.Context, id string) (models.Measurement, error) {
	return v.inner.GetMeasurement(ctx, id)
}

func (v *MeasurementValidationService) LatestMeasurement(ctx context.Context) (models.Measurement, error) {
	return v.inner.LatestMeasurement(ctx)
}

func (v *MeasurementValidationService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	return v.inner.Dashboard(ctx)
}

func (v *MeasurementValidationService) Wrap(wrapped MeasurementService) MeasurementService {
	v.inner = wrapped
	return v
}
