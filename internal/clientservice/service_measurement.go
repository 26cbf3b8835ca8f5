package clientservice

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

type measurementService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewMeasurementService(serverAdapter adapter.ServerAdapter) MeasurementService {
	return &measurementService{adapter: serverAdapter, validator: validators.NewMeasurementValidator()}
}

// Record blocks an invalid entry locally so the form shows the rejection
// without a round trip. The server revalidates and derives BMI and fat mass
// from the stored profile height.
func (m *measurementService) Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error) {
	if err := m.validator.Validate(ctx, entry); err != nil {
		return models.Measurement{}, errors.Join(ErrValidationFailed, err)
	}

	measurement, err := m.adapter.Record(ctx, entry)
	if err != nil {
		return models.Measurement{}, mapAdapterError(err)
	}

	return measurement, nil
}

func (m *measurementService) ListMeasurements(ctx context.Context) ([]models.Measurement, error) {
	history, err := m.adapter.Measurements(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return history, nil
}

func (m *measurementService) LatestMeasurement(ctx context.Context) (models.Measurement, error) {
	measurement, err := m.adapter.Latest(ctx)
	if err != nil {
		return models.Measurement{}, mapAdapterError(err)
	}

	return measurement, nil
}

func (m *measurementService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	snapshot, err := m.adapter.Dashboard(ctx)
	if err != nil {
		return models.Dashboard{}, mapAdapterError(err)
	}

	return snapshot, nil
}
