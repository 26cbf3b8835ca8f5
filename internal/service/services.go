package service

import (
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

// Services bundles every application service behind its public interface.
// Both write paths come pre-wrapped with their validation services, so
// handlers never reach an unvalidated pipeline.
type Services struct {
	ProfileService     ProfileService
	MeasurementService MeasurementService
	AppInfoService     AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	generator := utils.NewUUIDGenerator()

	profileService := NewProfileService(storages.ProfileRepository, generator, logger)
	measurementService := NewMeasurementService(storages.ProfileRepository, storages.MeasurementRepository, generator, logger)

	return &Services{
		ProfileService:     NewProfileValidationService().Wrap(profileService),
		MeasurementService: NewMeasurementValidationService().Wrap(measurementService),
		AppInfoService:     appInfoService,
	}, nil
}
