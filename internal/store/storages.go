package store

import (
	"github.com/MKhiriev/go-health-keeper/internal/logger"
)

// Storages aggregates every repository of the application for injection
// into the service layer.
type Storages struct {
	ProfileRepository     ProfileRepository
	MeasurementRepository MeasurementRepository
}

// NewStorages constructs the in-memory repositories and bundles them.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		ProfileRepository:     NewProfileRepository(logger),
		MeasurementRepository: NewMeasurementRepository(logger),
	}
}
