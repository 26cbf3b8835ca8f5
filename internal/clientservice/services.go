package clientservice

import (
	"github.com/MKhiriev/go-health-keeper/internal/adapter"
)

type Services struct {
	ProfileService     ProfileService
	MeasurementService MeasurementService
	AppInfoService     AppInfoService
}

func NewServices(serverAdapter adapter.ServerAdapter) *Services {
	return &Services{
		ProfileService:     NewProfileService(serverAdapter),
		MeasurementService: NewMeasurementService(serverAdapter),
		AppInfoService:     NewAppInfoService(serverAdapter),
	}
}
