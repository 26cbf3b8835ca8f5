package clientservice

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
)

type appInfoService struct {
	adapter adapter.ServerAdapter
}

func NewAppInfoService(serverAdapter adapter.ServerAdapter) AppInfoService {
	return &appInfoService{adapter: serverAdapter}
}

func (a *appInfoService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
