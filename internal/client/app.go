package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-keeper/internal/clientservice"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/tui"
)

// App is the terminal client application. It owns the client services and
// the terminal UI and drives them through one Run lifecycle.
type App struct {
	services *clientservice.Services
	tui      *tui.TUI

	logger *logger.Logger
}

// NewApp assembles the client application from its already-constructed
// parts. The caller wires config, adapter, services and UI; NewApp only
// checks that nothing is missing.
func NewApp(services *clientservice.Services, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not provided")
	}
	if ui == nil {
		return nil, errors.New("terminal ui is not provided")
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run probes the server and blocks in the terminal UI until the user
// leaves. An unreachable server is logged and the UI still starts: every
// page reports its own transport failures, so the client stays usable for
// retrying. Quitting from the UI is a normal exit, not an error.
func (a *App) Run() error {
	ctx := context.Background()

	if version, err := a.services.AppInfoService.GetServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server is not reachable, starting ui anyway")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return err
	}

	return nil
}
