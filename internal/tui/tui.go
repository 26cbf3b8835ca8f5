package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-health-keeper/internal/clientservice"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user closed the application from the UI.
var ErrUserQuit = errors.New("вышел из программы")

// TUI is the terminal user interface of the application. It owns the page
// models and runs the Bubble Tea program over the client services.
type TUI struct {
	services *clientservice.Services
	logger   *logger.Logger
}

// New creates the terminal UI over the given client services.
func New(services *clientservice.Services, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are not provided")
	}

	return &TUI{services: services, logger: logger}, nil
}

// Run builds the pages, opens the menu and blocks until the user quits.
// A quit from the UI is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Debug().Msg("starting terminal ui")

	pages := map[string]tea.Model{
		"menu":      NewMenuModel(),
		"profile":   NewProfileFormModel(ctx, t.services.ProfileService),
		"entry":     NewEntryFormModel(ctx, t.services.MeasurementService),
		"dashboard": NewDashboardModel(ctx, t.services.MeasurementService),
	}

	root := NewRootModel(ctx, pages, "menu", t.services.AppInfoService)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Msg("terminal ui closed by user")
		return ErrUserQuit
	}

	return nil
}
