package tui

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/internal/clientservice"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	pages   map[string]tea.Model
	current tea.Model

	info clientservice.AppInfoService

	quitByUser bool

	showVersion    bool
	versionLoading bool
	serverVersion  string
	versionErr     error
}

// NewRootModel registers all pages and opens startPage. The info service
// backs the version window toggled with "v" on the menu page.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, info clientservice.AppInfoService) RootModel {
	return RootModel{
		ctx:     ctx,
		pages:   pages,
		current: pages[startPage],
		info:    info,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version):
			if r.showVersion {
				r.showVersion = false
				return r, nil
			}
			if r.isMenuPage() {
				r.showVersion = true
				r.versionLoading = true
				return r, r.cmdServerVersion()
			}
		case key.Matches(keyMsg, keys.esc):
			if r.showVersion {
				r.showVersion = false
				return r, nil
			}
		}

		if r.showVersion {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case serverVersionMsg:
		r.versionLoading = false
		r.serverVersion = msg.version
		r.versionErr = msg.err
		return r, nil
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showVersion = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showVersion {
		return appStyle.Render(renderVersionWindow(r.serverVersion, r.versionLoading, r.versionErr))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("HealthKeeper", "", ""))
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	info := r.info

	return func() tea.Msg {
		version, err := info.GetServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
