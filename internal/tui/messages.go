package tui

import (
	"github.com/MKhiriev/go-health-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. When Payload is set
// it is delivered to the target page instead of the page's Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// ProfileSavedNotice is delivered to the menu page right after the profile
// form saved successfully.
type ProfileSavedNotice struct {
	Name string
}

// MeasurementRecordedNotice is delivered to the dashboard page right after
// the entry form recorded a new reading.
type MeasurementRecordedNotice struct{}

type profileLoadedMsg struct {
	profile models.User
	err     error
}

type profileSavedMsg struct {
	profile models.User
	err     error
}

type entryRecordedMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	data models.Dashboard
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
