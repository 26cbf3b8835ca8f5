// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/clientservice"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const dashboardDateLayout = "02.01.2006"

// DashboardModel is the Bubble Tea model for the dashboard page. It fetches
// the whole snapshot in one request: the profile, the latest reading with
// its derived metrics and the full history.
type DashboardModel struct {
	ctx          context.Context
	measurements clientservice.MeasurementService

	data    models.Dashboard
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

// NewDashboardModel creates the dashboard page. The snapshot is loaded by
// Init every time the page is opened.
func NewDashboardModel(ctx context.Context, measurements clientservice.MeasurementService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:          ctx,
		measurements: measurements,
		spinner:      s,
	}
}

// Init implements [tea.Model]. Kicks off the snapshot load with a spinner.
func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// Update implements [tea.Model]. Handled messages:
//   - [dashboardLoadedMsg]         — stores the snapshot or the load error.
//   - [MeasurementRecordedNotice]  — sets the confirmation status and reloads.
//   - [copiedMsg]/[clearStatusMsg] — clipboard confirmation lifecycle.
//   - r   — reloads the snapshot.
//   - c   — copies the latest-reading summary line to the clipboard.
//   - esc — navigates back to the menu.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case MeasurementRecordedNotice:
		m.status = "Измерение записано"
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), cmdClearStatus())
	case dashboardLoadedMsg:
		m.loading = false
		if result.err != nil {
			m.errMsg = humanizeClientError(result.err)
			return m, nil
		}
		m.errMsg = ""
		m.data = result.data
		return m, nil
	case copiedMsg:
		if result.err != nil {
			m.errMsg = humanizeClientError(result.err)
			return m, nil
		}
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(result)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case key.Matches(keyMsg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(keyMsg, keys.copy):
		if m.data.Latest == nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(latestSummaryLine(*m.data.Latest))
	}

	return m, nil
}

// View implements [tea.Model]. Renders three sections: the profile summary,
// the latest reading with derived metrics and the history table.
func (m *DashboardModel) View() string {
	if m.loading {
		return renderPage("ДАШБОРД", m.spinner.View()+" Загрузка...", "esc: назад")
	}

	var b strings.Builder
	b.WriteString(m.profileSection())
	b.WriteString("\n")
	b.WriteString(m.latestSection())
	b.WriteString("\n")
	b.WriteString(m.historySection())

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ДАШБОРД", strings.TrimRight(b.String(), "\n"),
		"r: обновить │ c: копировать сводку │ esc: назад")
}

func (m *DashboardModel) profileSection() string {
	var b strings.Builder
	b.WriteString("Профиль\n")

	profile := m.data.Profile
	if profile == nil {
		b.WriteString("  Профиль не заполнен\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s, %d лет, %s, рост %s см\n",
		fitText(profile.Name, 24), profile.Age, profile.Gender, formatReading(profile.Height)))
	b.WriteString("  Email: ")
	b.WriteString(valueOrDash(profile.Email))
	b.WriteString("\n")
	return b.String()
}

func (m *DashboardModel) latestSection() string {
	var b strings.Builder
	b.WriteString("Последнее измерение\n")

	latest := m.data.Latest
	if latest == nil {
		b.WriteString("  Нет измерений\n")
		return b.String()
	}

	b.WriteString("  Дата: ")
	b.WriteString(latest.Date.Format(dashboardDateLayout))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Вес: %s кг │ ИМТ: %s │ Жир: %s %% (%s кг) │ Мышцы: %s кг\n",
		formatReading(latest.Weight), formatReading(latest.BMI),
		formatReading(latest.BodyFatPercentage), formatReading(latest.BodyFatMass),
		formatReading(latest.SkeletalMuscleMass)))
	b.WriteString(fmt.Sprintf("  Вода: %s │ Висц. жир: %s │ Метаболизм: %s │ Метаб. возраст: %s\n",
		readingWithUnit(latest.WaterPercentage, " %"),
		readingOrDash(latest.VisceralFat),
		readingWithUnit(latest.BasalMetabolicRate, " ккал"),
		readingWithUnit(latest.MetabolicAge, " лет")))
	return b.String()
}

func (m *DashboardModel) historySection() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("История (%d)\n", m.data.Count))

	if len(m.data.History) == 0 {
		b.WriteString("  Нет измерений\n")
		return b.String()
	}

	b.WriteString("  ")
	b.WriteString(padCell("Дата", 10))
	b.WriteString(" │ ")
	b.WriteString(padCell("Вес", 6))
	b.WriteString(" │ ")
	b.WriteString(padCell("ИМТ", 5))
	b.WriteString(" │ ")
	b.WriteString(padCell("Жир %", 6))
	b.WriteString(" │ Мышцы\n")
	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", 10))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 6))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 5))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 6))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 6))
	b.WriteString("\n")

	for _, record := range m.data.History {
		b.WriteString(fmt.Sprintf("  %s │ %s │ %s │ %s │ %s\n",
			padCell(record.Date.Format(dashboardDateLayout), 10),
			padCell(formatReading(record.Weight), 6),
			padCell(formatReading(record.BMI), 5),
			padCell(formatReading(record.BodyFatPercentage), 6),
			formatReading(record.SkeletalMuscleMass)))
	}
	return b.String()
}

// latestSummaryLine is the one-line summary of a reading that "c" puts on
// the clipboard.
func latestSummaryLine(m models.Measurement) string {
	return fmt.Sprintf("%s: вес %s кг, ИМТ %s, жир %s %%, мышцы %s кг",
		m.Date.Format(dashboardDateLayout),
		formatReading(m.Weight), formatReading(m.BMI),
		formatReading(m.BodyFatPercentage), formatReading(m.SkeletalMuscleMass))
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	measurements := m.measurements

	return func() tea.Msg {
		data, err := measurements.Dashboard(ctx)
		return dashboardLoadedMsg{data: data, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
