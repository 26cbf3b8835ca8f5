// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/clientservice"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focusable rows of the profile form, top to bottom. The gender row is a
// fixed-option selector, every other row is a text input.
const (
	profileRowName = iota
	profileRowAge
	profileRowGender
	profileRowHeight
	profileRowEmail
	profileRowCount
)

var genderOptions = []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}

// ProfileFormModel is the Bubble Tea model for the profile page. It loads
// the saved profile on entry, lets the user edit it and submits the whole
// form as one replacement. Validation problems are shown next to the rows
// they refer to, whether they were found locally or by the server.
type ProfileFormModel struct {
	ctx      context.Context
	profiles clientservice.ProfileService

	inputs    []textinput.Model // name, age, height, email
	genderIdx int
	focus     int

	profileID  string
	submitting bool
	fieldErrs  validators.FieldErrors
	errMsg     string
}

// NewProfileFormModel creates the profile form with empty inputs. The saved
// profile, when one exists, is loaded by Init and fills the form in place.
func NewProfileFormModel(ctx context.Context, profiles clientservice.ProfileService) *ProfileFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "имя"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	ageInput := textinput.New()
	ageInput.Placeholder = "возраст, лет"
	ageInput.CharLimit = 3
	ageInput.Width = 40

	heightInput := textinput.New()
	heightInput.Placeholder = "рост, см"
	heightInput.CharLimit = 6
	heightInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "email (необязательно)"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	return &ProfileFormModel{
		ctx:      ctx,
		profiles: profiles,
		inputs:   []textinput.Model{nameInput, ageInput, heightInput, emailInput},
	}
}

// profileInputIndex maps a focusable row to its text input. The gender row
// has no input and reports false.
func profileInputIndex(row int) (int, bool) {
	switch row {
	case profileRowName:
		return 0, true
	case profileRowAge:
		return 1, true
	case profileRowHeight:
		return 2, true
	case profileRowEmail:
		return 3, true
	}
	return 0, false
}

// Init implements [tea.Model]. Starts the cursor-blink animation and the
// async load of the saved profile.
func (m *ProfileFormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

// Update implements [tea.Model]. Handled messages:
//   - [profileLoadedMsg] — fills the form with the saved profile; a missing
//     profile just leaves the form blank.
//   - [profileSavedMsg]  — on success navigates to the menu with a notice;
//     validation problems are attached to the rows they refer to.
//   - esc        — cancels and navigates back to the menu.
//   - tab        — moves focus to the next row.
//   - shift+tab  — moves focus to the previous row.
//   - left/right — cycle the gender selector when its row is focused.
//   - enter      — parses the form and dispatches the async save command.
//
// All other key events are forwarded to the focused input widget.
func (m *ProfileFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case profileLoadedMsg:
		if result.err != nil {
			if !errors.Is(result.err, clientservice.ErrProfileNotSet) {
				m.errMsg = humanizeClientError(result.err)
			}
			return m, nil
		}
		m.fill(result.profile)
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if result.err != nil {
			if fields, ok := validators.AsFieldErrors(result.err); ok {
				m.fieldErrs = fields
				return m, nil
			}
			m.errMsg = humanizeClientError(result.err)
			return m, nil
		}

		m.profileID = result.profile.ID
		name := result.profile.Name
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: ProfileSavedNotice{Name: name}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.focus == profileRowGender {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.genderIdx = (m.genderIdx - 1 + len(genderOptions)) % len(genderOptions)
				return m, nil
			case key.Matches(keyMsg, keys.right):
				m.genderIdx = (m.genderIdx + 1) % len(genderOptions)
				return m, nil
			}
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.fieldErrs = nil
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			profile, parseErrs := m.parseForm()
			if len(parseErrs) > 0 {
				m.fieldErrs = parseErrs
				return m, nil
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdSave(profile)
		}
	}

	idx, focusedInput := profileInputIndex(m.focus)
	if !focusedInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the form as a two-column table with
// the gender selector between the text inputs and per-row validation
// messages under the rows they refer to.
func (m *ProfileFormModel) View() string {
	labels := []string{"Имя", "Возраст", "Пол", "Рост, см", "Email"}
	fieldKeys := []string{"name", "age", "gender", "height", "email"}

	labelWidth := lipgloss.Width("Поле")
	for _, label := range labels {
		if w := lipgloss.Width(label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(padCell("Поле", labelWidth))
	b.WriteString(" │ Значение\n")
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for row := 0; row < profileRowCount; row++ {
		b.WriteString(padCell(labels[row], labelWidth))
		b.WriteString(" │ ")

		if row == profileRowGender {
			b.WriteString(m.genderView())
		} else {
			idx, _ := profileInputIndex(row)
			b.WriteString("[")
			b.WriteString(m.inputs[idx].View())
			b.WriteString("]")
		}
		b.WriteString("\n")

		if message, found := m.fieldErrs[fieldKeys[row]]; found {
			b.WriteString(padCell("", labelWidth))
			b.WriteString(" │ ")
			b.WriteString(errorStyle.Render("! " + message))
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if len(m.fieldErrs) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: проверьте отмеченные поля"))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"),
		"esc: назад │ tab: след. поле │ ←/→: пол │ enter: сохранить")
}

func (m *ProfileFormModel) genderView() string {
	option := string(genderOptions[m.genderIdx])
	if m.focus == profileRowGender {
		return "< " + option + " >"
	}
	return "  " + option
}

// fill puts the loaded profile into the form.
func (m *ProfileFormModel) fill(profile models.User) {
	m.profileID = profile.ID
	m.inputs[0].SetValue(profile.Name)
	if profile.Age > 0 {
		m.inputs[1].SetValue(strconv.Itoa(profile.Age))
	}
	if profile.Height > 0 {
		m.inputs[2].SetValue(strconv.FormatFloat(profile.Height, 'f', -1, 64))
	}
	m.inputs[3].SetValue(profile.Email)

	for i, option := range genderOptions {
		if option == profile.Gender {
			m.genderIdx = i
		}
	}
}

// parseForm builds a [models.User] from the raw input values. Numeric rows
// that cannot be parsed are reported under the same keys the validators
// use, so both kinds of problems render identically. Blank numeric rows
// stay zero: the validators decide whether that is acceptable.
func (m *ProfileFormModel) parseForm() (models.User, validators.FieldErrors) {
	parseErrs := validators.FieldErrors{}

	profile := models.User{
		ID:     m.profileID,
		Name:   strings.TrimSpace(m.inputs[0].Value()),
		Gender: genderOptions[m.genderIdx],
		Email:  strings.TrimSpace(m.inputs[3].Value()),
	}

	if raw := strings.TrimSpace(m.inputs[1].Value()); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs["age"] = "age must be a whole number"
		}
		profile.Age = age
	}

	if raw := strings.TrimSpace(m.inputs[2].Value()); raw != "" {
		height, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			parseErrs["height"] = "height must be a number"
		}
		profile.Height = height
	}

	if len(parseErrs) > 0 {
		return models.User{}, parseErrs
	}
	return profile, nil
}

func (m *ProfileFormModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profiles := m.profiles

	return func() tea.Msg {
		profile, err := profiles.GetProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *ProfileFormModel) cmdSave(profile models.User) tea.Cmd {
	ctx := m.ctx
	profiles := m.profiles

	return func() tea.Msg {
		saved, err := profiles.SaveProfile(ctx, profile)
		return profileSavedMsg{profile: saved, err: err}
	}
}

func (m *ProfileFormModel) focusNext() {
	if idx, ok := profileInputIndex(m.focus); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus + 1) % profileRowCount
	if idx, ok := profileInputIndex(m.focus); ok {
		m.inputs[idx].Focus()
	}
}

func (m *ProfileFormModel) focusPrev() {
	if idx, ok := profileInputIndex(m.focus); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus - 1 + profileRowCount) % profileRowCount
	if idx, ok := profileInputIndex(m.focus); ok {
		m.inputs[idx].Focus()
	}
}
