package tui

import (
	"context"
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

// entryField describes one row of the measurement entry form: the label
// shown to the user and the field key the validators report under.
type entryField struct {
	label    string
	key      string
	required bool
}

var entryFields = []entryField{
	{label: "Вес, кг", key: "weight", required: true},
	{label: "Жир, %", key: "bodyFatPercentage", required: true},
	{label: "Мышцы, кг", key: "skeletalMuscleMass", required: true},
	{label: "Вода, %", key: "waterPercentage"},
	{label: "Висцеральный жир", key: "visceralFat"},
	{label: "Метаболизм, ккал", key: "basalMetabolicRate"},
	{label: "Метаб. возраст, лет", key: "metabolicAge"},
}

// EntryFormModel is the Bubble Tea model for the measurement entry page.
// Three readings are required, the rest may stay blank. The form is
// validated locally before submission and resets after a successful record.
type EntryFormModel struct {
	ctx          context.Context
	measurements clientservice.MeasurementService

	inputs     []textinput.Model
	focus      int
	submitting bool
	fieldErrs  validators.FieldErrors
	errMsg     string
}

// NewEntryFormModel creates the entry form with one numeric input per
// reading. The first input receives focus immediately.
func NewEntryFormModel(ctx context.Context, measurements clientservice.MeasurementService) *EntryFormModel {
	return &EntryFormModel{
		ctx:          ctx,
		measurements: measurements,
		inputs:       newEntryInputs(),
	}
}

func newEntryInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(entryFields))
	for i, field := range entryFields {
		input := textinput.New()
		input.CharLimit = 8
		input.Width = 12
		if field.required {
			input.Placeholder = "обязательно"
		}
		inputs[i] = input
	}
	inputs[0].Focus()
	return inputs
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [entryRecordedMsg] — on success resets the form and opens the
//     dashboard; validation problems are attached to the rows they refer to.
//   - esc       — cancels and navigates back to the menu.
//   - tab       — moves focus to the next input.
//   - shift+tab — moves focus to the previous input.
//   - enter     — parses the form and dispatches the async record command.
//
// All other key events are forwarded to the focused input widget.
func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(entryRecordedMsg); ok {
		m.submitting = false
		if result.err != nil {
			if fields, found := validators.AsFieldErrors(result.err); found {
				m.fieldErrs = fields
				return m, nil
			}
			m.errMsg = humanizeClientError(result.err)
			return m, nil
		}

		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: "dashboard", Payload: MeasurementRecordedNotice{}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
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

			entry, parseErrs := m.parseForm()
			if len(parseErrs) > 0 {
				m.fieldErrs = parseErrs
				return m, nil
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, m.cmdRecord(entry)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders one row per reading with required
// rows marked and per-row validation messages under the rows they refer to.
func (m *EntryFormModel) View() string {
	labelWidth := lipgloss.Width("Поле")
	for _, field := range entryFields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(padCell("Поле", labelWidth))
	b.WriteString(" │ Значение\n")
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 16))
	b.WriteString("\n")

	for i, field := range entryFields {
		b.WriteString(padCell(field.label, labelWidth))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]")
		if field.required {
			b.WriteString(" *")
		}
		b.WriteString("\n")

		if message, found := m.fieldErrs[field.key]; found {
			b.WriteString(padCell("", labelWidth))
			b.WriteString(" │ ")
			b.WriteString(errorStyle.Render("! " + message))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("* обязательные поля, остальные можно оставить пустыми"))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Запись...]\n")
	} else {
		b.WriteString("\n[Записать]\n")
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

	return renderPage("НОВОЕ ИЗМЕРЕНИЕ", strings.TrimRight(b.String(), "\n"),
		"esc: назад │ tab: след. поле │ enter: записать")
}

// parseForm reads every input into an optional reading. A blank input stays
// nil so the validators can tell a missing required reading apart from a
// zero; unparsable values are reported under the validator field keys.
func (m *EntryFormModel) parseForm() (models.MeasurementEntry, validators.FieldErrors) {
	parseErrs := validators.FieldErrors{}
	readings := make([]*float64, len(entryFields))

	for i, field := range entryFields {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			parseErrs[field.key] = field.key + " must be a number"
			continue
		}
		readings[i] = &value
	}

	if len(parseErrs) > 0 {
		return models.MeasurementEntry{}, parseErrs
	}

	return models.MeasurementEntry{
		Weight:             readings[0],
		BodyFatPercentage:  readings[1],
		SkeletalMuscleMass: readings[2],
		WaterPercentage:    readings[3],
		VisceralFat:        readings[4],
		BasalMetabolicRate: readings[5],
		MetabolicAge:       readings[6],
	}, nil
}

// reset clears the form for the next reading.
func (m *EntryFormModel) reset() {
	m.inputs = newEntryInputs()
	m.focus = 0
	m.fieldErrs = nil
	m.errMsg = ""
}

func (m *EntryFormModel) cmdRecord(entry models.MeasurementEntry) tea.Cmd {
	ctx := m.ctx
	measurements := m.measurements

	return func() tea.Msg {
		_, err := measurements.Record(ctx, entry)
		return entryRecordedMsg{err: err}
	}
}

func (m *EntryFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EntryFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
