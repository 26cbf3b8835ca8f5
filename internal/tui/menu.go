package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the Bubble Tea model for the main menu. It renders one row
// per application page and emits a [NavigateTo] message for the selection.
type MenuModel struct {
	items  []string
	pages  []string
	idx    int
	status string
}

// NewMenuModel creates the menu. items and pages are parallel: items hold
// the visible labels, pages the [RootModel] page names they open.
func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Профиль", "Новое измерение", "Дашборд"},
		pages: []string{"profile", "entry", "dashboard"},
	}
}

// Init implements [tea.Model].
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. Arrow keys move the cursor, enter opens
// the selected page. A [ProfileSavedNotice] puts a confirmation into the
// status line.
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(ProfileSavedNotice); ok {
		if notice.Name != "" {
			m.status = "Профиль пользователя " + notice.Name + " сохранён"
		} else {
			m.status = "Профиль сохранён"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.status = ""
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

// View implements [tea.Model]. Renders the menu as an ID/action table with
// the current selection marked.
func (m *MenuModel) View() string {
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	var b strings.Builder
	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(padCell("ID", idColWidth))
	b.WriteString(" │ Действие\n")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(padCell(idCell, idColWidth))
		b.WriteString(" │ ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	return renderPage("ГЛАВНОЕ МЕНЮ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
