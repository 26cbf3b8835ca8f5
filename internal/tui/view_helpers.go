package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

// padCell pads v with spaces up to width display cells. fmt's %-*s pads by
// bytes and drifts on Cyrillic labels, so table cells go through here.
func padCell(v string, width int) string {
	gap := width - lipgloss.Width(v)
	if gap <= 0 {
		return v
	}
	return v + strings.Repeat(" ", gap)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// formatReading renders a reading with one decimal place, trimming the
// trailing ".0" so whole numbers stay short.
func formatReading(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// readingOrDash renders an optional reading. Zero means the reading was
// not provided, so a dash is shown instead of a misleading 0.
func readingOrDash(v float64) string {
	if v == 0 {
		return "-"
	}
	return formatReading(v)
}

// readingWithUnit renders an optional reading followed by its unit, or a
// dash when the reading was not provided.
func readingWithUnit(v float64, unit string) string {
	if v == 0 {
		return "-"
	}
	return formatReading(v) + unit
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
