// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// renderVersionWindow is the window toggled with "v" on the menu page.
// The server version is fetched asynchronously, so the window first shows
// a loading line and is re-rendered when the answer arrives.
func renderVersionWindow(version string, loading bool, err error) string {
	var b strings.Builder

	b.WriteString("Название приложения: HealthKeeper\n")
	b.WriteString("Версия сервера: ")
	switch {
	case loading:
		b.WriteString("запрашивается...")
	case err != nil:
		b.WriteString(errorStyle.Render(humanizeClientError(err)))
	default:
		b.WriteString(valueOrNA(version))
	}

	return overlayBoxStyle.Render(b.String()) + "\n\n" + helpStyle.Render("esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
