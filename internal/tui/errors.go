// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/clientservice"
)

// humanizeClientError turns service and transport errors into a short
// message suitable for the status line of a page.
func humanizeClientError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, clientservice.ErrProfileNotSet):
		return "Сначала сохраните профиль"
	case errors.Is(err, clientservice.ErrNoMeasurements):
		return "Нет записанных измерений"
	case errors.Is(err, clientservice.ErrBMIDerivationFailed):
		return "Не удалось вычислить ИМТ по введённым данным"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
