// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientservice

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	// A structured rejection becomes the same error shape local validation
	// produces, so the forms handle both through one path.
	var vErr *adapter.ValidationFailedError
	if errors.As(err, &vErr) {
		return errors.Join(ErrValidationFailed, validators.FieldErrors(vErr.Fields))
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgProfileNotSet:
			return ErrProfileNotSet
		case app.MsgNoMeasurements:
			return ErrNoMeasurements
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgProfileRequiredForMeasurement {
			return ErrProfileNotSet
		}

	case errors.Is(err, adapter.ErrUnprocessable):
		return ErrBMIDerivationFailed
	}

	return err
}

// extractBody extracts the body from a message of the form "not found: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
