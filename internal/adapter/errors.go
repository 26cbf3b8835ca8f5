package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ValidationFailedError is returned when the server rejects a submitted form
// with a structured payload. Message is the summary line; Fields maps each
// rejected field name to the message explaining the rejection, so callers can
// render errors inline next to the offending inputs.
//
// It unwraps to [ErrBadRequest]: callers that do not care about the field
// breakdown can keep matching with errors.Is.
type ValidationFailedError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationFailedError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	// Sorted for a deterministic message.
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fmt.Sprintf("%s: %s", e.Message, strings.Join(fields, ", "))
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrBadRequest
}
