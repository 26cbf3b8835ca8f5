package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldErrors maps field names to human-readable validation messages.
// A validator collects every failed check into one FieldErrors value so the
// caller can display all problems at once instead of only the first.
type FieldErrors map[string]string

// Error renders all field messages in a stable field-name order.
// Implements the error interface.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into a FieldErrors mapping.
// The second return value reports whether the conversion succeeded.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
