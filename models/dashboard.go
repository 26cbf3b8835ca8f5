package models

// Dashboard aggregates everything the dashboard page renders in one fetch:
// the current profile, the full measurement history in insertion order, and
// the latest reading by date.
type Dashboard struct {
	// Profile is the current profile, or nil when none has been saved yet.
	Profile *User `json:"profile,omitempty"`

	// Latest is the measurement with the maximum date, or nil when the
	// history is empty.
	Latest *Measurement `json:"latest,omitempty"`

	// History lists every recorded measurement in insertion order.
	History []Measurement `json:"history"`

	// Count is the total number of entries in History.
	Count int `json:"count"`
}
