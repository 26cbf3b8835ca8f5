package models

// Gender is the self-reported gender of the profile owner.
// The value is serialized as-is and is limited to the declared constants.
type Gender string

const (
	// GenderMale marks the profile as male.
	GenderMale Gender = "male"

	// GenderFemale marks the profile as female.
	GenderFemale Gender = "female"

	// GenderOther covers every identity outside the binary options.
	GenderOther Gender = "other"
)

// Valid reports whether g is one of the declared gender constants.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// User represents the single body-composition profile of the application.
// At most one User exists at a time; saving a new one replaces the prior
// value entirely and no history is kept.
type User struct {
	// ID is the opaque identifier of the profile. Assigned by the service
	// on first save; preserved on subsequent replacements that carry it.
	ID string `json:"id"`

	// Name is the display name of the profile owner. Required, non-empty.
	Name string `json:"name"`

	// Age is the owner's age in whole years. Must be positive.
	Age int `json:"age"`

	// Gender is one of the [Gender] constants.
	Gender Gender `json:"gender"`

	// Height is the owner's height in centimeters. Must be positive.
	// Used together with measurement weight to derive BMI at submission time.
	Height float64 `json:"height"`

	// Email is an optional contact address. When non-empty it must match
	// a standard email pattern.
	Email string `json:"email,omitempty"`
}
