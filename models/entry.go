package models

import "time"

// MeasurementEntry is the raw data-entry submission as it arrives from a
// form or API client, before validation and metric derivation.
//
// Required readings are pointers so that an absent field can be told apart
// from an explicit zero: validation reports "required" for the former and
// an out-of-range message for the latter. Optional readings left nil default
// to 0 on the constructed [Measurement], they are never stored as absent.
type MeasurementEntry struct {
	// Date is the optional moment the reading was taken.
	// When nil the record is stamped with the submission time.
	Date *time.Time `json:"date,omitempty"`

	// Weight is the total body weight in kilograms. Required, > 0.
	Weight *float64 `json:"weight"`

	// BodyFatPercentage is the body fat share. Required, within [0,100].
	BodyFatPercentage *float64 `json:"bodyFatPercentage"`

	// SkeletalMuscleMass is the skeletal muscle weight in kilograms.
	// Required, > 0.
	SkeletalMuscleMass *float64 `json:"skeletalMuscleMass"`

	// VisceralFat is the optional visceral fat rating (displayed 1–30).
	VisceralFat *float64 `json:"visceralFat,omitempty"`

	// WaterPercentage is the optional body water share, within [0,100]
	// when present.
	WaterPercentage *float64 `json:"waterPercentage,omitempty"`

	// BasalMetabolicRate is the optional resting energy expenditure, kcal.
	BasalMetabolicRate *float64 `json:"basalMetabolicRate,omitempty"`

	// MetabolicAge is the optional metabolic age estimate in years.
	MetabolicAge *float64 `json:"metabolicAge,omitempty"`
}
