// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Measurement represents a single recorded body-composition reading.
// It is the primary domain record of the application.
//
// Records are immutable once created: there is no edit or delete operation,
// the collection only grows by appending. Insertion order is preserved but
// is not assumed to be chronological; "latest" is always decided by
// comparing Date values, never by position.
type Measurement struct {
	// ID is the opaque unique identifier of the reading,
	// minted by the UUID generator at creation time.
	ID string `json:"id"`

	// UserID references the owning profile's ID. The reference is kept
	// as provided at submission time and is not re-validated against the
	// current profile on insert.
	UserID string `json:"userId"`

	// Date is the moment the reading was taken.
	// Defaults to the creation time when the submission carries none.
	Date time.Time `json:"date"`

	// Weight is the total body weight in kilograms. Always positive.
	Weight float64 `json:"weight"`

	// BodyFatMass is derived at construction time:
	// Weight × BodyFatPercentage / 100, in kilograms.
	BodyFatMass float64 `json:"bodyFatMass"`

	// BodyFatPercentage is the body fat share of total weight, in [0,100].
	BodyFatPercentage float64 `json:"bodyFatPercentage"`

	// SkeletalMuscleMass is the skeletal muscle weight in kilograms.
	// Always positive.
	SkeletalMuscleMass float64 `json:"skeletalMuscleMass"`

	// BMI is derived from Weight and the profile Height that was current
	// at submission time.
	BMI float64 `json:"bmi"`

	// PBF mirrors BodyFatPercentage. The duplicate is kept for backward
	// display compatibility; both fields always carry the identical value.
	PBF float64 `json:"pbf"`

	// VisceralFat is an optional visceral fat rating, displayed on a
	// 1–30 scale. Zero when the reading did not include it.
	VisceralFat float64 `json:"visceralFat"`

	// WaterPercentage is the optional body water share, in [0,100].
	// Zero when the reading did not include it.
	WaterPercentage float64 `json:"waterPercentage"`

	// BasalMetabolicRate is the optional resting energy expenditure in
	// kcal per day. Zero when the reading did not include it.
	BasalMetabolicRate float64 `json:"basalMetabolicRate"`

	// MetabolicAge is the optional metabolic age estimate in years.
	// Zero when the reading did not include it.
	MetabolicAge float64 `json:"metabolicAge"`
}
