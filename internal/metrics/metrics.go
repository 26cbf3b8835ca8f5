// Package metrics holds the pure body-composition calculations derived
// from a recorded measurement and the owning profile.
package metrics

import "math"

// CalculateBMI computes the Body Mass Index for a weight in kilograms and
// a height in centimeters, rounded to one decimal place.
//
// Both inputs must be positive. A zero or negative value returns an error
// so that a measurement submission in progress is aborted instead of
// storing a nonsense index.
func CalculateBMI(weightKg float64, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, ErrNonPositiveWeight
	}
	if heightCm <= 0 {
		return 0, ErrNonPositiveHeight
	}

	heightInMeters := heightCm / 100
	bmi := weightKg / (heightInMeters * heightInMeters)

	return roundToOneDecimal(bmi), nil
}

// BodyFatMass computes the absolute fat mass in kilograms from the total
// weight and the body fat percentage, rounded to one decimal place.
func BodyFatMass(weightKg float64, bodyFatPercentage float64) float64 {
	return roundToOneDecimal(weightKg * bodyFatPercentage / 100)
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
