package validators

import (
	"context"

	"github.com/MKhiriev/go-health-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
// The names match the JSON tags of the corresponding model fields so the
// resulting FieldErrors mapping can be rendered next to form inputs as-is.
const (
	// FieldWeight targets the total body weight reading of a measurement.
	FieldWeight = "weight"

	// FieldBodyFatPercentage targets the body fat share reading.
	FieldBodyFatPercentage = "bodyFatPercentage"

	// FieldSkeletalMuscleMass targets the skeletal muscle mass reading.
	FieldSkeletalMuscleMass = "skeletalMuscleMass"

	// FieldWaterPercentage targets the optional body water share reading.
	FieldWaterPercentage = "waterPercentage"
)

// Validation messages keyed by failure kind. Required-field failures and
// range failures produce distinct texts so the user can tell a missing
// input apart from a bad one.
const (
	msgWeightRequired    = "weight is required"
	msgWeightNotPositive = "weight must be greater than 0"
	msgBodyFatRequired   = "body fat percentage is required"
	msgBodyFatOutOfRange = "body fat percentage must be between 0 and 100"
	msgMuscleRequired    = "skeletal muscle mass is required"
	msgMuscleNotPositive = "skeletal muscle mass must be greater than 0"
	msgWaterOutOfRange   = "water percentage must be between 0 and 100"
)

// MeasurementValidator implements the Validator interface for
// measurement-related domain models: MeasurementEntry submissions and
// fully-formed Measurement records (e.g. loaded from a seed file).
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
// Failed checks are collected into a single FieldErrors value rather than
// aborting on the first failure.
type MeasurementValidator struct {
}

// NewMeasurementValidator constructs a new MeasurementValidator
// and returns it as the Validator interface.
func NewMeasurementValidator() Validator {
	return &MeasurementValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.MeasurementEntry / *models.MeasurementEntry
//   - models.Measurement / *models.Measurement
//
// Returns ErrUnsupportedType if obj does not match any known model,
// ErrUnknownField for an unrecognized field name, or a FieldErrors mapping
// listing every failed check. Optional fields restrict validation to the
// named subset; when omitted, all declared checks run.
func (v *MeasurementValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MeasurementEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.MeasurementEntry:
		return v.validateEntry(ctx, *value, fields...)

	case models.Measurement:
		return v.validateMeasurement(ctx, value, fields...)
	case *models.Measurement:
		return v.validateMeasurement(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEntry validates a raw MeasurementEntry submission.
//
// Default validated fields (when none specified):
// Weight, BodyFatPercentage, SkeletalMuscleMass, WaterPercentage.
//
// A nil required field yields a "required" message; a present value failing
// its range check yields the corresponding range message. WaterPercentage is
// optional and only range-checked when present.
func (v *MeasurementValidator) validateEntry(ctx context.Context, entry models.MeasurementEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWeight, FieldBodyFatPercentage, FieldSkeletalMuscleMass, FieldWaterPercentage}
	}

	fieldErrors := make(FieldErrors)

	for _, f := range fields {
		switch f {
		case FieldWeight:
			if entry.Weight == nil {
				fieldErrors[FieldWeight] = msgWeightRequired
			} else if *entry.Weight <= 0 {
				fieldErrors[FieldWeight] = msgWeightNotPositive
			}
		case FieldBodyFatPercentage:
			if entry.BodyFatPercentage == nil {
				fieldErrors[FieldBodyFatPercentage] = msgBodyFatRequired
			} else if *entry.BodyFatPercentage < 0 || *entry.BodyFatPercentage > 100 {
				fieldErrors[FieldBodyFatPercentage] = msgBodyFatOutOfRange
			}
		case FieldSkeletalMuscleMass:
			if entry.SkeletalMuscleMass == nil {
				fieldErrors[FieldSkeletalMuscleMass] = msgMuscleRequired
			} else if *entry.SkeletalMuscleMass <= 0 {
				fieldErrors[FieldSkeletalMuscleMass] = msgMuscleNotPositive
			}
		case FieldWaterPercentage:
			if entry.WaterPercentage != nil && (*entry.WaterPercentage < 0 || *entry.WaterPercentage > 100) {
				fieldErrors[FieldWaterPercentage] = msgWaterOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	return nil
}

// validateMeasurement validates a fully-formed Measurement record against
// the same range rules as a submission. Used for records arriving outside
// the data-entry flow, such as seed files.
//
// Default validated fields: Weight, BodyFatPercentage, SkeletalMuscleMass,
// WaterPercentage. Optional readings stored as 0 pass their range checks.
func (v *MeasurementValidator) validateMeasurement(ctx context.Context, m models.Measurement, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWeight, FieldBodyFatPercentage, FieldSkeletalMuscleMass, FieldWaterPercentage}
	}

	fieldErrors := make(FieldErrors)

	for _, f := range fields {
		switch f {
		case FieldWeight:
			if m.Weight <= 0 {
				fieldErrors[FieldWeight] = msgWeightNotPositive
			}
		case FieldBodyFatPercentage:
			if m.BodyFatPercentage < 0 || m.BodyFatPercentage > 100 {
				fieldErrors[FieldBodyFatPercentage] = msgBodyFatOutOfRange
			}
		case FieldSkeletalMuscleMass:
			if m.SkeletalMuscleMass <= 0 {
				fieldErrors[FieldSkeletalMuscleMass] = msgMuscleNotPositive
			}
		case FieldWaterPercentage:
			if m.WaterPercentage < 0 || m.WaterPercentage > 100 {
				fieldErrors[FieldWaterPercentage] = msgWaterOutOfRange
			}
		default:
			return ErrUnknownField
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	return nil
}
