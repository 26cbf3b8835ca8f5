package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-health-keeper/models"
)

// Field name constants for profile validation. As with measurements, the
// names match the JSON tags of the User model.
const (
	// FieldName targets the display name of the profile owner.
	FieldName = "name"

	// FieldAge targets the owner's age in whole years.
	FieldAge = "age"

	// FieldGender targets the gender enum value.
	FieldGender = "gender"

	// FieldHeight targets the owner's height in centimeters.
	FieldHeight = "height"

	// FieldEmail targets the optional contact address.
	FieldEmail = "email"
)

const (
	msgNameRequired      = "name is required"
	msgAgeNotPositive    = "age must be greater than 0"
	msgGenderUnknown     = "gender must be one of male, female or other"
	msgHeightNotPositive = "height must be greater than 0"
	msgEmailInvalid      = "email address is invalid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserValidator implements the Validator interface for the User profile
// model. Failed checks are collected into a single FieldErrors value.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Both value and pointer forms of models.User are accepted.
//
// Returns ErrUnsupportedType if obj is not a User, ErrUnknownField for an
// unrecognized field name, or a FieldErrors mapping listing every failed
// check. Optional fields restrict validation to the named subset; when
// omitted, all declared checks run.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser validates a User profile.
//
// Default validated fields (when none specified):
// Name, Age, Gender, Height, Email.
//
// Email is optional: an empty value passes, a non-empty value must match
// a standard email pattern.
func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldAge, FieldGender, FieldHeight, FieldEmail}
	}

	fieldErrors := make(FieldErrors)

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				fieldErrors[FieldName] = msgNameRequired
			}
		case FieldAge:
			if user.Age <= 0 {
				fieldErrors[FieldAge] = msgAgeNotPositive
			}
		case FieldGender:
			if !user.Gender.Valid() {
				fieldErrors[FieldGender] = msgGenderUnknown
			}
		case FieldHeight:
			if user.Height <= 0 {
				fieldErrors[FieldHeight] = msgHeightNotPositive
			}
		case FieldEmail:
			if user.Email != "" && !emailPattern.MatchString(user.Email) {
				fieldErrors[FieldEmail] = msgEmailInvalid
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
