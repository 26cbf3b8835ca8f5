// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/metrics"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

type measurementService struct {
	profiles     store.ProfileRepository
	measurements store.MeasurementRepository
	generator    *utils.UUIDGenerator

	// now stamps records whose submission carries no date.
	now func() time.Time

	logger *logger.Logger
}

// NewMeasurementService constructs the storage-facing measurement service.
// Submissions are not validated here; wrap the result with
// NewMeasurementValidationService for the full recording pipeline.
func NewMeasurementService(profiles store.ProfileRepository, measurements store.MeasurementRepository, generator *utils.UUIDGenerator, logger *logger.Logger) MeasurementService {
	return &measurementService{
		profiles:     profiles,
		measurements: measurements,
		generator:    generator,
		now:          time.Now,
		logger:       logger,
	}
}

// Record turns a raw submission into a stored Measurement.
//
// The current profile must exist: its Height is what BMI is derived from,
// and its ID becomes the record's UserID. Derived metrics are computed from
// the submitted readings, optional readings left nil default to zero.
func (s *measurementService) Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error) {
	user, err := s.profiles.Get(ctx)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("error getting profile for new measurement: %w", err)
	}

	weight := floatValue(entry.Weight)
	fatPercentage := floatValue(entry.BodyFatPercentage)

	bmi, err := metrics.CalculateBMI(weight, user.Height)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("error calculating bmi: %w", err)
	}

	date := s.now()
	if entry.Date != nil {
		date = *entry.Date
	}

	measurement := models.Measurement{
		ID:                 s.generator.Generate(),
		UserID:             user.ID,
		Date:               date,
		Weight:             weight,
		BodyFatMass:        metrics.BodyFatMass(weight, fatPercentage),
		BodyFatPercentage:  fatPercentage,
		SkeletalMuscleMass: floatValue(entry.SkeletalMuscleMass),
		BMI:                bmi,
		PBF:                fatPercentage,
		VisceralFat:        floatValue(entry.VisceralFat),
		WaterPercentage:    floatValue(entry.WaterPercentage),
		BasalMetabolicRate: floatValue(entry.BasalMetabolicRate),
		MetabolicAge:       floatValue(entry.MetabolicAge),
	}

	if err = s.measurements.Add(ctx, measurement); err != nil {
		return models.Measurement{}, fmt.Errorf("error storing measurement: %w", err)
	}

	s.logger.Info().
		Str("measurement_id", measurement.ID).
		Float64("bmi", measurement.BMI).
		Msg("measurement recorded")

	return measurement, nil
}

func (s *measurementService) ListMeasurements(ctx context.Context) ([]models.Measurement, error) {
	return s.measurements.List(ctx)
}

func (s *measurementService) GetMeasurement(ctx context.Context, id string) (models.Measurement, error) {
	return s.measurements.GetByID(ctx, id)
}

func (s *measurementService) LatestMeasurement(ctx context.Context) (models.Measurement, error) {
	return s.measurements.Latest(ctx)
}

// Dashboard aggregates profile, history and latest reading in one call.
// A missing profile or an empty history is not an error here: the dashboard
// renders before any data has been entered, so both spots stay nil.
func (s *measurementService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	dashboard := models.Dashboard{}

	user, err := s.profiles.Get(ctx)
	switch {
	case err == nil:
		dashboard.Profile = &user
	case errors.Is(err, store.ErrProfileNotSet):
	default:
		return models.Dashboard{}, fmt.Errorf("error getting profile for dashboard: %w", err)
	}

	history, err := s.measurements.List(ctx)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error listing measurements for dashboard: %w", err)
	}
	dashboard.History = history
	dashboard.Count = len(history)

	latest, err := s.measurements.Latest(ctx)
	switch {
	case err == nil:
		dashboard.Latest = &latest
	case errors.Is(err, store.ErrNoMeasurements):
	default:
		return models.Dashboard{}, fmt.Errorf("error getting latest measurement for dashboard: %w", err)
	}

	return dashboard, nil
}

// floatValue dereferences an optional reading, defaulting to zero.
func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
