// Package seed pre-populates the measurement store at process start.
//
// Seeding runs before the servers begin listening and before any event
// subscriber attaches, so seeded records never produce events. Records are
// stored as-is: the seeder performs no validation.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

// Seeder loads sample measurements into the measurement store.
type Seeder struct {
	cfg          config.Seed
	measurements store.MeasurementRepository
	generator    *utils.UUIDGenerator
	logger       *logger.Logger

	now func() time.Time
}

// NewSeeder constructs a Seeder for the given configuration and store.
func NewSeeder(cfg config.Seed, measurements store.MeasurementRepository, generator *utils.UUIDGenerator, logger *logger.Logger) *Seeder {
	return &Seeder{
		cfg:          cfg,
		measurements: measurements,
		generator:    generator,
		logger:       logger,
		now:          time.Now,
	}
}

// Run populates the measurement store when seeding is enabled.
//
// With Seed.File set, the fully-formed records read from the JSON file are
// stored unchanged. Otherwise the built-in sample series is used, with IDs
// minted through the UUID generator and dates spread over recent weeks.
//
// Run must be called before event subscribers attach to the store;
// it does not enforce that ordering itself.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	var records []models.Measurement
	var err error

	if s.cfg.File != "" {
		records, err = s.loadFromFile(s.cfg.File)
		if err != nil {
			s.logger.Err(err).
				Str("func", "*Seeder.Run").
				Str("file", s.cfg.File).
				Msg("failed to load seed records")
			return err
		}
	} else {
		records = s.builtinSamples()
	}

	for _, m := range records {
		if err := s.measurements.Add(ctx, m); err != nil {
			return fmt.Errorf("error storing seed record %s: %w", m.ID, err)
		}
	}

	s.logger.Info().
		Int("records", len(records)).
		Bool("from_file", s.cfg.File != "").
		Msg("measurement store seeded")

	return nil
}

// loadFromFile reads a JSON array of fully-formed measurement records.
func (s *Seeder) loadFromFile(path string) ([]models.Measurement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var records []models.Measurement
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding seed records: %w", err)
	}

	return records, nil
}
