package seed

import (
	"github.com/MKhiriev/go-health-keeper/models"
)

// sampleReading describes one built-in seed record as an offset from the
// current time plus the raw readings. Derived fields are precomputed for a
// 175 cm reference frame so the samples look like genuine device output.
type sampleReading struct {
	daysAgo  int
	weight   float64
	fatPct   float64
	fatMass  float64
	muscle   float64
	bmi      float64
	visceral float64
	water    float64
	bmr      float64
	metAge   float64
}

var sampleReadings = []sampleReading{
	{daysAgo: 21, weight: 81.2, fatPct: 24.5, fatMass: 19.9, muscle: 33.1, bmi: 26.5, visceral: 9, water: 55.2, bmr: 1720, metAge: 34},
	{daysAgo: 14, weight: 80.4, fatPct: 23.9, fatMass: 19.2, muscle: 33.4, bmi: 26.3, visceral: 9, water: 55.6, bmr: 1714, metAge: 33},
	{daysAgo: 7, weight: 79.8, fatPct: 23.1, fatMass: 18.4, muscle: 33.8, bmi: 26.1, visceral: 8, water: 56.0, bmr: 1708, metAge: 33},
	{daysAgo: 3, weight: 79.1, fatPct: 22.6, fatMass: 17.9, muscle: 34.0, bmi: 25.8, visceral: 8, water: 56.3, bmr: 1701, metAge: 32},
}

// builtinSamples renders the sample series into measurement records.
// IDs come from the shared UUID generator; dates are spread backwards from
// the current time so the dashboard shows a recent history out of the box.
func (s *Seeder) builtinSamples() []models.Measurement {
	now := s.now()

	records := make([]models.Measurement, 0, len(sampleReadings))
	for _, r := range sampleReadings {
		records = append(records, models.Measurement{
			ID:                 s.generator.Generate(),
			Date:               now.AddDate(0, 0, -r.daysAgo),
			Weight:             r.weight,
			BodyFatMass:        r.fatMass,
			BodyFatPercentage:  r.fatPct,
			SkeletalMuscleMass: r.muscle,
			BMI:                r.bmi,
			PBF:                r.fatPct,
			VisceralFat:        r.visceral,
			WaterPercentage:    r.water,
			BasalMetabolicRate: r.bmr,
			MetabolicAge:       r.metAge,
		})
	}

	return records
}
