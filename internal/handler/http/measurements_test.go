package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/metrics"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────
// Stub: MeasurementService with injectable behavior
// ─────────────────────────────────────────────────

type stubMeasurementService struct {
	recordFn    func(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error)
	listFn      func(ctx context.Context) ([]models.Measurement, error)
	getFn       func(ctx context.Context, id string) (models.Measurement, error)
	latestFn    func(ctx context.Context) (models.Measurement, error)
	dashboardFn func(ctx context.Context) (models.Dashboard, error)
}

func (s *stubMeasurementService) Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error) {
	if s.recordFn != nil {
		return s.recordFn(ctx, entry)
	}
	return models.Measurement{}, nil
}

func (s *stubMeasurementService) ListMeasurements(ctx context.Context) ([]models.Measurement, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []models.Measurement{}, nil
}

func (s *stubMeasurementService) GetMeasurement(ctx context.Context, id string) (models.Measurement, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return models.Measurement{}, store.ErrMeasurementNotFound
}

func (s *stubMeasurementService) LatestMeasurement(ctx context.Context) (models.Measurement, error) {
	if s.latestFn != nil {
		return s.latestFn(ctx)
	}
	return models.Measurement{}, store.ErrNoMeasurements
}

func (s *stubMeasurementService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	if s.dashboardFn != nil {
		return s.dashboardFn(ctx)
	}
	return models.Dashboard{}, nil
}

func newMeasurementHandler(svc service.MeasurementService) *Handler {
	return NewHandler(&service.Services{MeasurementService: svc}, logger.Nop())
}

func fptr(v float64) *float64 { return &v }

// ─────────────────────────────────────────────
// GET /api/measurements/
// ─────────────────────────────────────────────

func TestListMeasurements_ReturnsHistory(t *testing.T) {
	want := []models.Measurement{
		{ID: "m-1", UserID: "u-1", Weight: 80, BMI: 24.7},
		{ID: "m-2", UserID: "u-1", Weight: 79.5, BMI: 24.5},
	}
	h := newMeasurementHandler(&stubMeasurementService{
		listFn: func(_ context.Context) ([]models.Measurement, error) { return want, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/", nil)
	rec := httptest.NewRecorder()
	h.listMeasurements(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Measurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestListMeasurements_EmptyHistoryReturnsEmptyArray(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/", nil)
	rec := httptest.NewRecorder()
	h.listMeasurements(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListMeasurements_ServiceErrorReturns500(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{
		listFn: func(_ context.Context) ([]models.Measurement, error) { return nil, errBoom },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/", nil)
	rec := httptest.NewRecorder()
	h.listMeasurements(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/measurements/
// ─────────────────────────────────────────────

func TestRecordMeasurement_ReturnsCreatedMeasurement(t *testing.T) {
	date := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	h := newMeasurementHandler(&stubMeasurementService{
		recordFn: func(_ context.Context, entry models.MeasurementEntry) (models.Measurement, error) {
			return models.Measurement{
				ID:                 "m-1",
				UserID:             "u-1",
				Date:               date,
				Weight:             *entry.Weight,
				BodyFatPercentage:  *entry.BodyFatPercentage,
				SkeletalMuscleMass: *entry.SkeletalMuscleMass,
				BodyFatMass:        16.0,
				BMI:                24.7,
				PBF:                *entry.BodyFatPercentage,
			}, nil
		},
	})

	body, err := json.Marshal(models.MeasurementEntry{
		Weight:             fptr(80),
		BodyFatPercentage:  fptr(20),
		SkeletalMuscleMass: fptr(35),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/measurements/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.recordMeasurement(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Measurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "m-1", got.ID)
	assert.InDelta(t, 24.7, got.BMI, 1e-9)
	assert.InDelta(t, 16.0, got.BodyFatMass, 1e-9)
	assert.True(t, got.Date.Equal(date))
}

func TestRecordMeasurement_InvalidJSONReturns400(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{})

	req := httptest.NewRequest(http.MethodPost, "/api/measurements/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.recordMeasurement(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordMeasurement_ValidationFailureReturnsPayload(t *testing.T) {
	fieldErrs := validators.FieldErrors{
		validators.FieldWeight: "weight must be greater than 0",
	}
	h := newMeasurementHandler(&stubMeasurementService{
		recordFn: func(_ context.Context, _ models.MeasurementEntry) (models.Measurement, error) {
			return models.Measurement{}, errors.Join(service.ErrValidationFailed, fieldErrs)
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/measurements/", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.recordMeasurement(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response models.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "validation failed", response.Message)
	assert.Contains(t, response.Errors, validators.FieldWeight)
}

func TestRecordMeasurement_WithoutProfileReturns409(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{
		recordFn: func(_ context.Context, _ models.MeasurementEntry) (models.Measurement, error) {
			return models.Measurement{}, store.ErrProfileNotSet
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/measurements/", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.recordMeasurement(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordMeasurement_BMIDerivationFailureReturns422(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "NonPositiveWeight", err: metrics.ErrNonPositiveWeight},
		{name: "NonPositiveHeight", err: metrics.ErrNonPositiveHeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := newMeasurementHandler(&stubMeasurementService{
				recordFn: func(_ context.Context, _ models.MeasurementEntry) (models.Measurement, error) {
					return models.Measurement{}, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/measurements/", bytes.NewReader([]byte(`{}`)))
			rec := httptest.NewRecorder()
			h.recordMeasurement(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestRecordMeasurement_ServiceErrorReturns500(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{
		recordFn: func(_ context.Context, _ models.MeasurementEntry) (models.Measurement, error) {
			return models.Measurement{}, errBoom
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/measurements/", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	h.recordMeasurement(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/measurements/latest
// ─────────────────────────────────────────────

func TestLatestMeasurement_ReturnsMostRecent(t *testing.T) {
	want := models.Measurement{ID: "m-2", UserID: "u-1", Weight: 79.5, BMI: 24.5}
	h := newMeasurementHandler(&stubMeasurementService{
		latestFn: func(_ context.Context) (models.Measurement, error) { return want, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/latest", nil)
	rec := httptest.NewRecorder()
	h.latestMeasurement(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Measurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestLatestMeasurement_EmptyHistoryReturns404(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/latest", nil)
	rec := httptest.NewRecorder()
	h.latestMeasurement(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLatestMeasurement_ServiceErrorReturns500(t *testing.T) {
	h := newMeasurementHandler(&stubMeasurementService{
		latestFn: func(_ context.Context) (models.Measurement, error) {
			return models.Measurement{}, errBoom
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/latest", nil)
	rec := httptest.NewRecorder()
	h.latestMeasurement(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/measurements/{measurementID}
// ─────────────────────────────────────────────

// The by-ID endpoint goes through the router so the URL parameter
// extraction is exercised as well.
func TestGetMeasurement_ByIDReturnsMeasurement(t *testing.T) {
	var requestedID string
	svc := &stubMeasurementService{
		getFn: func(_ context.Context, id string) (models.Measurement, error) {
			requestedID = id
			return models.Measurement{ID: id, UserID: "u-1", Weight: 80}, nil
		},
	}
	router := newMeasurementHandler(svc).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/m-42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "m-42", requestedID)

	var got models.Measurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "m-42", got.ID)
}

func TestGetMeasurement_UnknownIDReturns404(t *testing.T) {
	router := newMeasurementHandler(&stubMeasurementService{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/no-such-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMeasurement_ServiceErrorReturns500(t *testing.T) {
	router := newMeasurementHandler(&stubMeasurementService{
		getFn: func(_ context.Context, _ string) (models.Measurement, error) {
			return models.Measurement{}, errBoom
		},
	}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/measurements/m-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
