package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/metrics"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

func (h *Handler) listMeasurements(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	measurements, err := h.services.MeasurementService.ListMeasurements(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMeasurements").Msg("error listing measurements")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, measurements, http.StatusOK)
}

func (h *Handler) recordMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var entry models.MeasurementEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	measurement, err := h.services.MeasurementService.Record(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationFailed):
			log.Debug().Err(err).Msg("measurement rejected by validation")
			writeValidationResponse(w, err)
		case errors.Is(err, store.ErrProfileNotSet):
			log.Warn().Msg("measurement submitted before a profile was saved")
			http.Error(w, app.MsgProfileRequiredForMeasurement, http.StatusConflict)
		case errors.Is(err, metrics.ErrNonPositiveWeight), errors.Is(err, metrics.ErrNonPositiveHeight):
			log.Warn().Err(err).Msg("bmi derivation rejected the inputs")
			http.Error(w, app.MsgBMIDerivationFailed, http.StatusUnprocessableEntity)
		default:
			log.Err(err).Str("func", "*Handler.recordMeasurement").Msg("error recording measurement")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, measurement, http.StatusCreated)
}

func (h *Handler) latestMeasurement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	measurement, err := h.services.MeasurementService.LatestMeasurement(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoMeasurements) {
			log.Debug().Msg("latest measurement requested from an empty history")
			http.Error(w, app.MsgNoMeasurements, http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.latestMeasurement").Msg("error getting latest measurement")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, measurement, http.StatusOK)
}

func (h *Handler) getMeasurement(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	measurementID := chi.URLParam(r, "measurementID")

	measurement, err := h.services.MeasurementService.GetMeasurement(r.Context(), measurementID)
	if err != nil {
		if errors.Is(err, store.ErrMeasurementNotFound) {
			log.Debug().Str("measurement_id", measurementID).Msg("measurement not found")
			http.Error(w, app.MsgMeasurementNotFound, http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.getMeasurement").Msg("error getting measurement")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, measurement, http.StatusOK)
}
