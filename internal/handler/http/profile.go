package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := h.services.ProfileService.GetProfile(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrProfileNotSet) {
			log.Debug().Msg("profile requested before first save")
			http.Error(w, app.MsgProfileNotSet, http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.getProfile").Msg("error getting profile")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ProfileService.SaveProfile(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			log.Debug().Err(err).Msg("profile rejected by validation")
			writeValidationResponse(w, err)
			return
		}

		log.Err(err).Str("func", "*Handler.saveProfile").Msg("error saving profile")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Str("profile_id", saved.ID).Msg("profile saved")

	utils.WriteJSON(w, saved, http.StatusOK)
}
