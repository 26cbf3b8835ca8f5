package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dashboard, err := h.services.MeasurementService.Dashboard(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.dashboard").Msg("error building dashboard")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}
