package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/app"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

// writeValidationResponse turns a validation failure into the API's
// rejection payload: a summary banner plus the field-to-message mapping
// recovered from the error chain. Clients render each entry inline next
// to the offending form field.
func writeValidationResponse(w http.ResponseWriter, err error) {
	response := models.ValidationResponse{
		Message: app.MsgValidationFailed,
		Errors:  map[string]string{},
	}

	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		response.Errors = fieldErrors
	}

	utils.WriteJSON(w, response, http.StatusBadRequest)
}
