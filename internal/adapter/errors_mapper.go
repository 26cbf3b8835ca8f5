package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-health-keeper/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if vErr := decodeValidationFailure(resp.Body()); vErr != nil {
			return vErr
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrUnprocessable, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// decodeValidationFailure recognises the structured rejection payload the
// server sends for an invalid submission. A 400 whose body is not such a
// payload (plain-text decode errors, for example) yields nil and falls back
// to the [ErrBadRequest] sentinel.
func decodeValidationFailure(body []byte) error {
	var rejection models.ValidationResponse
	if err := json.Unmarshal(body, &rejection); err != nil || len(rejection.Errors) == 0 {
		return nil
	}

	return &ValidationFailedError{Message: rejection.Message, Fields: rejection.Errors}
}
