package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/utils"
	"github.com/MKhiriev/go-health-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchProfile implements [ServerAdapter]. It GETs /api/profile/ and decodes
// the stored profile. A 404 (no profile saved yet) surfaces as [ErrNotFound]
// wrapped with the server message.
func (h *httpServerAdapter) FetchProfile(ctx context.Context) (models.User, error) {
	var profile models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get("/api/profile/")
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return profile, nil
}

// SaveProfile implements [ServerAdapter]. It PUTs the profile to /api/profile/
// and returns the stored value echoed back by the server, including the ID
// assigned on first save. A rejected submission surfaces as
// [*ValidationFailedError].
func (h *httpServerAdapter) SaveProfile(ctx context.Context, user models.User) (models.User, error) {
	var saved models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&saved).
		Put("/api/profile/")
	if err != nil {
		return models.User{}, fmt.Errorf("save profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return saved, nil
}

// Measurements implements [ServerAdapter]. It GETs /api/measurements/ and
// decodes the full history. An empty history decodes to an empty slice.
func (h *httpServerAdapter) Measurements(ctx context.Context) ([]models.Measurement, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/measurements/")
	if err != nil {
		return nil, fmt.Errorf("measurements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var history []models.Measurement
	if err = json.Unmarshal(resp.Body(), &history); err != nil {
		return nil, fmt.Errorf("decode measurements response: %w", err)
	}

	return history, nil
}

// Record implements [ServerAdapter]. It POSTs the entry to /api/measurements/
// and decodes the stored measurement with its derived values. The profile
// precondition (409) surfaces as [ErrConflict], a BMI derivation rejection
// (422) as [ErrUnprocessable], and a rejected submission as
// [*ValidationFailedError].
func (h *httpServerAdapter) Record(ctx context.Context, entry models.MeasurementEntry) (models.Measurement, error) {
	var measurement models.Measurement

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		SetResult(&measurement).
		Post("/api/measurements/")
	if err != nil {
		return models.Measurement{}, fmt.Errorf("record measurement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Measurement{}, err
	}

	return measurement, nil
}

// Latest implements [ServerAdapter]. It GETs /api/measurements/latest and
// decodes the most recent measurement. An empty history (404) surfaces as
// [ErrNotFound].
func (h *httpServerAdapter) Latest(ctx context.Context) (models.Measurement, error) {
	var measurement models.Measurement

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&measurement).
		Get("/api/measurements/latest")
	if err != nil {
		return models.Measurement{}, fmt.Errorf("latest measurement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Measurement{}, err
	}

	return measurement, nil
}

// Dashboard implements [ServerAdapter]. It GETs /api/dashboard/ and decodes
// the aggregated snapshot. The endpoint never 404s: a fresh install yields a
// snapshot with a nil profile and an empty history.
func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.Dashboard, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/dashboard/")
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dashboard{}, err
	}

	var snapshot models.Dashboard
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return models.Dashboard{}, fmt.Errorf("decode dashboard response: %w", err)
	}

	return snapshot, nil
}

// Version implements [ServerAdapter]. It GETs /api/version/ and returns the
// whitespace-trimmed plain-text body.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
