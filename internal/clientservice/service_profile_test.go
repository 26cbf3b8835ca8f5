// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/mock"
	"github.com/MKhiriev/go-health-keeper/internal/validators"
	"github.com/MKhiriev/go-health-keeper/models"
)

// newTestProfileSvc — хелпер для создания сервиса с мок-адаптером
func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (ProfileService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewProfileService(mockAdapter), mockAdapter
}

func validProfile() models.User {
	return models.User{Name: "Anna", Age: 30, Gender: models.GenderFemale, Height: 172}
}

// ── GetProfile ───────────────────────────────────────────────────────────────

func TestProfileService_GetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	want := models.User{ID: "u-1", Name: "Anna", Age: 30, Gender: models.GenderFemale, Height: 172}

	mockAdapter.EXPECT().FetchProfile(ctx).Return(want, nil)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_GetProfile_NotSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().FetchProfile(ctx).Return(
		models.User{}, fmt.Errorf("%w: profile is not set", adapter.ErrNotFound),
	)

	_, err := svc.GetProfile(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfileNotSet)
}

func TestProfileService_GetProfile_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	transportErr := errors.New("fetch profile request: connection refused")

	mockAdapter.EXPECT().FetchProfile(ctx).Return(models.User{}, transportErr)

	_, err := svc.GetProfile(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr)
}

// ── SaveProfile ──────────────────────────────────────────────────────────────

func TestProfileService_SaveProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	submitted := validProfile()
	stored := submitted
	stored.ID = "u-1"

	mockAdapter.EXPECT().SaveProfile(ctx, submitted).Return(stored, nil)

	got, err := svc.SaveProfile(ctx, submitted)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, submitted.Name, got.Name)
}

func TestProfileService_SaveProfile_InvalidBlockedLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Адаптер не должен вызываться: невалидная анкета не покидает клиент
	svc, _ := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.SaveProfile(ctx, models.User{Name: "", Age: -1, Gender: "unknown", Height: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "age")
	assert.Contains(t, fieldErrors, "gender")
	assert.Contains(t, fieldErrors, "height")
}

func TestProfileService_SaveProfile_ServerRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	// Локальная проверка проходит, сервер отвергает со своим отчётом
	rejection := &adapter.ValidationFailedError{
		Message: "validation failed",
		Fields:  map[string]string{"email": "email address is invalid"},
	}
	mockAdapter.EXPECT().SaveProfile(ctx, gomock.Any()).Return(models.User{}, rejection)

	_, err := svc.SaveProfile(ctx, validProfile())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "email address is invalid", fieldErrors["email"])
}

func TestProfileService_SaveProfile_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SaveProfile(ctx, gomock.Any()).Return(
		models.User{}, errors.New("save profile request: connection refused"),
	)

	_, err := svc.SaveProfile(ctx, validProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save profile request")
}
