package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The role-check endpoints only inspect the authenticated actor, so the
// handler is built without a usecase behind it.
func newRoleCheckContext(t *testing.T, role entity.Role) (*AccountHandler, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/check", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("actor", usecase.Actor{ID: uuid.New(), Role: role})

	return NewAccountHandler(nil, logger), c, rec
}

func TestAccountHandler_CheckAdmin(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		want bool
	}{
		{"admin token", entity.RoleAdmin, true},
		{"merchant token", entity.RoleMerchant, false},
		{"user token", entity.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, c, rec := newRoleCheckContext(t, tt.role)

			require.NoError(t, h.CheckAdmin(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			envelope := decodeEnvelope(t, rec)
			data, ok := envelope["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.want, data["isAdmin"])
		})
	}
}

func TestAccountHandler_CheckMerchant(t *testing.T) {
	h, c, rec := newRoleCheckContext(t, entity.RoleMerchant)

	require.NoError(t, h.CheckMerchant(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["isMerchant"])
}

func TestAccountHandler_CheckAdmin_NoActor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts/check/admin", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	h := NewAccountHandler(nil, logger)
	err := h.CheckAdmin(c)
	assert.ErrorIs(t, err, domainerrors.ErrAuthentication)
}
