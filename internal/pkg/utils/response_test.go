package utils

import (
	"docai-portal/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	log := zap.NewNop()

	t.Run("backend error with redirect becomes a 303", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil)
		BuildErrorResponse(log, rec, req, &exceptions.BackendError{
			Kind:       exceptions.KindUnauthorized,
			StatusCode: http.StatusUnauthorized,
			RedirectTo: "/",
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("validation error keeps the backend status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/patient/register", nil)
		BuildErrorResponse(log, rec, req, &exceptions.BackendError{
			Kind:       exceptions.KindValidation,
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "Email invalid, Password too short",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Email invalid, Password too short", body["message"])
		assert.Equal(t, false, body["success"])
	})

	t.Run("network failure maps to bad gateway", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/doctor/dashboard", nil)
		BuildErrorResponse(log, rec, req, &exceptions.BackendError{Kind: exceptions.KindNetwork})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("custom error uses its own status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/patient/compare", nil)
		BuildErrorResponse(log, rec, req, exceptions.ErrClientCustomMessage("Please select two different reports"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please select two different reports")
	})
}

func TestBuildErrorResponseDevMessage(t *testing.T) {
	log := zap.NewNop()
	t.Cleanup(func() { SetAppEnv("development") })

	render := func() map[string]interface{} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/patient/dashboard", nil)
		BuildErrorResponse(log, rec, req, exceptions.ErrNotAuthenticated())
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	SetAppEnv("development")
	assert.NotEmpty(t, render()["dev_message"])

	SetAppEnv("production")
	assert.NotContains(t, render(), "dev_message")

	SetAppEnv("")
	assert.NotContains(t, render(), "dev_message", "empty env keeps the previous setting")
}
