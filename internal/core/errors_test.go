// AngelaMos | 2026
// errors_test.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConfiguredError(t *testing.T) {
	err := NotConfiguredError()

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.Equal(t, "NOT_CONFIGURED", err.Code)
	assert.Contains(t, err.Message, "DATABASE_URL")
}

func TestForbiddenError(t *testing.T) {
	err := ForbiddenError("cannot revoke another user's token")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, http.StatusForbidden, err.Status)
	assert.Equal(t, "FORBIDDEN", err.Code)

	assert.Equal(t, "insufficient permissions", ForbiddenError("").Message)
}

func TestJSONError(t *testing.T) {
	t.Run("writes the app error status and code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSONError(rec, NotConfiguredError())

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.False(t, body.Success)
		assert.Equal(t, "NOT_CONFIGURED", body.Error.Code)
	})

	t.Run("finds an app error behind wrapping", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSONError(rec, fmt.Errorf("create user: %w", NotConfiguredError()))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("plain errors fall back to 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		JSONError(rec, errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL")
	})
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ForbiddenError("")))
	assert.True(t, IsAppError(fmt.Errorf("wrap: %w", NotConfiguredError())))
	assert.False(t, IsAppError(errors.New("plain")))
	assert.False(t, IsAppError(ErrNotFound))
}
