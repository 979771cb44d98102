// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	err error
}

func (f *fakeChecker) Ping(context.Context) error {
	return f.err
}

type fakeStats struct{}

func (fakeStats) Stats() sql.DBStats {
	return sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2}
}

func TestLiveness(t *testing.T) {
	h := NewHandler(&fakeChecker{}, fakeStats{}, &fakeChecker{})

	t.Run("ok while running", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unavailable during shutdown", func(t *testing.T) {
		h.SetShutdown(true)
		defer h.SetShutdown(false)

		rec := httptest.NewRecorder()
		h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "shutting_down")
	})
}

func TestReadiness(t *testing.T) {
	t.Run("ok with healthy backends", func(t *testing.T) {
		h := NewHandler(&fakeChecker{}, fakeStats{}, &fakeChecker{})

		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"openConnections":3`)
	})

	t.Run("degraded when the database is down", func(t *testing.T) {
		db := &fakeChecker{err: errors.New("connection refused")}
		h := NewHandler(db, fakeStats{}, &fakeChecker{})

		rec := httptest.NewRecorder()
		h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "degraded")
	})
}
