// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insureai/portal-api/internal/core"
)

type fakeVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (f *fakeVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*AccessTokenClaims, error) {
	return f.claims, f.err
}

func TestAuthenticator(t *testing.T) {
	okHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck // test handler
		_, _ = w.Write([]byte(GetUserID(r.Context())))
	}

	t.Run("attaches the verified user id", func(t *testing.T) {
		verifier := &fakeVerifier{
			claims: &AccessTokenClaims{UserID: "user-1", JTI: "jti-1"},
		}
		handler := Authenticator(verifier)(http.HandlerFunc(okHandler))

		req := httptest.NewRequest(http.MethodGet, "/v1/policies", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		handler := Authenticator(&fakeVerifier{})(http.HandlerFunc(okHandler))

		req := httptest.NewRequest(http.MethodGet, "/v1/policies", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		verifier := &fakeVerifier{err: core.ErrTokenExpired}
		handler := Authenticator(verifier)(http.HandlerFunc(okHandler))

		req := httptest.NewRequest(http.MethodGet, "/v1/policies", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
	})
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "no header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic abc123", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.want, ExtractToken(req))
		})
	}
}

func TestGetUserID(t *testing.T) {
	assert.Empty(t, GetUserID(context.Background()))
	assert.False(t, IsAuthenticated(context.Background()))

	ctx := context.WithValue(context.Background(), UserIDKey, "user-1")
	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.True(t, IsAuthenticated(ctx))
}
