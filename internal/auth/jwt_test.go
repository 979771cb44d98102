// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insureai/portal-api/internal/config"
	"github.com/insureai/portal-api/internal/core"
)

func newTestManager(t *testing.T, accessExpire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privatePath,
		PublicKeyPath:      publicPath,
		AccessTokenExpire:  accessExpire,
		RefreshTokenExpire: 168 * time.Hour,
		Issuer:             "insureai-portal",
		Audience:           "insureai-portal-api",
	})
	require.NoError(t, err)

	return manager
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)

	signed, err := manager.CreateAccessToken("user-1")
	require.NoError(t, err)

	verified, err := manager.VerifyAccessToken(signed)
	require.NoError(t, err)

	assert.Equal(t, "user-1", verified.UserID)
	assert.NotEmpty(t, verified.JTI)
	assert.WithinDuration(t,
		time.Now().Add(15*time.Minute),
		verified.ExpiresAt,
		time.Minute,
	)
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)

	_, err := manager.VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	manager := newTestManager(t, -1*time.Minute)

	signed, err := manager.CreateAccessToken("user-1")
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyAccessTokenRejectsForeignKey(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)
	other := newTestManager(t, 15*time.Minute)

	signed, err := other.CreateAccessToken("user-1")
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(signed)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestCreateRefreshToken(t *testing.T) {
	manager := newTestManager(t, 15*time.Minute)

	t.Run("new family when none given", func(t *testing.T) {
		data, err := manager.CreateRefreshToken("")
		require.NoError(t, err)

		assert.NotEmpty(t, data.Token)
		assert.NotEmpty(t, data.FamilyID)
		assert.Equal(t, core.HashToken(data.Token), data.Hash)
	})

	t.Run("existing family is preserved", func(t *testing.T) {
		data, err := manager.CreateRefreshToken("family-1")
		require.NoError(t, err)

		assert.Equal(t, "family-1", data.FamilyID)
	})
}
