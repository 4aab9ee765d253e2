package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"excerpta/config"
	"excerpta/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.SecretKey.AccessTTL = 15 * time.Minute
	cfg.SecretKey.RefreshTTL = 720 * time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := createTestTokenService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc := createTestTokenService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := createTestTokenService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := createTestTokenService(t)

	other := &config.Config{}
	other.SecretKey.Access = "a-different-secret"
	other.SecretKey.Refresh = "another-different-secret"
	other.SecretKey.AccessTTL = 15 * time.Minute
	other.SecretKey.RefreshTTL = 720 * time.Hour
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_MissingSecretsRejected(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.AccessTTL = time.Minute
	cfg.SecretKey.RefreshTTL = time.Hour

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsDeterministicSHA256(t *testing.T) {
	svc := createTestTokenService(t)

	sum := sha256.Sum256([]byte("some-refresh-token"))
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, svc.HashToken("some-refresh-token"))
	assert.Equal(t, svc.HashToken("some-refresh-token"), svc.HashToken("some-refresh-token"))
	assert.NotEqual(t, svc.HashToken("some-refresh-token"), svc.HashToken("another-token"))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc := createTestTokenService(t)

	assert.Equal(t, 720*time.Hour, svc.GetRefreshTokenDuration())
}
