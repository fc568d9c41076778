package auth

import (
	"testing"
	"time"

	"pricealert/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func mint(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token := mint(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"type":  "access",
		"roles": []string{"user", "admin"},
	})

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New().String()
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.string"},
		{name: "wrong secret", token: mint(t, "another-secret", jwt.MapClaims{"sub": userID, "exp": future, "type": "access"})},
		{name: "expired", token: mint(t, testSecret, jwt.MapClaims{"sub": userID, "exp": time.Now().Add(-time.Minute).Unix(), "type": "access"})},
		{name: "no expiry", token: mint(t, testSecret, jwt.MapClaims{"sub": userID, "type": "access"})},
		{name: "refresh token", token: mint(t, testSecret, jwt.MapClaims{"sub": userID, "exp": future, "type": "refresh"})},
		{name: "bad subject", token: mint(t, testSecret, jwt.MapClaims{"sub": "not-a-uuid", "exp": future, "type": "access"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := newTestService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "access",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
