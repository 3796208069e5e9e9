package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/resume-docx/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func testJWTConfig(expirationHours int) *config.JWTConfig {
	return &config.JWTConfig{
		Secret:          testSecret,
		Issuer:          config.DefaultJWTIssuer,
		ExpirationHours: expirationHours,
	}
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := NewJWTService(testJWTConfig(24))
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3, "JWT should have 3 parts separated by dots")

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
	assert.Equal(t, clientID.String(), claims.Subject)
	assert.Equal(t, config.DefaultJWTIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_GenerateToken_UniqueTokens(t *testing.T) {
	service := NewJWTService(testJWTConfig(24))
	clientID := uuid.New()

	token1, err := service.GenerateToken(clientID)
	require.NoError(t, err)
	token2, err := service.GenerateToken(clientID)
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2, "token IDs differ between issues")
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	service := NewJWTService(testJWTConfig(24))
	clientID := uuid.New()

	otherSecret := NewJWTService(&config.JWTConfig{Secret: "another-secret-key-of-32-bytes!!", Issuer: config.DefaultJWTIssuer, ExpirationHours: 24})
	foreignToken, err := otherSecret.GenerateToken(clientID)
	require.NoError(t, err)

	otherIssuer := NewJWTService(&config.JWTConfig{Secret: testSecret, Issuer: "someone-else", ExpirationHours: 24})
	issuerToken, err := otherIssuer.GenerateToken(clientID)
	require.NoError(t, err)

	expired := &Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.DefaultJWTIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, expired).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{name: "empty", token: "", wantErr: "token string is empty"},
		{name: "malformed", token: "not.a.jwt", wantErr: "malformed token"},
		{name: "wrong secret", token: foreignToken, wantErr: "invalid token signature"},
		{name: "wrong issuer", token: issuerToken, wantErr: "failed to parse token"},
		{name: "expired", token: expiredToken, wantErr: "token expired"},
		{name: "unsigned", token: noneToken, wantErr: "failed to parse token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := NewJWTService(testJWTConfig(1))
	clientID := uuid.New()

	token, err := service.GenerateToken(clientID)
	require.NoError(t, err)

	got, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, got.GetClientID())

	_, err = service.AsTokenValidator().ValidateToken("garbage")
	assert.Error(t, err)
}
