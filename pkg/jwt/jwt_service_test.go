package jwt

import (
	"testing"
	"time"

	"foodgram/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	service := NewJWTService("secret")

	token, err := service.GenerateTokenUser("8d0c7f4e-1b7a-4a38-9b43-2f0f5e1c9a11", domain.RoleAdmin)
	require.NoError(t, err)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8d0c7f4e-1b7a-4a38-9b43-2f0f5e1c9a11", userID)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestTokenSignedWithAnotherSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateTokenUser("user", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = NewJWTService("two").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	service := &jwtService{
		secretKey: "secret",
		issuer:    "FOODGRAM",
		now:       func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) },
	}

	token, err := service.GenerateTokenUser("user", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = service.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestMalformedToken(t *testing.T) {
	_, _, err := NewJWTService("secret").GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenWithoutUserID(t *testing.T) {
	service := NewJWTService("secret")
	token, err := service.GenerateTokenUser("", domain.RoleUser)
	require.NoError(t, err)

	_, _, err = service.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
