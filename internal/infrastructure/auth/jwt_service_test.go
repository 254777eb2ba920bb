package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pressplay/gamestore/internal/config"
)

func newTestJWTService(expiry time.Duration) JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, err := svc.GenerateToken(42, "alice", true)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.Admin)
	assert.Equal(t, "gamestore", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateToken(7, "bob", false)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := newTestJWTService(time.Hour).GenerateToken(7, "bob", false)
	assert.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	claims, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
