package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/researchsync/researchsync/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("correct_password")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct_password", hash)

	ok, err := hasher.Verify("correct_password", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong_password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	first, err := hasher.Hash("correct_password")
	assert.NoError(t, err)
	second, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	token, err := tm.Generate("user-123", "grace@example.edu")
	assert.NoError(t, err)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "grace@example.edu", claims.Email)
}

func TestTokenCarriesRegisteredClaims(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	token, err := tm.Generate("user-123", "grace@example.edu")
	assert.NoError(t, err)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "researchsync", claims.Issuer)
	assert.Equal(t, "user-123", claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestTokenRejectsForeignIssuer(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "somebody-else",
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := foreign.SignedString([]byte("test_secret"))
	assert.NoError(t, err)

	_, err = tm.Validate(signed)
	assert.Error(t, err)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	other := auth.NewTokenManager("other_secret", time.Hour)

	token, err := tm.Generate("user-123", "grace@example.edu")
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", -time.Minute)

	token, err := tm.Generate("user-123", "grace@example.edu")
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
