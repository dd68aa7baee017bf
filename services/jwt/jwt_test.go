package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(42, "alice@example.com", "User", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateAndGetClaims(token, "secret")
	require.NoError(t, err)
	id, err := UserID(claims)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "alice@example.com", claims["email"])

	_, err = ValidateAndGetClaims(token, "other")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken(1, "a@b.c", "User", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateAndGetClaims(token, "secret")
	assert.Error(t, err)
}

func TestMissingSecret(t *testing.T) {
	_, err := GenerateToken(1, "a@b.c", "User", "", time.Hour)
	assert.Error(t, err)
}
