package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(userID, "gamer@example.com", "GamerPro123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "gamer@example.com", claims.Email)
	assert.Equal(t, "GamerPro123", claims.Username)
	assert.Equal(t, "cocmarket-api", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "a@b.c", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateJWT(uuid.Must(uuid.NewV7()), "a@b.c", "user")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = ExtractTokenFromHeader("Basic abc123")
	assert.Error(t, err)

	_, err = ExtractTokenFromHeader("Bearer ")
	assert.Error(t, err)
}
