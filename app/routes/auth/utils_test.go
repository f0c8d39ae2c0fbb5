package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micqie/FAS-music/app/config"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secret@123", hash))
	assert.False(t, CheckPasswordHash("Wrong@123", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "jdoe", "jdoe@example.com", "John", "Doe", "Admin")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "jdoe", "jdoe@example.com", "John", "Doe", "Student")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTSecret: "other-secret"}
	defer func() { config.AppConfig = &config.Config{JWTSecret: "test-secret"} }()

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
