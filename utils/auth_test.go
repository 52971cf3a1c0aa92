package utils

import (
	"testing"

	"github.com/MarcelaRV/seguimientos_end/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHashPassword(t *testing.T) {
	hash := HashPassword("admin123")

	assert.NotEqual(t, "admin123", hash)
	assert.Len(t, hash, 64) // sha256 en hexadecimal

	assert.True(t, VerifyPassword("admin123", hash))
	assert.False(t, VerifyPassword("otra-clave", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: "admin",
		Role:     models.UserRoleADMIN,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, string(models.UserRoleADMIN), claims["role"])
}

func TestParseTokenInvalido(t *testing.T) {
	_, err := ParseToken("no-es-un-token")
	assert.Error(t, err)
}
