package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devyansh/etransport-api/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate("secret", "u-1", "inspector1", "Traffic Police", "etransport-api", 30)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, username, department, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "inspector1", username)
	assert.Equal(t, "Traffic Police", department)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate("secret", "u-1", "inspector1", "Traffic Police", "etransport-api", 30)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("other", token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := jwt.Generate("secret", "u-1", "inspector1", "Traffic Police", "etransport-api", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "inspector1", "Traffic Police", "etransport-api", 30)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, _, _, err := jwt.Parse("secret", "not.a.token")
	assert.Error(t, err)
}
