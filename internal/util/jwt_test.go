package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist_backend/internal/util"
)

const testSecret = "unit-test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := util.GenerateJWT(42, "ann@example.com", "Ann", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := util.GenerateJWT(42, "ann@example.com", "Ann", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = util.ParseJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := util.GenerateJWT(42, "ann@example.com", "Ann", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = util.ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := util.ParseJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
