package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/ougirez/lwc/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthToken_RoundTrip(t *testing.T) {
	token, err := GenerateAuthToken(&AuthTokenWrapper{Username: "admin"}, "s3cret", time.Hour)
	require.NoError(t, err)

	parsed, err := ParseAuthToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Username)
}

func TestAuthToken_WrongSecret(t *testing.T) {
	token, err := GenerateAuthToken(&AuthTokenWrapper{Username: "admin"}, "s3cret", time.Hour)
	require.NoError(t, err)

	_, err = ParseAuthToken(token, "other")
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrUnauthorized))
}

func TestAuthToken_Expired(t *testing.T) {
	token, err := GenerateAuthToken(&AuthTokenWrapper{Username: "admin"}, "s3cret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAuthToken(token, "s3cret")
	assert.Error(t, err)
}
