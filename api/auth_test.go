package api

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/plateful-app/backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager(testSecret)
	userID := uuid.New()

	token, err := tokens.Issue(userID, time.Hour)
	require.NoError(t, err)

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenManager(testSecret)

	token, err := tokens.Issue(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	require.Error(t, err)
	assert.True(t, errs.IsExpiredTokenError(err))
	assert.Equal(t, 401, errs.StatusOf(err))
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("other-secret").Issue(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret).Parse(token)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestTokenGarbage(t *testing.T) {
	_, err := NewTokenManager(testSecret).Parse("not.a.token")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}
