package services

import (
	"testing"
	"time"

	"popcornhour/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), time.Hour)
	identity := &models.Identity{UserID: 4, Email: "x@admin.com", Name: "X", Role: models.RoleModerator}

	token, err := tokens.Generate(identity)
	require.NoError(t, err)

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	token, err := NewTokenManager([]byte("other-secret"), time.Hour).Generate(&models.Identity{UserID: 4})
	require.NoError(t, err)

	_, err = NewTokenManager([]byte("test-secret"), time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tokens := NewTokenManager([]byte("test-secret"), time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := tokens.Generate(&models.Identity{UserID: 4})
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
