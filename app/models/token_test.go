package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(createdAt time.Time, expiresIn int64) *GhlToken {
	return &GhlToken{
		AccessToken:  strings.Repeat("a", 40),
		RefreshToken: "refresh-token",
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
		Scope:        "locations.readonly contacts.readonly",
		LocationID:   "loc1",
		CreatedAt:    createdAt.UnixMilli(),
	}
}

func TestGhlTokenIsExpired(t *testing.T) {
	now := time.Now()
	token := testToken(now, 3600)

	assert.False(t, token.IsExpired(now))
	assert.False(t, token.IsExpired(now.Add(59*time.Minute)))
	assert.True(t, token.IsExpired(now.Add(time.Hour)))
	assert.True(t, token.IsExpired(now.Add(2*time.Hour)))
}

func TestGhlTokenExpiresInMinutes(t *testing.T) {
	now := time.Now()
	token := testToken(now, 3600)

	assert.Equal(t, int64(60), token.ExpiresInMinutes(now))
	assert.Equal(t, int64(30), token.ExpiresInMinutes(now.Add(30*time.Minute)))
	// never negative once expired
	assert.Equal(t, int64(0), token.ExpiresInMinutes(now.Add(90*time.Minute)))
}

func TestGhlTokenMaskedAccessToken(t *testing.T) {
	token := testToken(time.Now(), 3600)
	masked := token.MaskedAccessToken()

	assert.Equal(t, strings.Repeat("a", 20)+"...", masked)
	assert.NotContains(t, masked, strings.Repeat("a", 21))

	short := &GhlToken{AccessToken: "tiny"}
	assert.Equal(t, "tiny...", short.MaskedAccessToken())
}

func TestGhlTokenValidate(t *testing.T) {
	token := testToken(time.Now(), 3600)
	require.NoError(t, token.Validate())

	missing := testToken(time.Now(), 3600)
	missing.AccessToken = ""
	require.Error(t, missing.Validate())

	zeroExpiry := testToken(time.Now(), 0)
	require.Error(t, zeroExpiry.Validate())
}
