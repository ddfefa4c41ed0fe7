package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
)

func newToken(locationID string) *models.GhlToken {
	return &models.GhlToken{
		AccessToken:  "access-" + locationID,
		RefreshToken: "refresh-" + locationID,
		ExpiresIn:    86400,
		TokenType:    "Bearer",
		LocationID:   locationID,
		CreatedAt:    time.Now().UnixMilli(),
	}
}

func TestMemoryTokenRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryTokenRepository()

	_, err := repo.Get("loc1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Save("loc1", newToken("loc1")))
	got, err := repo.Get("loc1")
	require.NoError(t, err)
	assert.Equal(t, "access-loc1", got.AccessToken)
	assert.Equal(t, 1, repo.Count())

	require.NoError(t, repo.Delete("loc1"))
	_, err = repo.Get("loc1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestMemoryTokenRepositorySaveOverwrites(t *testing.T) {
	repo := NewMemoryTokenRepository()
	require.NoError(t, repo.Save("loc1", newToken("loc1")))

	replacement := newToken("loc1")
	replacement.AccessToken = "rotated"
	require.NoError(t, repo.Save("loc1", replacement))

	got, err := repo.Get("loc1")
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.AccessToken)
	assert.Equal(t, 1, repo.Count())
}

func TestMemoryTokenRepositoryGetAllIsSnapshot(t *testing.T) {
	repo := NewMemoryTokenRepository()
	require.NoError(t, repo.Save("loc1", newToken("loc1")))
	require.NoError(t, repo.Save("loc2", newToken("loc2")))

	snapshot, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	// mutating the store must not change the snapshot
	require.NoError(t, repo.Delete("loc1"))
	assert.Len(t, snapshot, 2)

	// mutating the snapshot must not change the store
	snapshot["loc2"].AccessToken = "tampered"
	got, err := repo.Get("loc2")
	require.NoError(t, err)
	assert.Equal(t, "access-loc2", got.AccessToken)
}

func TestMemoryAccountRepositoryReplacesSnapshot(t *testing.T) {
	repo := NewMemoryAccountRepository()

	require.NoError(t, repo.Save("loc1", &models.GhlAccount{LocationID: "loc1", Name: "Old Name", Address: "Old St"}))
	require.NoError(t, repo.Save("loc1", &models.GhlAccount{LocationID: "loc1", Name: "New Name"}))

	got, err := repo.Get("loc1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	// full replacement, not a merge
	assert.Empty(t, got.Address)

	require.NoError(t, repo.Delete("loc1"))
	_, err = repo.Get("loc1")
	assert.ErrorIs(t, err, ErrNotFound)
}
