package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/shortener"
)

func TestEmployeeLinkCreateAssignsIdentity(t *testing.T) {
	repo := NewMemoryEmployeeLinkRepository()

	link := &models.EmployeeLink{
		EmployeeName: "Alice",
		LocationID:   "loc1",
		Destination:  "https://g.co/r/ABC",
		Clicks:       99, // must be reset by the store
	}
	require.NoError(t, repo.Create(link))

	assert.Len(t, link.ID, shortener.SlugLength)
	assert.Equal(t, int64(0), link.Clicks)
	assert.False(t, link.CreatedAt.IsZero())

	got, err := repo.GetByID(link.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.EmployeeName)
	assert.Equal(t, "https://g.co/r/ABC", got.Destination)
}

func TestEmployeeLinkIDsAreUnique(t *testing.T) {
	repo := NewMemoryEmployeeLinkRepository()
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		link := &models.EmployeeLink{EmployeeName: "Bob", LocationID: "loc1", Destination: "https://g.co/r/X"}
		require.NoError(t, repo.Create(link))
		require.False(t, seen[link.ID], "duplicate id %q", link.ID)
		seen[link.ID] = true
	}
}

func TestEmployeeLinkListInsertionOrder(t *testing.T) {
	repo := NewMemoryEmployeeLinkRepository()

	names := []string{"Alice", "Bob", "Carla"}
	for _, name := range names {
		require.NoError(t, repo.Create(&models.EmployeeLink{EmployeeName: name, LocationID: "loc1", Destination: "https://g.co/r/X"}))
	}

	links, err := repo.List()
	require.NoError(t, err)
	require.Len(t, links, 3)
	for i, name := range names {
		assert.Equal(t, name, links[i].EmployeeName)
	}
}

func TestEmployeeLinkIncrementClicks(t *testing.T) {
	repo := NewMemoryEmployeeLinkRepository()
	link := &models.EmployeeLink{EmployeeName: "Alice", LocationID: "loc1", Destination: "https://g.co/r/ABC"}
	require.NoError(t, repo.Create(link))

	const n = 5
	for i := 1; i <= n; i++ {
		got, err := repo.IncrementClicks(link.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i), got.Clicks)
	}

	got, err := repo.GetByID(link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Clicks)
}

func TestEmployeeLinkIncrementClicksUnknownID(t *testing.T) {
	repo := NewMemoryEmployeeLinkRepository()

	_, err := repo.IncrementClicks("nope1234")
	assert.ErrorIs(t, err, ErrNotFound)

	// a failed resolve must never create a record
	links, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, links)
}
