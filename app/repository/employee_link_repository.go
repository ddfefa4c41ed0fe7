package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/shortener"
)

// how many random slugs we try before falling back to a uuid-derived id
const slugAttempts = 5

// MemoryEmployeeLinkRepository stores employee short links in memory, keyed
// by their generated slug. List preserves insertion order.
type MemoryEmployeeLinkRepository struct {
	mu    sync.RWMutex
	links map[string]models.EmployeeLink
	order []string
}

func NewMemoryEmployeeLinkRepository() *MemoryEmployeeLinkRepository {
	return &MemoryEmployeeLinkRepository{
		links: make(map[string]models.EmployeeLink),
	}
}

// Create assigns a unique ID and CreatedAt, then stores the record. Slug
// generation is retried against the store, a random id is only accepted once
// we know it is free.
func (r *MemoryEmployeeLinkRepository) Create(link *models.EmployeeLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.newIDLocked()
	if err != nil {
		return err
	}

	link.ID = id
	link.Clicks = 0
	link.CreatedAt = time.Now()

	r.links[id] = *link
	r.order = append(r.order, id)
	return nil
}

func (r *MemoryEmployeeLinkRepository) newIDLocked() (string, error) {
	for i := 0; i < slugAttempts; i++ {
		slug, err := shortener.GenerateSecureSlug(shortener.SlugLength)
		if err != nil {
			return "", err
		}
		if _, taken := r.links[slug]; !taken {
			return slug, nil
		}
	}

	// uuid fallback keeps the short format while drawing from a namespace
	// where a conflict means the random source is broken
	id := strings.ReplaceAll(uuid.New().String(), "-", "")[:shortener.SlugLength]
	if _, taken := r.links[id]; taken {
		return "", ErrIDConflict
	}
	return id, nil
}

func (r *MemoryEmployeeLinkRepository) GetByID(id string) (*models.EmployeeLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	link, ok := r.links[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &link, nil
}

// List returns a snapshot of all links in insertion order.
func (r *MemoryEmployeeLinkRepository) List() ([]models.EmployeeLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.EmployeeLink, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.links[id])
	}
	return out, nil
}

// IncrementClicks bumps the click counter by exactly one and returns the
// updated record. The counter only ever increases.
func (r *MemoryEmployeeLinkRepository) IncrementClicks(id string) (*models.EmployeeLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[id]
	if !ok {
		return nil, ErrNotFound
	}
	link.Clicks++
	r.links[id] = link
	return &link, nil
}
