package repository

import (
	"sync"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
)

// MemoryTokenRepository keeps tokens in a process-lifetime map. Nothing
// survives a restart; the user simply re-authorizes.
type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]models.GhlToken
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{
		tokens: make(map[string]models.GhlToken),
	}
}

func (r *MemoryTokenRepository) Save(locationID string, token *models.GhlToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[locationID] = *token
	return nil
}

func (r *MemoryTokenRepository) Get(locationID string) (*models.GhlToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	token, ok := r.tokens[locationID]
	if !ok {
		return nil, ErrNotFound
	}
	return &token, nil
}

// GetAll returns a snapshot copy of all stored tokens.
func (r *MemoryTokenRepository) GetAll() (map[string]*models.GhlToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[string]*models.GhlToken, len(r.tokens))
	for locationID, token := range r.tokens {
		t := token
		snapshot[locationID] = &t
	}
	return snapshot, nil
}

func (r *MemoryTokenRepository) Delete(locationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, locationID)
	return nil
}

func (r *MemoryTokenRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
