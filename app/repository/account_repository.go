package repository

import (
	"sync"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
)

// MemoryAccountRepository caches the last-fetched business profile per
// location. Save overwrites the whole snapshot, profiles are never merged.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.GhlAccount
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]models.GhlAccount),
	}
}

func (r *MemoryAccountRepository) Save(locationID string, account *models.GhlAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[locationID] = *account
	return nil
}

func (r *MemoryAccountRepository) Get(locationID string) (*models.GhlAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[locationID]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (r *MemoryAccountRepository) Delete(locationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, locationID)
	return nil
}
