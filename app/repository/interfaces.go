package repository

import (
	"github.com/alexandreventurin/AvalinxGHL/app/models"
)

// TokenRepository defines the interface for OAuth token storage, keyed by
// location ID. GetAll returns a snapshot copy, callers may iterate it while
// other requests mutate the store.
type TokenRepository interface {
	Save(locationID string, token *models.GhlToken) error
	Get(locationID string) (*models.GhlToken, error)
	GetAll() (map[string]*models.GhlToken, error)
	Delete(locationID string) error
	Count() int
}

// AccountRepository defines the interface for cached business profiles,
// keyed by location ID.
type AccountRepository interface {
	Save(locationID string, account *models.GhlAccount) error
	Get(locationID string) (*models.GhlAccount, error)
	Delete(locationID string) error
}

// EmployeeLinkRepository defines the interface for employee short-link
// records. Create assigns the record's ID and CreatedAt.
type EmployeeLinkRepository interface {
	Create(link *models.EmployeeLink) error
	GetByID(id string) (*models.EmployeeLink, error)
	List() ([]models.EmployeeLink, error)
	IncrementClicks(id string) (*models.EmployeeLink, error)
}
