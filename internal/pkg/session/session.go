// Package session resolves the active provider connection from the token
// store. A "session" here is an OAuth token for one GHL location; the MVP
// allows a single authorized location system-wide.
package session

import (
	"errors"
	"sort"
	"time"

	"github.com/alexandreventurin/AvalinxGHL/app/models"
	"github.com/alexandreventurin/AvalinxGHL/app/repository"
	"github.com/alexandreventurin/AvalinxGHL/internal/pkg/apperror"
)

// Manager gates access to stored tokens and enforces lazy expiry: an expired
// token is removed the moment it is looked up, never by a background sweep.
type Manager struct {
	tokens repository.TokenRepository
}

func NewManager(tokens repository.TokenRepository) *Manager {
	return &Manager{tokens: tokens}
}

// Active returns the current session token. With more than one stored
// location (which the MVP does not produce) the lowest location id wins, so
// the choice stays deterministic.
func (m *Manager) Active() (string, *models.GhlToken, error) {
	all, err := m.tokens.GetAll()
	if err != nil {
		return "", nil, err
	}
	if len(all) == 0 {
		return "", nil, apperror.NewSession("No authenticated session found")
	}

	ids := make([]string, 0, len(all))
	for locationID := range all {
		ids = append(ids, locationID)
	}
	sort.Strings(ids)

	locationID := ids[0]
	token, err := m.checkExpiry(locationID, all[locationID])
	if err != nil {
		return "", nil, err
	}
	return locationID, token, nil
}

// ForLocation returns the session token for one location, applying the same
// lazy expiry rule as Active.
func (m *Manager) ForLocation(locationID string) (*models.GhlToken, error) {
	token, err := m.tokens.Get(locationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewSession("No authenticated session found")
		}
		return nil, err
	}
	return m.checkExpiry(locationID, token)
}

func (m *Manager) checkExpiry(locationID string, token *models.GhlToken) (*models.GhlToken, error) {
	if token.IsExpired(time.Now()) {
		// best effort, an expired token left behind is caught on next use
		_ = m.tokens.Delete(locationID)
		return nil, apperror.NewSession("Token expired, please re-authenticate")
	}
	return token, nil
}
