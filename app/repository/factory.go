package repository

import "sync"

// Repositories bundles all store instances.
type Repositories struct {
	Token        TokenRepository
	Account      AccountRepository
	EmployeeLink EmployeeLinkRepository
}

// NewRepositories creates the in-memory store set. The stores live as long
// as the process; swapping in a persistent backend later only means building
// this struct differently.
func NewRepositories() *Repositories {
	return &Repositories{
		Token:        NewMemoryTokenRepository(),
		Account:      NewMemoryAccountRepository(),
		EmployeeLink: NewMemoryEmployeeLinkRepository(),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory() *Factory {
	return &Factory{}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories()
	})
	return f.repos
}

// GetTokenRepository returns the token repository instance
func (f *Factory) GetTokenRepository() TokenRepository {
	return f.GetRepositories().Token
}

// GetAccountRepository returns the account repository instance
func (f *Factory) GetAccountRepository() AccountRepository {
	return f.GetRepositories().Account
}

// GetEmployeeLinkRepository returns the employee link repository instance
func (f *Factory) GetEmployeeLinkRepository() EmployeeLinkRepository {
	return f.GetRepositories().EmployeeLink
}
