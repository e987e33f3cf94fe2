package repository

import (
	"sync"

	"github.com/tair/order-management/internal/user/domain"
)

// MemoryUserRepository implements UserRepository with in-process storage.
// State lives for the lifetime of the service instance.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewMemoryUserRepository creates an empty user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]*domain.User),
	}
}

// Create inserts a new user, enforcing username uniqueness
func (r *MemoryUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUsernameTaken
	}

	stored := *user
	r.users[user.Username] = &stored
	return nil
}

// FindByUsername retrieves a user by username
func (r *MemoryUserRepository) FindByUsername(username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// Count returns the total number of registered users
func (r *MemoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
