package repositories

import (
	"fmt"

	"github.com/google/uuid"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	store *MemoryStore
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository(store *MemoryStore) *MockUserRepository {
	return &MockUserRepository{store: store}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.store.users[user.ID] = cloneUser(*user)
	return nil
}

// Update overwrites an existing user.
func (r *MockUserRepository) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return fmt.Errorf("user with ID %s: %w", user.ID, apperrors.ErrNotFound)
	}
	r.store.users[user.ID] = cloneUser(*user)
	return nil
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]models.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

// GetByID returns a user by ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, apperrors.ErrNotFound)
	}
	user = cloneUser(user)
	return &user, nil
}

// GetByUsername returns a user by exact username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Username == username {
			u = cloneUser(u)
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with username %s: %w", username, apperrors.ErrNotFound)
}

// ExistsByID reports whether a user with the given ID exists.
func (r *MockUserRepository) ExistsByID(id string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.users[id]
	return ok, nil
}
