package repositories

import (
	"fmt"

	"github.com/google/uuid"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
type MockWishlistRepository struct {
	store *MemoryStore
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository(store *MemoryStore) *MockWishlistRepository {
	return &MockWishlistRepository{store: store}
}

// GetOrCreateByUserID returns the user's wishlist, creating an empty one
// under the store lock if none exists yet.
func (r *MockWishlistRepository) GetOrCreateByUserID(userID string) (*models.Wishlist, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, w := range r.store.wishlists {
		if w.UserID == userID {
			w = cloneWishlist(w)
			return &w, nil
		}
	}

	wishlist := models.Wishlist{ID: uuid.New().String(), UserID: userID}
	r.store.wishlists[wishlist.ID] = wishlist
	result := cloneWishlist(wishlist)
	return &result, nil
}

// GetByUserID returns the user's wishlist without creating one.
func (r *MockWishlistRepository) GetByUserID(userID string) (*models.Wishlist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, w := range r.store.wishlists {
		if w.UserID == userID {
			w = cloneWishlist(w)
			return &w, nil
		}
	}
	return nil, fmt.Errorf("wishlist for user %s: %w", userID, apperrors.ErrNotFound)
}

// GetByID returns a wishlist by its own ID.
func (r *MockWishlistRepository) GetByID(id string) (*models.Wishlist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wishlist, ok := r.store.wishlists[id]
	if !ok {
		return nil, fmt.Errorf("wishlist with ID %s: %w", id, apperrors.ErrNotFound)
	}
	wishlist = cloneWishlist(wishlist)
	return &wishlist, nil
}

// Update overwrites an existing wishlist.
func (r *MockWishlistRepository) Update(wishlist *models.Wishlist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.wishlists[wishlist.ID]; !ok {
		return fmt.Errorf("wishlist with ID %s: %w", wishlist.ID, apperrors.ErrNotFound)
	}
	r.store.wishlists[wishlist.ID] = cloneWishlist(*wishlist)
	return nil
}

// Delete removes a wishlist by ID.
func (r *MockWishlistRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.wishlists[id]; !ok {
		return fmt.Errorf("wishlist with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.store.wishlists, id)
	return nil
}
