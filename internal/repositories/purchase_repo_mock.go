package repositories

import (
	"fmt"

	"github.com/google/uuid"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	store *MemoryStore
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository(store *MemoryStore) *MockPurchaseRepository {
	return &MockPurchaseRepository{store: store}
}

// Record applies the user save, the wishlist side effect and the purchase
// insert under one hold of the store lock. The duplicate check is the same
// backstop the database backend gets from its unique index.
func (r *MockPurchaseRepository) Record(user *models.User, wishlist *models.Wishlist, purchase *models.Purchase) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return fmt.Errorf("user with ID %s: %w", user.ID, apperrors.ErrNotFound)
	}
	for _, p := range r.store.purchases {
		if p.UserID == purchase.UserID && p.GameID == purchase.GameID {
			return fmt.Errorf("purchase for user %s and game %s already exists: %w", purchase.UserID, purchase.GameID, apperrors.ErrConflict)
		}
	}

	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	r.store.users[user.ID] = cloneUser(*user)
	if wishlist != nil {
		r.store.wishlists[wishlist.ID] = cloneWishlist(*wishlist)
	}
	r.store.purchases[purchase.ID] = *purchase
	return nil
}

// GetByUser returns all purchases made by the user.
func (r *MockPurchaseRepository) GetByUser(userID string) ([]models.Purchase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	purchases := make([]models.Purchase, 0)
	for _, p := range r.store.purchases {
		if p.UserID == userID {
			purchases = append(purchases, p)
		}
	}
	return purchases, nil
}

// ExistsByUserAndGame reports whether the (user, game) pair already has a
// purchase.
func (r *MockPurchaseRepository) ExistsByUserAndGame(userID, gameID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.purchases {
		if p.UserID == userID && p.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByGame reports whether any purchase references the game.
func (r *MockPurchaseRepository) ExistsByGame(gameID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.purchases {
		if p.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}
