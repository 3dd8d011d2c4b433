package repositories

import "gamestore/internal/models"

// WishlistRepository defines the interface for wishlist data access.
// GetOrCreateByUserID must be atomic: two concurrent first accesses for the
// same user must yield the same single wishlist.
type WishlistRepository interface {
	GetOrCreateByUserID(userID string) (*models.Wishlist, error)
	GetByUserID(userID string) (*models.Wishlist, error)
	GetByID(id string) (*models.Wishlist, error)
	Update(wishlist *models.Wishlist) error
	Delete(id string) error
}
