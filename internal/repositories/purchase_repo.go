package repositories

import "gamestore/internal/models"

// PurchaseRepository defines the interface for purchase data access.
// Record persists the debited user, the wishlist side effect (nil if the
// user has no wishlist) and the new purchase as one atomic unit, so a
// failure partway never leaves the balance debited without ownership
// granted.
type PurchaseRepository interface {
	Record(user *models.User, wishlist *models.Wishlist, purchase *models.Purchase) error
	GetByUser(userID string) ([]models.Purchase, error)
	ExistsByUserAndGame(userID, gameID string) (bool, error)
	ExistsByGame(gameID string) (bool, error)
}
