package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{
		db: db,
	}
}

// Record persists the debited user, the wishlist side effect and the new
// purchase in a single database transaction. The composite unique index on
// (user_id, game_id) backs the in-service uniqueness check.
func (r *GORMPurchaseRepository) Record(user *models.User, wishlist *models.Wishlist, purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Save(user)
		if res.Error != nil {
			return fmt.Errorf("failed to save user %s: %w", user.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user with ID %s: %w", user.ID, apperrors.ErrNotFound)
		}
		if err := tx.Model(user).Association("OwnedGames").Replace(user.OwnedGames); err != nil {
			return fmt.Errorf("failed to update owned games for user %s: %w", user.ID, err)
		}
		if wishlist != nil {
			if err := tx.Model(wishlist).Association("Games").Replace(wishlist.Games); err != nil {
				return fmt.Errorf("failed to update wishlist %s: %w", wishlist.ID, err)
			}
		}
		if err := tx.Create(purchase).Error; err != nil {
			// The unique index catches a duplicate pair slipping past the
			// service check in a concurrent writer.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("purchase for user %s and game %s already exists: %w", purchase.UserID, purchase.GameID, apperrors.ErrConflict)
			}
			return fmt.Errorf("failed to record purchase: %w", err)
		}
		return nil
	})
}

// GetByUser retrieves all purchases made by the user.
func (r *GORMPurchaseRepository) GetByUser(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get purchases for user %s: %w", userID, err)
	}
	return purchases, nil
}

// ExistsByUserAndGame reports whether the (user, game) pair already has a
// purchase.
func (r *GORMPurchaseRepository) ExistsByUserAndGame(userID, gameID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check purchase existence for user %s, game %s: %w", userID, gameID, err)
	}
	return count > 0, nil
}

// ExistsByGame reports whether any purchase references the game.
func (r *GORMPurchaseRepository) ExistsByGame(gameID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Purchase{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check purchase existence for game %s: %w", gameID, err)
	}
	return count > 0, nil
}
