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

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetOrCreateByUserID returns the user's wishlist, creating an empty one if
// none exists yet. The insert is an upsert keyed on user_id, so two
// concurrent first accesses converge on the same row.
func (r *GORMWishlistRepository) GetOrCreateByUserID(userID string) (*models.Wishlist, error) {
	wishlist := models.Wishlist{ID: uuid.New().String(), UserID: userID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&wishlist).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create wishlist for user %s: %w", userID, err)
	}
	return r.GetByUserID(userID)
}

// GetByUserID retrieves the user's wishlist with its games.
func (r *GORMWishlistRepository) GetByUserID(userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.Preload("Games").First(&wishlist, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist for user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return &wishlist, nil
}

// GetByID retrieves a wishlist by its own ID with its games.
func (r *GORMWishlistRepository) GetByID(id string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.Preload("Games").First(&wishlist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist by ID %s: %w", id, err)
	}
	return &wishlist, nil
}

// Update replaces the wishlist's game set with the in-memory set.
func (r *GORMWishlistRepository) Update(wishlist *models.Wishlist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Save(wishlist)
		if res.Error != nil {
			return fmt.Errorf("failed to update wishlist: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("wishlist with ID %s: %w", wishlist.ID, apperrors.ErrNotFound)
		}
		if err := tx.Model(wishlist).Association("Games").Replace(wishlist.Games); err != nil {
			return fmt.Errorf("failed to update games for wishlist %s: %w", wishlist.ID, err)
		}
		return nil
	})
}

// Delete removes a wishlist and its game associations.
func (r *GORMWishlistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM wishlist_games WHERE wishlist_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to clear games for wishlist %s: %w", id, err)
		}
		res := tx.Delete(&models.Wishlist{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete wishlist %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("wishlist with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
}
