package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("review for user %s and game %s already exists: %w", review.UserID, review.GameID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update overwrites an existing review.
func (r *GORMReviewRepository) Update(review *models.Review) error {
	res := r.db.Save(review)
	if res.Error != nil {
		return fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", review.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a review by ID.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GetAll retrieves all reviews.
func (r *GORMReviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reviews: %w", err)
	}
	return reviews, nil
}

// GetByID retrieves a single review by ID.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by ID %s: %w", id, err)
	}
	return &review, nil
}

// GetByGame retrieves all reviews for the game.
func (r *GORMReviewRepository) GetByGame(gameID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("game_id = ?", gameID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for game %s: %w", gameID, err)
	}
	return reviews, nil
}

// GetByUser retrieves all reviews written by the user.
func (r *GORMReviewRepository) GetByUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for user %s: %w", userID, err)
	}
	return reviews, nil
}

// ExistsByUserAndGame reports whether the (user, game) pair already has a
// review.
func (r *GORMReviewRepository) ExistsByUserAndGame(userID, gameID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check review existence for user %s, game %s: %w", userID, gameID, err)
	}
	return count > 0, nil
}

// ExistsByGame reports whether any review references the game.
func (r *GORMReviewRepository) ExistsByGame(gameID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Review{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check review existence for game %s: %w", gameID, err)
	}
	return count > 0, nil
}
