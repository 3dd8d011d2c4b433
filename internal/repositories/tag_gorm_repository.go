package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{
		db: db,
	}
}

// Create creates a new tag in the database.
func (r *GORMTagRepository) Create(tag *models.GameTag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	if err := r.db.Create(tag).Error; err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// Delete removes a tag and its game associations. Games referencing the tag
// do not block deletion.
func (r *GORMTagRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM game_tags WHERE game_tag_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to clear game associations for tag %s: %w", id, err)
		}
		res := tx.Delete(&models.GameTag{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete tag %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("tag with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
}

// GetAll retrieves all tags.
func (r *GORMTagRepository) GetAll() ([]models.GameTag, error) {
	var tags []models.GameTag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tags: %w", err)
	}
	return tags, nil
}

// GetByID retrieves a single tag by ID.
func (r *GORMTagRepository) GetByID(id string) (*models.GameTag, error) {
	var tag models.GameTag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag by ID %s: %w", id, err)
	}
	return &tag, nil
}

// GetByNameFold retrieves a single tag by name, compared case-insensitively.
func (r *GORMTagRepository) GetByNameFold(name string) (*models.GameTag, error) {
	var tag models.GameTag
	if err := r.db.First(&tag, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with name %s: %w", name, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tag by name %s: %w", name, err)
	}
	return &tag, nil
}
