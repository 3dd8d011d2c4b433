package repositories

import "gamestore/internal/models"

// TagRepository defines the interface for tag data access. GetByNameFold
// matches case-insensitively; the stored casing is preserved.
type TagRepository interface {
	Create(tag *models.GameTag) error
	Delete(id string) error
	GetAll() ([]models.GameTag, error)
	GetByID(id string) (*models.GameTag, error)
	GetByNameFold(name string) (*models.GameTag, error)
}
