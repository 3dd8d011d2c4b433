package repositories

import "gamestore/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id string) error
	GetAll() ([]models.Review, error)
	GetByID(id string) (*models.Review, error)
	GetByGame(gameID string) ([]models.Review, error)
	GetByUser(userID string) ([]models.Review, error)
	ExistsByUserAndGame(userID, gameID string) (bool, error)
	ExistsByGame(gameID string) (bool, error)
}
