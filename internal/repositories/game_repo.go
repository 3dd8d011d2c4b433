package repositories

import "gamestore/internal/models"

// GameRepository defines the interface for catalog game data access.
// SearchByAnyTag derives the tag-to-games view from the game-owned
// association; callers pass already-normalized lowercase tag names.
type GameRepository interface {
	Create(game *models.Game) error
	Update(game *models.Game) error
	Delete(id string) error
	GetAll() ([]models.Game, error)
	GetByID(id string) (*models.Game, error)
	GetByName(name string) (*models.Game, error)
	SearchByName(fragment string) ([]models.Game, error)
	SearchByAnyTag(names []string) ([]models.Game, error)
}
