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

// GORMGameRepository is a GORM implementation of GameRepository.
type GORMGameRepository struct {
	db *gorm.DB
}

// NewGORMGameRepository creates a new instance of GORMGameRepository.
func NewGORMGameRepository(db *gorm.DB) *GORMGameRepository {
	return &GORMGameRepository{
		db: db,
	}
}

// Create creates a new game in the database.
func (r *GORMGameRepository) Create(game *models.Game) error {
	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	if err := r.db.Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// Update saves the game's scalar fields and replaces the tag association
// with the in-memory set, inside one transaction.
func (r *GORMGameRepository) Update(game *models.Game) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Save(game)
		if res.Error != nil {
			return fmt.Errorf("failed to update game: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("game with ID %s: %w", game.ID, apperrors.ErrNotFound)
		}
		if err := tx.Model(game).Association("Tags").Replace(game.Tags); err != nil {
			return fmt.Errorf("failed to update tags for game %s: %w", game.ID, err)
		}
		return nil
	})
}

// Delete removes a game and every join row that references it. The caller
// is responsible for the referential checks against purchases and reviews.
func (r *GORMGameRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM game_tags WHERE game_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to clear tag associations for game %s: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM user_games WHERE game_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to clear ownership associations for game %s: %w", id, err)
		}
		if err := tx.Exec("DELETE FROM wishlist_games WHERE game_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to clear wishlist associations for game %s: %w", id, err)
		}
		res := tx.Delete(&models.Game{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete game %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("game with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
}

// GetAll retrieves all games with their tags.
func (r *GORMGameRepository) GetAll() ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Preload("Tags").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	return games, nil
}

// GetByID retrieves a single game by ID with its tags.
func (r *GORMGameRepository) GetByID(id string) (*models.Game, error) {
	var game models.Game
	if err := r.db.Preload("Tags").First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game with ID %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game by ID %s: %w", id, err)
	}
	return &game, nil
}

// GetByName retrieves a single game by its exact name.
func (r *GORMGameRepository) GetByName(name string) (*models.Game, error) {
	var game models.Game
	if err := r.db.Preload("Tags").First(&game, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game with name %s: %w", name, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game by name %s: %w", name, err)
	}
	return &game, nil
}

// SearchByName retrieves games whose name contains the fragment,
// case-insensitively. An empty fragment matches every game.
func (r *GORMGameRepository) SearchByName(fragment string) ([]models.Game, error) {
	var games []models.Game
	pattern := "%" + fragment + "%"
	if err := r.db.Preload("Tags").Where("LOWER(name) LIKE LOWER(?)", pattern).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to search games by name %q: %w", fragment, err)
	}
	return games, nil
}

// SearchByAnyTag retrieves the union of games holding any of the given
// lowercase tag names.
func (r *GORMGameRepository) SearchByAnyTag(names []string) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Preload("Tags").
		Distinct("games.*").
		Joins("JOIN game_tags ON game_tags.game_id = games.id").
		Joins("JOIN tags ON tags.id = game_tags.game_tag_id").
		Where("LOWER(tags.name) IN ?", names).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search games by tags: %w", err)
	}
	return games, nil
}
