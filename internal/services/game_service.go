package services

import (
	"errors"
	"fmt"
	"strings"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
)

// GameService handles business logic for the game catalog.
type GameService struct {
	gameRepo     repositories.GameRepository
	tagRepo      repositories.TagRepository
	purchaseRepo repositories.PurchaseRepository
	reviewRepo   repositories.ReviewRepository
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo repositories.GameRepository,
	tagRepo repositories.TagRepository,
	purchaseRepo repositories.PurchaseRepository,
	reviewRepo repositories.ReviewRepository) *GameService {
	return &GameService{
		gameRepo:     gameRepo,
		tagRepo:      tagRepo,
		purchaseRepo: purchaseRepo,
		reviewRepo:   reviewRepo,
	}
}

// Create adds a new game to the catalog. The name must be non-blank and
// unique by exact match.
func (s *GameService) Create(name string) (*models.Game, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("game name must not be blank: %w", apperrors.ErrInvalidArgument)
	}

	existing, err := s.gameRepo.GetByName(name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("game with this name already exists: %w", apperrors.ErrConflict)
	}

	game := &models.Game{Name: name}
	if err := s.gameRepo.Create(game); err != nil {
		return nil, err
	}
	return game, nil
}

// GetAll retrieves all games.
func (s *GameService) GetAll() ([]models.Game, error) {
	return s.gameRepo.GetAll()
}

// GetByID retrieves a single game by its ID.
func (s *GameService) GetByID(id string) (*models.Game, error) {
	return s.gameRepo.GetByID(id)
}

// SearchByName retrieves games whose name contains the fragment,
// case-insensitively. An empty fragment yields the full catalog.
func (s *GameService) SearchByName(fragment string) ([]models.Game, error) {
	return s.gameRepo.SearchByName(fragment)
}

// SearchByTags normalizes each tag name (trim, lowercase), drops blanks,
// and returns the union of games holding any of the surviving names. An
// empty surviving set yields an empty result without touching storage.
func (s *GameService) SearchByTags(tags []string) ([]models.Game, error) {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		name := strings.ToLower(strings.TrimSpace(t))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}

	if len(normalized) == 0 {
		return []models.Game{}, nil
	}
	return s.gameRepo.SearchByAnyTag(normalized)
}

// Delete removes a game from the catalog. Deletion is blocked, not
// cascaded, while any purchase or review references the game.
func (s *GameService) Delete(id string) error {
	if _, err := s.gameRepo.GetByID(id); err != nil {
		return err
	}

	hasPurchases, err := s.purchaseRepo.ExistsByGame(id)
	if err != nil {
		return err
	}
	if hasPurchases {
		return fmt.Errorf("cannot delete game: it has purchases: %w", apperrors.ErrConflict)
	}

	hasReviews, err := s.reviewRepo.ExistsByGame(id)
	if err != nil {
		return err
	}
	if hasReviews {
		return fmt.Errorf("cannot delete game: it has reviews: %w", apperrors.ErrConflict)
	}

	return s.gameRepo.Delete(id)
}

// AddTag attaches a tag to a game.
func (s *GameService) AddTag(gameID, tagID string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		return nil, err
	}

	game.AddTag(tag)
	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

// RemoveTag detaches a tag from a game.
func (s *GameService) RemoveTag(gameID, tagID string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	tag, err := s.tagRepo.GetByID(tagID)
	if err != nil {
		return nil, err
	}

	game.RemoveTag(tag.ID)
	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}
