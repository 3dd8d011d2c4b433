package services

import (
	"fmt"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
)

// WishlistService handles business logic for per-user wishlists. Wishlists
// are never created explicitly: every read or write provisions one lazily
// for the user on first access.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	userRepo     repositories.UserRepository
	gameRepo     repositories.GameRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository,
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		userRepo:     userRepo,
		gameRepo:     gameRepo,
	}
}

// GetOrCreateByUserID returns the user's wishlist, creating an empty one on
// first access.
func (s *WishlistService) GetOrCreateByUserID(userID string) (*models.Wishlist, error) {
	exists, err := s.userRepo.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user with ID %s: %w", userID, apperrors.ErrNotFound)
	}
	return s.wishlistRepo.GetOrCreateByUserID(userID)
}

// GetGames retrieves the games on the user's wishlist.
func (s *WishlistService) GetGames(userID string) ([]*models.Game, error) {
	wishlist, err := s.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	return wishlist.Games, nil
}

// AddGame puts a game on the user's wishlist.
func (s *WishlistService) AddGame(userID, gameID string) (*models.Wishlist, error) {
	wishlist, err := s.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}

	wishlist.AddGame(game)
	if err := s.wishlistRepo.Update(wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// RemoveGame takes a game off the user's wishlist. Removing a game that is
// not on the list is not an error.
func (s *WishlistService) RemoveGame(userID, gameID string) (*models.Wishlist, error) {
	wishlist, err := s.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, err
	}
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}

	wishlist.RemoveGame(game.ID)
	if err := s.wishlistRepo.Update(wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// GetByID retrieves a wishlist by its own ID.
func (s *WishlistService) GetByID(id string) (*models.Wishlist, error) {
	return s.wishlistRepo.GetByID(id)
}

// Delete removes a wishlist by its own ID.
func (s *WishlistService) Delete(id string) error {
	if _, err := s.wishlistRepo.GetByID(id); err != nil {
		return err
	}
	return s.wishlistRepo.Delete(id)
}
