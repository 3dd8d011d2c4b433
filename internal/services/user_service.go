package services

import (
	"errors"
	"fmt"
	"strings"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
)

// UserService handles business logic for user accounts: registration,
// balance top-ups and the owned-games set.
type UserService struct {
	userRepo repositories.UserRepository
	gameRepo repositories.GameRepository
	locker   *UserLocker
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	locker *UserLocker) *UserService {
	return &UserService{
		userRepo: userRepo,
		gameRepo: gameRepo,
		locker:   locker,
	}
}

// Create registers a new user with a zero balance. The username must be
// non-blank and unique by exact, case-sensitive match.
func (s *UserService) Create(user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, fmt.Errorf("username must not be blank: %w", apperrors.ErrInvalidArgument)
	}

	existing, err := s.userRepo.GetByUsername(user.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username already exists: %w", apperrors.ErrConflict)
	}

	user.BalanceCents = 0
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAll retrieves all users.
func (s *UserService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetByID retrieves a single user by ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetByUsername retrieves a single user by exact username.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

// GetOwnedGames retrieves the user's owned-games set.
func (s *UserService) GetOwnedGames(userID string) ([]*models.Game, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user.OwnedGames, nil
}

// AddOwnedGame grants a game to a user outside the purchase flow.
func (s *UserService) AddOwnedGame(userID, gameID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}

	user.AddOwnedGame(game)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RemoveOwnedGame revokes a game from a user.
func (s *UserService) RemoveOwnedGame(userID, gameID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}

	user.RemoveOwnedGame(game.ID)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// TopUpBalance credits a positive amount to the user's balance. It takes
// the user's lock so a top-up never interleaves with a purchase debit.
func (s *UserService) TopUpBalance(userID string, amountCents int64) (*models.User, error) {
	unlock := s.locker.Lock(userID)
	defer unlock()

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := user.IncreaseBalance(amountCents); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
