package services

import (
	"fmt"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
)

// ReviewService handles business logic for game reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
	gameRepo   repositories.GameRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		gameRepo:   gameRepo,
	}
}

// validateContent rejects out-of-range ratings and oversized comments even
// though the boundary layer validates them too.
func validateContent(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrInvalidArgument)
	}
	if len(comment) > models.MaxCommentLength {
		return fmt.Errorf("comment must be at most %d characters: %w", models.MaxCommentLength, apperrors.ErrInvalidArgument)
	}
	return nil
}

// Create writes a new review. At most one review may exist per (user, game)
// pair.
func (s *ReviewService) Create(userID, gameID string, rating int, comment string) (*models.Review, error) {
	if err := validateContent(rating, comment); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsByUserAndGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("review already exists for this user and game: %w", apperrors.ErrConflict)
	}

	userExists, err := s.userRepo.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, fmt.Errorf("user with ID %s: %w", userID, apperrors.ErrNotFound)
	}
	if _, err := s.gameRepo.GetByID(gameID); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		GameID:  gameID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetAll retrieves all reviews.
func (s *ReviewService) GetAll() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}

// GetByID retrieves a single review by ID.
func (s *ReviewService) GetByID(id string) (*models.Review, error) {
	return s.reviewRepo.GetByID(id)
}

// GetByGame retrieves all reviews for the game.
func (s *ReviewService) GetByGame(gameID string) ([]models.Review, error) {
	return s.reviewRepo.GetByGame(gameID)
}

// GetByUser retrieves all reviews written by the user.
func (s *ReviewService) GetByUser(userID string) ([]models.Review, error) {
	return s.reviewRepo.GetByUser(userID)
}

// Update overwrites the rating and comment of an existing review. The
// (user, game) uniqueness cannot be violated by an update, so it is not
// re-checked.
func (s *ReviewService) Update(id string, rating int, comment string) (*models.Review, error) {
	if err := validateContent(rating, comment); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review by ID.
func (s *ReviewService) Delete(id string) error {
	return s.reviewRepo.Delete(id)
}
