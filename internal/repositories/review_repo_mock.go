package repositories

import (
	"fmt"

	"github.com/google/uuid"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	store *MemoryStore
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository(store *MemoryStore) *MockReviewRepository {
	return &MockReviewRepository{store: store}
}

// Create adds a new review.
func (r *MockReviewRepository) Create(review *models.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.reviews {
		if existing.UserID == review.UserID && existing.GameID == review.GameID {
			return fmt.Errorf("review for user %s and game %s already exists: %w", review.UserID, review.GameID, apperrors.ErrConflict)
		}
	}

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	r.store.reviews[review.ID] = *review
	return nil
}

// Update overwrites an existing review.
func (r *MockReviewRepository) Update(review *models.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reviews[review.ID]; !ok {
		return fmt.Errorf("review with ID %s: %w", review.ID, apperrors.ErrNotFound)
	}
	r.store.reviews[review.ID] = *review
	return nil
}

// Delete removes a review by ID.
func (r *MockReviewRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.reviews[id]; !ok {
		return fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.store.reviews, id)
	return nil
}

// GetAll returns all reviews.
func (r *MockReviewRepository) GetAll() ([]models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]models.Review, 0, len(r.store.reviews))
	for _, rv := range r.store.reviews {
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// GetByID returns a review by ID.
func (r *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	review, ok := r.store.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &review, nil
}

// GetByGame returns all reviews for the game.
func (r *MockReviewRepository) GetByGame(gameID string) ([]models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]models.Review, 0)
	for _, rv := range r.store.reviews {
		if rv.GameID == gameID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

// GetByUser returns all reviews written by the user.
func (r *MockReviewRepository) GetByUser(userID string) ([]models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reviews := make([]models.Review, 0)
	for _, rv := range r.store.reviews {
		if rv.UserID == userID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

// ExistsByUserAndGame reports whether the (user, game) pair already has a
// review.
func (r *MockReviewRepository) ExistsByUserAndGame(userID, gameID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rv := range r.store.reviews {
		if rv.UserID == userID && rv.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByGame reports whether any review references the game.
func (r *MockReviewRepository) ExistsByGame(gameID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rv := range r.store.reviews {
		if rv.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}
