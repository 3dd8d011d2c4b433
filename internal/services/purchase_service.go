package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
	"gamestore/pkg/rabbitmq"
)

// PurchaseService handles the purchase transaction: it validates, debits
// the buyer, transfers ownership, drops the game from the buyer's wishlist
// and records the purchase, all as one unit.
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	userRepo     repositories.UserRepository
	gameRepo     repositories.GameRepository
	wishlistRepo repositories.WishlistRepository
	locker       *UserLocker
	mqClient     *rabbitmq.Client
}

// NewPurchaseService creates a new PurchaseService. mqClient may be nil; no
// events are published then.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository,
	userRepo repositories.UserRepository,
	gameRepo repositories.GameRepository,
	wishlistRepo repositories.WishlistRepository,
	locker *UserLocker,
	mqClient *rabbitmq.Client) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		gameRepo:     gameRepo,
		wishlistRepo: wishlistRepo,
		locker:       locker,
		mqClient:     mqClient,
	}
}

// Create executes a purchase of the game by the user at the given price.
// All validation happens before any mutation, so a rejected purchase never
// partially debits; the final persist is atomic through the repository.
// The user's lock serializes the uniqueness check and the debit against
// concurrent purchases and top-ups for the same user.
func (s *PurchaseService) Create(userID, gameID string, priceCents int64) (*models.Purchase, error) {
	if priceCents < 0 {
		return nil, fmt.Errorf("invalid price: %w", apperrors.ErrConflict)
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	alreadyPurchased, err := s.purchaseRepo.ExistsByUserAndGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if alreadyPurchased {
		return nil, fmt.Errorf("user already purchased this game: %w", apperrors.ErrConflict)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}

	if err := user.DecreaseBalance(priceCents); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			return nil, fmt.Errorf("insufficient balance: %w", apperrors.ErrConflict)
		case errors.Is(err, apperrors.ErrInvalidArgument):
			return nil, fmt.Errorf("invalid price: %w", apperrors.ErrConflict)
		default:
			return nil, err
		}
	}

	user.AddOwnedGame(game)

	// A purchased game must not remain on the buyer's wishlist. No
	// wishlist is provisioned here; absence just means nothing to remove.
	wishlist, err := s.wishlistRepo.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		wishlist = nil
	}
	if wishlist != nil {
		wishlist.RemoveGame(game.ID)
	}

	purchase := &models.Purchase{
		UserID:      userID,
		GameID:      gameID,
		PriceCents:  priceCents,
		PurchasedAt: time.Now().UTC(),
	}
	if err := s.purchaseRepo.Record(user, wishlist, purchase); err != nil {
		return nil, err
	}

	s.publishCompleted(purchase)
	return purchase, nil
}

// GetByUser retrieves the purchase history of the user.
func (s *PurchaseService) GetByUser(userID string) ([]models.Purchase, error) {
	exists, err := s.userRepo.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user with ID %s: %w", userID, apperrors.ErrNotFound)
	}
	return s.purchaseRepo.GetByUser(userID)
}

// publishCompleted emits a purchase.completed event. Publishing is best
// effort: the purchase is already committed, so failures are only logged.
func (s *PurchaseService) publishCompleted(purchase *models.Purchase) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"purchaseID":  purchase.ID,
		"userID":      purchase.UserID,
		"gameID":      purchase.GameID,
		"priceCents":  purchase.PriceCents,
		"purchasedAt": purchase.PurchasedAt.Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal purchase event: %v", err)
		return
	}
	if err := s.mqClient.Publish("purchase", "purchase.completed", body); err != nil {
		log.Printf("Warning: Failed to publish purchase event for purchase %s: %v", purchase.ID, err)
	}
}
