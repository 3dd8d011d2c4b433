package models

import (
	"fmt"

	"gamestore/internal/apperrors"
)

// User represents an account in the store. The balance is kept in integer
// minor-currency units and must never go negative; DecreaseBalance is the
// only gate that protects that invariant.
type User struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string  `json:"username" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=3,max=100"`
	PasswordHash string  `json:"-" gorm:"type:varchar(255)"`
	BalanceCents int64   `json:"balance_cents" gorm:"not null;default:0"`
	OwnedGames   []*Game `json:"owned_games,omitempty" gorm:"many2many:user_games"`
}

// IncreaseBalance adds a positive amount of minor-currency units.
func (u *User) IncreaseBalance(amountCents int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("top-up amount must be positive: %w", apperrors.ErrInvalidArgument)
	}
	u.BalanceCents += amountCents
	return nil
}

// DecreaseBalance debits a non-negative amount. A zero amount is a no-op.
func (u *User) DecreaseBalance(amountCents int64) error {
	if amountCents < 0 {
		return fmt.Errorf("debit amount must be non-negative: %w", apperrors.ErrInvalidArgument)
	}
	if amountCents == 0 {
		return nil
	}
	if u.BalanceCents < amountCents {
		return fmt.Errorf("balance %d is less than %d: %w", u.BalanceCents, amountCents, apperrors.ErrInsufficientFunds)
	}
	u.BalanceCents -= amountCents
	return nil
}

// OwnsGame reports whether the game is in the user's owned set.
func (u *User) OwnsGame(gameID string) bool {
	for _, g := range u.OwnedGames {
		if g.ID == gameID {
			return true
		}
	}
	return false
}

// AddOwnedGame grants the game. Adding a game the user already owns is a no-op.
func (u *User) AddOwnedGame(game *Game) {
	if u.OwnsGame(game.ID) {
		return
	}
	u.OwnedGames = append(u.OwnedGames, game)
}

// RemoveOwnedGame revokes the game. Removing an absent game is a no-op.
func (u *User) RemoveOwnedGame(gameID string) {
	for i, g := range u.OwnedGames {
		if g.ID == gameID {
			u.OwnedGames = append(u.OwnedGames[:i], u.OwnedGames[i+1:]...)
			return
		}
	}
}
