package models

// Wishlist is a per-user saved-for-later set of games, created lazily on
// first access and bound 1:1 to its user for the user's lifetime.
type Wishlist struct {
	ID     string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string  `json:"user_id" gorm:"uniqueIndex;type:varchar(36);not null"`
	Games  []*Game `json:"games" gorm:"many2many:wishlist_games"`
}

// HasGame reports whether the game is on the wishlist.
func (w *Wishlist) HasGame(gameID string) bool {
	for _, g := range w.Games {
		if g.ID == gameID {
			return true
		}
	}
	return false
}

// AddGame puts the game on the wishlist. Adding twice is a no-op.
func (w *Wishlist) AddGame(game *Game) {
	if w.HasGame(game.ID) {
		return
	}
	w.Games = append(w.Games, game)
}

// RemoveGame takes the game off the wishlist. Removing an absent game is a
// no-op, so purchase-time removal is always safe.
func (w *Wishlist) RemoveGame(gameID string) {
	for i, g := range w.Games {
		if g.ID == gameID {
			w.Games = append(w.Games[:i], w.Games[i+1:]...)
			return
		}
	}
}
