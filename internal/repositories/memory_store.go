package repositories

import (
	"sync"

	"gamestore/internal/models"
)

// MemoryStore is the shared backing state for the in-memory repositories.
// A single lock covers every entity map so multi-entity operations (the
// purchase record, game deletion cleanup) apply atomically, mirroring the
// database transaction the GORM repositories use.
type MemoryStore struct {
	mu        sync.RWMutex
	users     map[string]models.User
	games     map[string]models.Game
	tags      map[string]models.GameTag
	wishlists map[string]models.Wishlist
	purchases map[string]models.Purchase
	reviews   map[string]models.Review
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]models.User),
		games:     make(map[string]models.Game),
		tags:      make(map[string]models.GameTag),
		wishlists: make(map[string]models.Wishlist),
		purchases: make(map[string]models.Purchase),
		reviews:   make(map[string]models.Review),
	}
}

// The stored entities are value copies; association slices are cloned on
// every read and write so a caller's later mutation never reaches the store
// before an explicit save.

func cloneGameRefs(games []*models.Game) []*models.Game {
	if games == nil {
		return nil
	}
	out := make([]*models.Game, len(games))
	copy(out, games)
	return out
}

func cloneTagRefs(tags []*models.GameTag) []*models.GameTag {
	if tags == nil {
		return nil
	}
	out := make([]*models.GameTag, len(tags))
	copy(out, tags)
	return out
}

func cloneUser(u models.User) models.User {
	u.OwnedGames = cloneGameRefs(u.OwnedGames)
	return u
}

func cloneGame(g models.Game) models.Game {
	g.Tags = cloneTagRefs(g.Tags)
	return g
}

func cloneWishlist(w models.Wishlist) models.Wishlist {
	w.Games = cloneGameRefs(w.Games)
	return w
}
