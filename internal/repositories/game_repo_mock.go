package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// MockGameRepository is an in-memory implementation of GameRepository.
type MockGameRepository struct {
	store *MemoryStore
}

// NewMockGameRepository creates a new instance of MockGameRepository.
func NewMockGameRepository(store *MemoryStore) *MockGameRepository {
	return &MockGameRepository{store: store}
}

// Create adds a new game.
func (r *MockGameRepository) Create(game *models.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if game.ID == "" {
		game.ID = uuid.New().String()
	}
	r.store.games[game.ID] = cloneGame(*game)
	return nil
}

// Update overwrites an existing game.
func (r *MockGameRepository) Update(game *models.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.games[game.ID]; !ok {
		return fmt.Errorf("game with ID %s: %w", game.ID, apperrors.ErrNotFound)
	}
	r.store.games[game.ID] = cloneGame(*game)
	return nil
}

// Delete removes a game and strips it from every owned-games set and
// wishlist, mirroring the join-row cleanup of the database backend.
func (r *MockGameRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.games[id]; !ok {
		return fmt.Errorf("game with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.store.games, id)

	for uid, u := range r.store.users {
		u = cloneUser(u)
		u.RemoveOwnedGame(id)
		r.store.users[uid] = u
	}
	for wid, w := range r.store.wishlists {
		w = cloneWishlist(w)
		w.RemoveGame(id)
		r.store.wishlists[wid] = w
	}
	return nil
}

// GetAll returns all games.
func (r *MockGameRepository) GetAll() ([]models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	games := make([]models.Game, 0, len(r.store.games))
	for _, g := range r.store.games {
		games = append(games, cloneGame(g))
	}
	return games, nil
}

// GetByID returns a game by ID.
func (r *MockGameRepository) GetByID(id string) (*models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	game, ok := r.store.games[id]
	if !ok {
		return nil, fmt.Errorf("game with ID %s: %w", id, apperrors.ErrNotFound)
	}
	game = cloneGame(game)
	return &game, nil
}

// GetByName returns a game by exact name.
func (r *MockGameRepository) GetByName(name string) (*models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, g := range r.store.games {
		if g.Name == name {
			g = cloneGame(g)
			return &g, nil
		}
	}
	return nil, fmt.Errorf("game with name %s: %w", name, apperrors.ErrNotFound)
}

// SearchByName returns games whose name contains the fragment,
// case-insensitively. An empty fragment matches every game.
func (r *MockGameRepository) SearchByName(fragment string) ([]models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(fragment)
	games := make([]models.Game, 0)
	for _, g := range r.store.games {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			games = append(games, cloneGame(g))
		}
	}
	return games, nil
}

// SearchByAnyTag returns the union of games holding any of the given
// lowercase tag names.
func (r *MockGameRepository) SearchByAnyTag(names []string) ([]models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	games := make([]models.Game, 0)
	for _, g := range r.store.games {
		for _, t := range g.Tags {
			if wanted[strings.ToLower(t.Name)] {
				games = append(games, cloneGame(g))
				break
			}
		}
	}
	return games, nil
}
