package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
)

// MockTagRepository is an in-memory implementation of TagRepository.
type MockTagRepository struct {
	store *MemoryStore
}

// NewMockTagRepository creates a new instance of MockTagRepository.
func NewMockTagRepository(store *MemoryStore) *MockTagRepository {
	return &MockTagRepository{store: store}
}

// Create adds a new tag.
func (r *MockTagRepository) Create(tag *models.GameTag) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	r.store.tags[tag.ID] = *tag
	return nil
}

// Delete removes a tag and detaches it from every game. Referencing games
// do not block deletion.
func (r *MockTagRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tags[id]; !ok {
		return fmt.Errorf("tag with ID %s: %w", id, apperrors.ErrNotFound)
	}
	delete(r.store.tags, id)

	for gid, g := range r.store.games {
		g = cloneGame(g)
		g.RemoveTag(id)
		r.store.games[gid] = g
	}
	return nil
}

// GetAll returns all tags.
func (r *MockTagRepository) GetAll() ([]models.GameTag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tags := make([]models.GameTag, 0, len(r.store.tags))
	for _, t := range r.store.tags {
		tags = append(tags, t)
	}
	return tags, nil
}

// GetByID returns a tag by ID.
func (r *MockTagRepository) GetByID(id string) (*models.GameTag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tag, ok := r.store.tags[id]
	if !ok {
		return nil, fmt.Errorf("tag with ID %s: %w", id, apperrors.ErrNotFound)
	}
	return &tag, nil
}

// GetByNameFold returns a tag by name, compared case-insensitively.
func (r *MockTagRepository) GetByNameFold(name string) (*models.GameTag, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.tags {
		if strings.EqualFold(t.Name, name) {
			tag := t
			return &tag, nil
		}
	}
	return nil, fmt.Errorf("tag with name %s: %w", name, apperrors.ErrNotFound)
}
