package services

import (
	"errors"
	"fmt"
	"strings"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
)

// TagService handles business logic for catalog tags.
type TagService struct {
	tagRepo repositories.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repositories.TagRepository) *TagService {
	return &TagService{
		tagRepo: tagRepo,
	}
}

// Create adds a new tag. The name is stored with its original casing but
// uniqueness is checked case-insensitively.
func (s *TagService) Create(name string) (*models.GameTag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("tag name must not be blank: %w", apperrors.ErrInvalidArgument)
	}

	existing, err := s.tagRepo.GetByNameFold(name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("tag with this name already exists: %w", apperrors.ErrConflict)
	}

	tag := &models.GameTag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetAll retrieves all tags.
func (s *TagService) GetAll() ([]models.GameTag, error) {
	return s.tagRepo.GetAll()
}

// GetByID retrieves a single tag by its ID.
func (s *TagService) GetByID(id string) (*models.GameTag, error) {
	return s.tagRepo.GetByID(id)
}

// Delete removes a tag. Games still referencing the tag do not block the
// deletion; the association rows are cleaned up by the repository.
func (s *TagService) Delete(id string) error {
	return s.tagRepo.Delete(id)
}
