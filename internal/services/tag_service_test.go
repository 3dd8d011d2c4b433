package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/services"
)

func TestTagService_Create(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := services.NewTagService(tagRepo)

	// Successful creation keeps the original casing
	tagRepo.On("GetByNameFold", "RPG").Return(nil, notFoundErr("tag with name RPG")).Once()
	tagRepo.On("Create", mock.AnythingOfType("*models.GameTag")).Return(nil).Once()

	tag, err := service.Create("RPG")
	assert.NoError(t, err)
	assert.Equal(t, "RPG", tag.Name)
	tagRepo.AssertExpectations(t)

	// Duplicate check is case-insensitive
	tagRepo.On("GetByNameFold", "rpg").Return(&models.GameTag{ID: "t1", Name: "RPG"}, nil).Once()
	tag, err = service.Create("rpg")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, tag)
	tagRepo.AssertExpectations(t)

	// Blank name
	tag, err = service.Create("  ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Nil(t, tag)
}

func TestTagService_Delete(t *testing.T) {
	tagRepo := new(MockTagRepository)
	service := services.NewTagService(tagRepo)

	// Deletion is permissive: no referential check against games.
	tagRepo.On("Delete", "t1").Return(nil).Once()
	assert.NoError(t, service.Delete("t1"))
	tagRepo.AssertExpectations(t)

	tagRepo.On("Delete", "t404").Return(notFoundErr("tag with ID t404")).Once()
	assert.ErrorIs(t, service.Delete("t404"), apperrors.ErrNotFound)
	tagRepo.AssertExpectations(t)
}
