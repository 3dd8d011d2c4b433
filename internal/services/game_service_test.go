package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/services"
)

func newGameService() (*services.GameService, *MockGameRepository, *MockTagRepository, *MockPurchaseRepository, *MockReviewRepository) {
	gameRepo := new(MockGameRepository)
	tagRepo := new(MockTagRepository)
	purchaseRepo := new(MockPurchaseRepository)
	reviewRepo := new(MockReviewRepository)
	service := services.NewGameService(gameRepo, tagRepo, purchaseRepo, reviewRepo)
	return service, gameRepo, tagRepo, purchaseRepo, reviewRepo
}

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
}

func TestGameService_Create(t *testing.T) {
	service, gameRepo, _, _, _ := newGameService()

	// Successful creation
	gameRepo.On("GetByName", "Hades").Return(nil, notFoundErr("game with name Hades")).Once()
	gameRepo.On("Create", mock.AnythingOfType("*models.Game")).Return(nil).Once()

	game, err := service.Create("Hades")
	assert.NoError(t, err)
	assert.Equal(t, "Hades", game.Name)
	gameRepo.AssertExpectations(t)

	// Duplicate name
	gameRepo.On("GetByName", "Hades").Return(&models.Game{ID: "g1", Name: "Hades"}, nil).Once()
	game, err = service.Create("Hades")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, game)
	gameRepo.AssertExpectations(t)

	// Blank name never reaches storage
	game, err = service.Create("   ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Nil(t, game)
	gameRepo.AssertNotCalled(t, "GetByName", "   ")
}

func TestGameService_Delete(t *testing.T) {
	service, gameRepo, _, purchaseRepo, reviewRepo := newGameService()
	game := &models.Game{ID: "g1", Name: "Hades"}

	// Blocked by purchases
	gameRepo.On("GetByID", "g1").Return(game, nil).Once()
	purchaseRepo.On("ExistsByGame", "g1").Return(true, nil).Once()
	err := service.Delete("g1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "purchases")
	gameRepo.AssertNotCalled(t, "Delete", "g1")

	// Blocked by reviews
	gameRepo.On("GetByID", "g1").Return(game, nil).Once()
	purchaseRepo.On("ExistsByGame", "g1").Return(false, nil).Once()
	reviewRepo.On("ExistsByGame", "g1").Return(true, nil).Once()
	err = service.Delete("g1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "reviews")
	gameRepo.AssertNotCalled(t, "Delete", "g1")

	// Unreferenced game deletes cleanly
	gameRepo.On("GetByID", "g1").Return(game, nil).Once()
	purchaseRepo.On("ExistsByGame", "g1").Return(false, nil).Once()
	reviewRepo.On("ExistsByGame", "g1").Return(false, nil).Once()
	gameRepo.On("Delete", "g1").Return(nil).Once()
	assert.NoError(t, service.Delete("g1"))
	gameRepo.AssertExpectations(t)

	// Missing game
	gameRepo.On("GetByID", "nope").Return(nil, notFoundErr("game with ID nope")).Once()
	err = service.Delete("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGameService_SearchByTags_Normalization(t *testing.T) {
	service, gameRepo, _, _, _ := newGameService()

	tagged := []models.Game{{ID: "g1", Name: "Hades"}, {ID: "g2", Name: "Bastion"}}
	gameRepo.On("SearchByAnyTag", []string{"rpg", "action"}).Return(tagged, nil).Once()

	games, err := service.SearchByTags([]string{"RPG", " rpg ", "Action"})
	assert.NoError(t, err)
	assert.Equal(t, tagged, games)
	gameRepo.AssertExpectations(t)
}

func TestGameService_SearchByTags_EmptyInputSkipsStorage(t *testing.T) {
	service, gameRepo, _, _, _ := newGameService()

	for _, input := range [][]string{nil, {}, {"", "   ", "\t"}} {
		games, err := service.SearchByTags(input)
		assert.NoError(t, err)
		assert.Empty(t, games)
	}
	gameRepo.AssertNotCalled(t, "SearchByAnyTag", mock.Anything)
}

func TestGameService_SearchByName(t *testing.T) {
	service, gameRepo, _, _, _ := newGameService()

	all := []models.Game{{ID: "g1", Name: "Hades"}}
	gameRepo.On("SearchByName", "").Return(all, nil).Once()

	// Empty input yields the full unfiltered set.
	games, err := service.SearchByName("")
	assert.NoError(t, err)
	assert.Equal(t, all, games)
	gameRepo.AssertExpectations(t)
}

func TestGameService_AddRemoveTag_RoundTrip(t *testing.T) {
	service, gameRepo, tagRepo, _, _ := newGameService()

	tag := &models.GameTag{ID: "t1", Name: "RPG"}
	original := &models.Game{ID: "g1", Name: "Hades", Tags: []*models.GameTag{}}

	gameRepo.On("GetByID", "g1").Return(original, nil).Twice()
	tagRepo.On("GetByID", "t1").Return(tag, nil).Twice()
	gameRepo.On("Update", mock.AnythingOfType("*models.Game")).Return(nil).Twice()

	withTag, err := service.AddTag("g1", "t1")
	assert.NoError(t, err)
	assert.True(t, withTag.HasTag("t1"))

	// Removing the same tag restores the prior tag set.
	withoutTag, err := service.RemoveTag("g1", "t1")
	assert.NoError(t, err)
	assert.False(t, withoutTag.HasTag("t1"))
	assert.Empty(t, withoutTag.Tags)
	gameRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
}

func TestGameService_AddTag_MissingTag(t *testing.T) {
	service, gameRepo, tagRepo, _, _ := newGameService()

	gameRepo.On("GetByID", "g1").Return(&models.Game{ID: "g1", Name: "Hades"}, nil).Once()
	tagRepo.On("GetByID", "t404").Return(nil, notFoundErr("tag with ID t404")).Once()

	game, err := service.AddTag("g1", "t404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, game)
	gameRepo.AssertNotCalled(t, "Update", mock.Anything)
}
