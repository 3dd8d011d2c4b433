package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/services"
)

func newWishlistService() (*services.WishlistService, *MockWishlistRepository, *MockUserRepository, *MockGameRepository) {
	wishlistRepo := new(MockWishlistRepository)
	userRepo := new(MockUserRepository)
	gameRepo := new(MockGameRepository)
	service := services.NewWishlistService(wishlistRepo, userRepo, gameRepo)
	return service, wishlistRepo, userRepo, gameRepo
}

func TestWishlistService_GetOrCreateByUserID(t *testing.T) {
	service, wishlistRepo, userRepo, _ := newWishlistService()

	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	wishlistRepo.On("GetOrCreateByUserID", "u1").Return(&models.Wishlist{ID: "w1", UserID: "u1"}, nil).Once()

	wishlist, err := service.GetOrCreateByUserID("u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", wishlist.UserID)
	wishlistRepo.AssertExpectations(t)
}

func TestWishlistService_GetOrCreateByUserID_UserMissing(t *testing.T) {
	service, wishlistRepo, userRepo, _ := newWishlistService()

	userRepo.On("ExistsByID", "u404").Return(false, nil).Once()

	wishlist, err := service.GetOrCreateByUserID("u404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, wishlist)
	wishlistRepo.AssertNotCalled(t, "GetOrCreateByUserID", mock.Anything)
}

func TestWishlistService_GetGames(t *testing.T) {
	service, wishlistRepo, userRepo, _ := newWishlistService()

	games := []*models.Game{{ID: "g1", Name: "Hades"}}
	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	wishlistRepo.On("GetOrCreateByUserID", "u1").Return(&models.Wishlist{ID: "w1", UserID: "u1", Games: games}, nil).Once()

	got, err := service.GetGames("u1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Hades", got[0].Name)

	userRepo.On("ExistsByID", "u404").Return(false, nil).Once()
	got, err = service.GetGames("u404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, got)
}

func TestWishlistService_AddGame(t *testing.T) {
	service, wishlistRepo, userRepo, gameRepo := newWishlistService()

	game := &models.Game{ID: "g1", Name: "Hades"}
	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	wishlistRepo.On("GetOrCreateByUserID", "u1").Return(&models.Wishlist{ID: "w1", UserID: "u1"}, nil).Once()
	gameRepo.On("GetByID", "g1").Return(game, nil).Once()
	wishlistRepo.On("Update", mock.AnythingOfType("*models.Wishlist")).Return(nil).Once()

	wishlist, err := service.AddGame("u1", "g1")
	assert.NoError(t, err)
	assert.True(t, wishlist.HasGame("g1"))
	wishlistRepo.AssertExpectations(t)
}

func TestWishlistService_AddGame_GameMissing(t *testing.T) {
	service, wishlistRepo, userRepo, gameRepo := newWishlistService()

	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	wishlistRepo.On("GetOrCreateByUserID", "u1").Return(&models.Wishlist{ID: "w1", UserID: "u1"}, nil).Once()
	gameRepo.On("GetByID", "g404").Return(nil, notFoundErr("game with ID g404")).Once()

	wishlist, err := service.AddGame("u1", "g404")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, wishlist)
	wishlistRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestWishlistService_RemoveGame_NotListedIsNoError(t *testing.T) {
	service, wishlistRepo, userRepo, gameRepo := newWishlistService()

	game := &models.Game{ID: "g1", Name: "Hades"}
	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	wishlistRepo.On("GetOrCreateByUserID", "u1").Return(&models.Wishlist{ID: "w1", UserID: "u1"}, nil).Once()
	gameRepo.On("GetByID", "g1").Return(game, nil).Once()
	wishlistRepo.On("Update", mock.AnythingOfType("*models.Wishlist")).Return(nil).Once()

	wishlist, err := service.RemoveGame("u1", "g1")
	assert.NoError(t, err)
	assert.Empty(t, wishlist.Games)
}

func TestWishlistService_Delete(t *testing.T) {
	service, wishlistRepo, _, _ := newWishlistService()

	wishlistRepo.On("GetByID", "w1").Return(&models.Wishlist{ID: "w1", UserID: "u1"}, nil).Once()
	wishlistRepo.On("Delete", "w1").Return(nil).Once()
	assert.NoError(t, service.Delete("w1"))

	wishlistRepo.On("GetByID", "w404").Return(nil, notFoundErr("wishlist with ID w404")).Once()
	assert.ErrorIs(t, service.Delete("w404"), apperrors.ErrNotFound)
	wishlistRepo.AssertNotCalled(t, "Delete", "w404")
}
