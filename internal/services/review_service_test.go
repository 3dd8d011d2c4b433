package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gamestore/internal/apperrors"
	"gamestore/internal/models"
	"gamestore/internal/services"
)

func newReviewService() (*services.ReviewService, *MockReviewRepository, *MockUserRepository, *MockGameRepository) {
	reviewRepo := new(MockReviewRepository)
	userRepo := new(MockUserRepository)
	gameRepo := new(MockGameRepository)
	service := services.NewReviewService(reviewRepo, userRepo, gameRepo)
	return service, reviewRepo, userRepo, gameRepo
}

func TestReviewService_Create(t *testing.T) {
	service, reviewRepo, userRepo, gameRepo := newReviewService()

	reviewRepo.On("ExistsByUserAndGame", "u1", "g1").Return(false, nil).Once()
	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	gameRepo.On("GetByID", "g1").Return(&models.Game{ID: "g1", Name: "Hades"}, nil).Once()
	reviewRepo.On("Create", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	review, err := service.Create("u1", "g1", 5, "excellent roguelike")
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "excellent roguelike", review.Comment)
	reviewRepo.AssertExpectations(t)
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	service, reviewRepo, userRepo, _ := newReviewService()

	reviewRepo.On("ExistsByUserAndGame", "u1", "g1").Return(true, nil).Once()

	review, err := service.Create("u1", "g1", 4, "")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, review)
	userRepo.AssertNotCalled(t, "ExistsByID", mock.Anything)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_Create_InvalidContent(t *testing.T) {
	service, reviewRepo, _, _ := newReviewService()

	for _, rating := range []int{0, 6, -1} {
		review, err := service.Create("u1", "g1", rating, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		assert.Nil(t, review)
	}

	review, err := service.Create("u1", "g1", 3, strings.Repeat("x", models.MaxCommentLength+1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Nil(t, review)

	// Content checks run before any storage call.
	reviewRepo.AssertNotCalled(t, "ExistsByUserAndGame", mock.Anything, mock.Anything)
}

func TestReviewService_Create_MissingUserOrGame(t *testing.T) {
	service, reviewRepo, userRepo, gameRepo := newReviewService()

	reviewRepo.On("ExistsByUserAndGame", "u404", "g1").Return(false, nil).Once()
	userRepo.On("ExistsByID", "u404").Return(false, nil).Once()

	review, err := service.Create("u404", "g1", 3, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, review)

	reviewRepo.On("ExistsByUserAndGame", "u1", "g404").Return(false, nil).Once()
	userRepo.On("ExistsByID", "u1").Return(true, nil).Once()
	gameRepo.On("GetByID", "g404").Return(nil, notFoundErr("game with ID g404")).Once()

	review, err = service.Create("u1", "g404", 3, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, review)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_Update(t *testing.T) {
	service, reviewRepo, _, _ := newReviewService()

	reviewRepo.On("GetByID", "r1").Return(&models.Review{ID: "r1", UserID: "u1", GameID: "g1", Rating: 5, Comment: "great"}, nil).Once()
	reviewRepo.On("Update", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	review, err := service.Update("r1", 2, "patch ruined it")
	assert.NoError(t, err)
	assert.Equal(t, 2, review.Rating)
	assert.Equal(t, "patch ruined it", review.Comment)
	reviewRepo.AssertExpectations(t)
}

func TestReviewService_Update_NotFound(t *testing.T) {
	service, reviewRepo, _, _ := newReviewService()

	reviewRepo.On("GetByID", "r404").Return(nil, notFoundErr("review with ID r404")).Once()

	review, err := service.Update("r404", 3, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, review)
	reviewRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReviewService_Delete(t *testing.T) {
	service, reviewRepo, _, _ := newReviewService()

	reviewRepo.On("Delete", "r1").Return(nil).Once()
	assert.NoError(t, service.Delete("r1"))

	reviewRepo.On("Delete", "r404").Return(notFoundErr("review with ID r404")).Once()
	assert.ErrorIs(t, service.Delete("r404"), apperrors.ErrNotFound)
}
