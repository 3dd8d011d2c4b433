package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamestore/internal/services"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Get("/game/:gameId", h.HandleGetReviewsByGame)
	reviewRoutes.Get("/user/:userId", h.HandleGetReviewsByUser)
	reviewRoutes.Get("/:id", h.HandleGetReviewByID)
	reviewRoutes.Put("/:id", h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// CreateReviewRequest represents the request body for creating a review.
type CreateReviewRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	GameID  string `json:"game_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// HandleCreateReview writes a new review.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	review, err := h.service.Create(req.UserID, req.GameID, req.Rating, req.Comment)
	if err != nil {
		log.Printf("Error creating review for user %s, game %s: %v", req.UserID, req.GameID, err)
		return respondError(c, "Could not create review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleGetReviews retrieves all reviews.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAll()
	if err != nil {
		log.Printf("Error getting all reviews: %v", err)
		return respondError(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}

// HandleGetReviewByID retrieves a single review.
func (h *ReviewHandler) HandleGetReviewByID(c *fiber.Ctx) error {
	review, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve review", err)
	}
	return c.JSON(review)
}

// HandleGetReviewsByGame retrieves all reviews for a game.
func (h *ReviewHandler) HandleGetReviewsByGame(c *fiber.Ctx) error {
	reviews, err := h.service.GetByGame(c.Params("gameId"))
	if err != nil {
		return respondError(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}

// HandleGetReviewsByUser retrieves all reviews written by a user.
func (h *ReviewHandler) HandleGetReviewsByUser(c *fiber.Ctx) error {
	reviews, err := h.service.GetByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}

// UpdateReviewRequest represents the request body for updating a review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// HandleUpdateReview overwrites a review's rating and comment.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	review, err := h.service.Update(c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		log.Printf("Error updating review %s: %v", c.Params("id"), err)
		return respondError(c, "Could not update review", err)
	}
	return c.JSON(review)
}

// HandleDeleteReview removes a review.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, "Could not delete review", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
