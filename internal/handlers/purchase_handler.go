package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamestore/internal/services"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	service  *services.PurchaseService
	validate *validator.Validate
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the purchase routes with the Fiber app.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router) {
	purchaseRoutes := router.Group("/purchases")
	purchaseRoutes.Post("/user/:userId/game/:gameId", h.HandleCreatePurchase)
	purchaseRoutes.Get("/user/:userId", h.HandleGetPurchasesByUser)
}

// CreatePurchaseRequest represents the request body for a purchase.
type CreatePurchaseRequest struct {
	PriceCents int64 `json:"price_cents" validate:"gte=0"`
}

// HandleCreatePurchase executes a purchase of the game by the user.
func (h *PurchaseHandler) HandleCreatePurchase(c *fiber.Ctx) error {
	var req CreatePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	purchase, err := h.service.Create(c.Params("userId"), c.Params("gameId"), req.PriceCents)
	if err != nil {
		log.Printf("Error purchasing game %s for user %s: %v", c.Params("gameId"), c.Params("userId"), err)
		return respondError(c, "Could not complete purchase", err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// HandleGetPurchasesByUser retrieves the user's purchase history.
func (h *PurchaseHandler) HandleGetPurchasesByUser(c *fiber.Ctx) error {
	purchases, err := h.service.GetByUser(c.Params("userId"))
	if err != nil {
		return respondError(c, "Could not retrieve purchases", err)
	}
	return c.JSON(purchases)
}
