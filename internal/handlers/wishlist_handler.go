package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"gamestore/internal/models"
	"gamestore/internal/services"
)

// WishlistHandler handles HTTP requests for wishlists. Wishlists are
// auto-provisioned by the service, so there is no create endpoint.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app. The
// /user routes must precede /:id so "user" is not taken as an ID.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlists")
	wishlistRoutes.Get("/user/:userId", h.HandleGetByUser)
	wishlistRoutes.Get("/user/:userId/games", h.HandleGetGames)
	wishlistRoutes.Post("/user/:userId/games/:gameId", h.HandleAddGame)
	wishlistRoutes.Delete("/user/:userId/games/:gameId", h.HandleRemoveGame)
	wishlistRoutes.Get("/:id", h.HandleGetByID)
	wishlistRoutes.Delete("/:id", h.HandleDelete)
}

// HandleGetByUser retrieves (and lazily creates) the user's wishlist.
func (h *WishlistHandler) HandleGetByUser(c *fiber.Ctx) error {
	wishlist, err := h.service.GetOrCreateByUserID(c.Params("userId"))
	if err != nil {
		return respondError(c, "Could not retrieve wishlist", err)
	}
	return c.JSON(wishlist)
}

// HandleGetGames retrieves just the games on the user's wishlist.
func (h *WishlistHandler) HandleGetGames(c *fiber.Ctx) error {
	games, err := h.service.GetGames(c.Params("userId"))
	if err != nil {
		return respondError(c, "Could not retrieve wishlist games", err)
	}
	if games == nil {
		games = []*models.Game{}
	}
	return c.JSON(games)
}

// HandleAddGame puts a game on the user's wishlist.
func (h *WishlistHandler) HandleAddGame(c *fiber.Ctx) error {
	wishlist, err := h.service.AddGame(c.Params("userId"), c.Params("gameId"))
	if err != nil {
		log.Printf("Error adding game %s to wishlist of user %s: %v", c.Params("gameId"), c.Params("userId"), err)
		return respondError(c, "Could not add game to wishlist", err)
	}
	return c.JSON(wishlist)
}

// HandleRemoveGame takes a game off the user's wishlist.
func (h *WishlistHandler) HandleRemoveGame(c *fiber.Ctx) error {
	wishlist, err := h.service.RemoveGame(c.Params("userId"), c.Params("gameId"))
	if err != nil {
		log.Printf("Error removing game %s from wishlist of user %s: %v", c.Params("gameId"), c.Params("userId"), err)
		return respondError(c, "Could not remove game from wishlist", err)
	}
	return c.JSON(wishlist)
}

// HandleGetByID retrieves a wishlist by its own ID.
func (h *WishlistHandler) HandleGetByID(c *fiber.Ctx) error {
	wishlist, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve wishlist", err)
	}
	return c.JSON(wishlist)
}

// HandleDelete removes a wishlist.
func (h *WishlistHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, "Could not delete wishlist", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
