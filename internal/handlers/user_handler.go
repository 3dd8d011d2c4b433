package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamestore/internal/services"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/by-username/:username", h.HandleGetUserByUsername)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Get("/:userId/owned-games", h.HandleGetOwnedGames)
	userRoutes.Post("/:userId/owned-games/:gameId", h.HandleAddOwnedGame)
	userRoutes.Delete("/:userId/owned-games/:gameId", h.HandleRemoveOwnedGame)
	userRoutes.Post("/:id/balance", h.HandleTopUpBalance)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAll()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// HandleGetUserByUsername retrieves a single user by exact username.
func (h *UserHandler) HandleGetUserByUsername(c *fiber.Ctx) error {
	user, err := h.service.GetByUsername(c.Params("username"))
	if err != nil {
		return respondError(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// HandleGetOwnedGames retrieves the user's owned-games set.
func (h *UserHandler) HandleGetOwnedGames(c *fiber.Ctx) error {
	games, err := h.service.GetOwnedGames(c.Params("userId"))
	if err != nil {
		return respondError(c, "Could not retrieve owned games", err)
	}
	return c.JSON(games)
}

// HandleAddOwnedGame grants a game to a user.
func (h *UserHandler) HandleAddOwnedGame(c *fiber.Ctx) error {
	user, err := h.service.AddOwnedGame(c.Params("userId"), c.Params("gameId"))
	if err != nil {
		return respondError(c, "Could not add owned game", err)
	}
	return c.JSON(user)
}

// HandleRemoveOwnedGame revokes a game from a user.
func (h *UserHandler) HandleRemoveOwnedGame(c *fiber.Ctx) error {
	user, err := h.service.RemoveOwnedGame(c.Params("userId"), c.Params("gameId"))
	if err != nil {
		return respondError(c, "Could not remove owned game", err)
	}
	return c.JSON(user)
}

// TopUpRequest represents the request body for a balance top-up.
type TopUpRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

// HandleTopUpBalance credits the user's balance.
func (h *UserHandler) HandleTopUpBalance(c *fiber.Ctx) error {
	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user, err := h.service.TopUpBalance(c.Params("id"), req.AmountCents)
	if err != nil {
		log.Printf("Error topping up balance for user %s: %v", c.Params("id"), err)
		return respondError(c, "Could not top up balance", err)
	}
	return c.JSON(user)
}
