package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamestore/internal/services"
)

// GameHandler handles HTTP requests for the game catalog.
type GameHandler struct {
	service  *services.GameService
	validate *validator.Validate
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service *services.GameService) *GameHandler {
	return &GameHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the game routes with the Fiber app.
func (h *GameHandler) RegisterRoutes(router fiber.Router) {
	gameRoutes := router.Group("/games")
	gameRoutes.Post("/", h.HandleCreateGame)
	gameRoutes.Get("/", h.HandleGetGames)
	gameRoutes.Get("/search/name", h.HandleSearchByName)
	gameRoutes.Get("/search/tags", h.HandleSearchByTags)
	gameRoutes.Get("/:id", h.HandleGetGameByID)
	gameRoutes.Delete("/:id", h.HandleDeleteGame)
	gameRoutes.Post("/:gameId/tags/:tagId", h.HandleAddTag)
	gameRoutes.Delete("/:gameId/tags/:tagId", h.HandleRemoveTag)
}

// CreateGameRequest represents the request body for creating a game.
type CreateGameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// HandleCreateGame creates a new catalog game.
func (h *GameHandler) HandleCreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	game, err := h.service.Create(req.Name)
	if err != nil {
		log.Printf("Error creating game %q: %v", req.Name, err)
		return respondError(c, "Could not create game", err)
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// HandleGetGames retrieves the full catalog.
func (h *GameHandler) HandleGetGames(c *fiber.Ctx) error {
	games, err := h.service.GetAll()
	if err != nil {
		log.Printf("Error getting all games: %v", err)
		return respondError(c, "Could not retrieve games", err)
	}
	return c.JSON(games)
}

// HandleGetGameByID retrieves a single game.
func (h *GameHandler) HandleGetGameByID(c *fiber.Ctx) error {
	id := c.Params("id")
	game, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, "Could not retrieve game", err)
	}
	return c.JSON(game)
}

// HandleDeleteGame deletes a game unless purchases or reviews reference it.
func (h *GameHandler) HandleDeleteGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting game %s: %v", id, err)
		return respondError(c, "Could not delete game", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearchByName searches games by case-insensitive name fragment.
func (h *GameHandler) HandleSearchByName(c *fiber.Ctx) error {
	games, err := h.service.SearchByName(c.Query("name"))
	if err != nil {
		log.Printf("Error searching games by name: %v", err)
		return respondError(c, "Could not search games", err)
	}
	return c.JSON(games)
}

// HandleSearchByTags searches games holding any of the comma-separated
// tags.
func (h *GameHandler) HandleSearchByTags(c *fiber.Ctx) error {
	var tags []string
	if raw := c.Query("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	games, err := h.service.SearchByTags(tags)
	if err != nil {
		log.Printf("Error searching games by tags: %v", err)
		return respondError(c, "Could not search games", err)
	}
	return c.JSON(games)
}

// HandleAddTag attaches a tag to a game.
func (h *GameHandler) HandleAddTag(c *fiber.Ctx) error {
	game, err := h.service.AddTag(c.Params("gameId"), c.Params("tagId"))
	if err != nil {
		return respondError(c, "Could not add tag to game", err)
	}
	return c.JSON(game)
}

// HandleRemoveTag detaches a tag from a game.
func (h *GameHandler) HandleRemoveTag(c *fiber.Ctx) error {
	game, err := h.service.RemoveTag(c.Params("gameId"), c.Params("tagId"))
	if err != nil {
		return respondError(c, "Could not remove tag from game", err)
	}
	return c.JSON(game)
}
