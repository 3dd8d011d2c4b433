package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamestore/internal/services"
)

// TagHandler handles HTTP requests for catalog tags.
type TagHandler struct {
	service  *services.TagService
	validate *validator.Validate
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the tag routes with the Fiber app.
func (h *TagHandler) RegisterRoutes(router fiber.Router) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Post("/", h.HandleCreateTag)
	tagRoutes.Get("/", h.HandleGetTags)
	tagRoutes.Get("/:id", h.HandleGetTagByID)
	tagRoutes.Delete("/:id", h.HandleDeleteTag)
}

// CreateTagRequest represents the request body for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// HandleCreateTag creates a new tag.
func (h *TagHandler) HandleCreateTag(c *fiber.Ctx) error {
	var req CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	tag, err := h.service.Create(req.Name)
	if err != nil {
		log.Printf("Error creating tag %q: %v", req.Name, err)
		return respondError(c, "Could not create tag", err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// HandleGetTags retrieves all tags.
func (h *TagHandler) HandleGetTags(c *fiber.Ctx) error {
	tags, err := h.service.GetAll()
	if err != nil {
		log.Printf("Error getting all tags: %v", err)
		return respondError(c, "Could not retrieve tags", err)
	}
	return c.JSON(tags)
}

// HandleGetTagByID retrieves a single tag.
func (h *TagHandler) HandleGetTagByID(c *fiber.Ctx) error {
	tag, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve tag", err)
	}
	return c.JSON(tag)
}

// HandleDeleteTag deletes a tag. Games referencing the tag do not block it.
func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		log.Printf("Error deleting tag %s: %v", id, err)
		return respondError(c, "Could not delete tag", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
