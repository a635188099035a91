package menu

import (
	"errors"

	"menu-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the menu catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the menu routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/menu")
	group.Get("/", h.HandleListCategories)
	group.Get("/random", h.HandleRandomItem)
	group.Get("/:slug", h.HandleGetCategory)
	group.Get("/:slug/items/:item", h.HandleGetItem)
}

// HandleListCategories returns all categories sorted by their display order.
// @Summary List Categories
// @Description Get all menu categories sorted by numeric order, without items.
// @Tags menu
// @Produce json
// @Success 200 {array} models.CategoryDoc "Categories"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		l.Error("Category listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleGetCategory returns one category with its items.
// @Summary Get Category
// @Description Get a single category by slug, including its items.
// @Tags menu
// @Produce json
// @Param slug path string true "Category Slug (e.g. 'salads')"
// @Success 200 {object} models.CategoryWithItems "Category"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{slug} [get]
func (h *Handler) HandleGetCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")
	l := logger.WithRayID(h.service.logger, c)

	category, err := h.service.GetCategory(c.Context(), slug)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "category not found",
		})
	}
	if err != nil {
		l.Error("Category lookup failed", zap.String("slug", slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(category)
}

// HandleGetItem returns a single item of a category.
// @Summary Get Item
// @Description Get a single menu item by category and item slug.
// @Tags menu
// @Produce json
// @Param slug path string true "Category Slug"
// @Param item path string true "Item Slug"
// @Success 200 {object} models.Item "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{slug}/items/{item} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	slug := c.Params("slug")
	itemSlug := c.Params("item")
	l := logger.WithRayID(h.service.logger, c)

	item, err := h.service.GetItem(c.Context(), slug, itemSlug)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "item not found",
		})
	}
	if err != nil {
		l.Error("Item lookup failed",
			zap.String("slug", slug),
			zap.String("item", itemSlug),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(item)
}

// HandleRandomItem returns one random item from the catalog.
// @Summary Random Item
// @Description Get one random non-deleted menu item.
// @Tags menu
// @Produce json
// @Success 200 {object} models.Item "Item"
// @Failure 404 {object} map[string]string "Empty Catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/random [get]
func (h *Handler) HandleRandomItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	item, err := h.service.RandomItem(c.Context())
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "catalog is empty",
		})
	}
	if err != nil {
		l.Error("Random item failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(item)
}
