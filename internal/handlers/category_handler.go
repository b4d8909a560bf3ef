package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yildirimsamet/simplestorage/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
	validate        *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validate:        validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only category routes. It must run
// before the protected group is created so reads stay open.
func (h *CategoryHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetAll)
}

// RegisterProtectedRoutes registers the category write routes.
func (h *CategoryHandler) RegisterProtectedRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", h.HandleCreate)
	categoryRoutes.Put("/:id", h.HandleUpdate)
	categoryRoutes.Delete("/:id", h.HandleDelete)
}

// CategoryRequest represents the request body for creating or renaming a
// category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// HandleGetAll returns every category.
func (h *CategoryHandler) HandleGetAll(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", categories)
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "", category)
}

// HandleUpdate renames a category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid category id")
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	category, err := h.categoryService.UpdateCategory(uint(id), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", category)
}

// HandleDelete removes a category; deletion is refused while products still
// reference it.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid category id")
	}

	category, err := h.categoryService.DeleteCategory(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", category)
}
