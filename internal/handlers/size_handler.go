package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yildirimsamet/simplestorage/internal/services"
)

// SizeHandler handles HTTP requests for sizes.
type SizeHandler struct {
	sizeService *services.SizeService
	validate    *validator.Validate
}

// NewSizeHandler creates a new SizeHandler.
func NewSizeHandler(sizeService *services.SizeService) *SizeHandler {
	return &SizeHandler{
		sizeService: sizeService,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only size routes.
func (h *SizeHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/sizes", h.HandleGetAll)
}

// RegisterProtectedRoutes registers the size write routes.
func (h *SizeHandler) RegisterProtectedRoutes(router fiber.Router) {
	sizeRoutes := router.Group("/sizes")
	sizeRoutes.Post("/", h.HandleCreate)
	sizeRoutes.Put("/:id", h.HandleUpdate)
	sizeRoutes.Delete("/:id", h.HandleDelete)
}

// CreateSizeRequest represents the request body for creating a size. A zero
// display order lets the store pick the next rank.
type CreateSizeRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// UpdateSizeRequest represents a partial size patch.
type UpdateSizeRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	DisplayOrder *int    `json:"display_order"`
}

// HandleGetAll returns every size in display order.
func (h *SizeHandler) HandleGetAll(c *fiber.Ctx) error {
	sizes, err := h.sizeService.GetSizes()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", sizes)
}

// HandleCreate creates a new size.
func (h *SizeHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	size, err := h.sizeService.CreateSize(req.Name, req.DisplayOrder)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "", size)
}

// HandleUpdate patches a size's name and/or display rank.
func (h *SizeHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid size id")
	}

	var req UpdateSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	size, err := h.sizeService.UpdateSize(uint(id), req.Name, req.DisplayOrder)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", size)
}

// HandleDelete removes a size; deletion is refused while product variants
// still reference it.
func (h *SizeHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid size id")
	}

	size, err := h.sizeService.DeleteSize(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", size)
}
