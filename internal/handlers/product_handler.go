package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/services"
	"github.com/yildirimsamet/simplestorage/pkg/upload"
)

// ProductHandler handles HTTP requests for products and their variants.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
	uploadDir      string
}

// NewProductHandler creates a new ProductHandler. uploadDir is where product
// images are stored.
func NewProductHandler(productService *services.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
		uploadDir:      uploadDir,
	}
}

// RegisterPublicRoutes registers the read and search routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetAll)
	router.Get("/products/search", h.HandleSearch)
	router.Get("/products/:id", h.HandleGetByID)
}

// RegisterProtectedRoutes registers the product and variant write routes.
func (h *ProductHandler) RegisterProtectedRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
	productRoutes.Post("/:id/sizes", h.HandleAddSize)
	productRoutes.Put("/:id/sizes/:sizeId", h.HandleUpdateSize)
	productRoutes.Delete("/:id/sizes/:sizeId", h.HandleDeleteSize)
}

// AddSizeRequest represents the request body for attaching a variant.
type AddSizeRequest struct {
	SizeID uint    `json:"size_id" validate:"required"`
	Price  float64 `json:"price" validate:"gte=0"`
	Stock  int     `json:"stock" validate:"gte=0"`
}

// UpdateSizeVariantRequest represents a partial variant patch.
type UpdateSizeVariantRequest struct {
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock *int     `json:"stock" validate:"omitempty,gte=0"`
}

// UpdateProductRequest represents a partial product patch.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	CategoryID  *uint   `json:"category_id"`
}

// HandleGetAll returns every product with variants populated.
func (h *ProductHandler) HandleGetAll(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", products)
}

// HandleGetByID returns a single product with variants populated.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid product id")
	}

	product, err := h.productService.GetProductByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", product)
}

// HandleSearch returns products whose name or description contains the
// search term. An empty result is a success with an empty list.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	term := c.Query("search_query")

	products, err := h.productService.SearchProducts(term)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", products)
}

// HandleCreate creates a product from a multipart form: name, description,
// category_id fields and an optional image file.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	name := c.FormValue("name")
	description := c.FormValue("description")
	categoryID, err := strconv.ParseUint(c.FormValue("category_id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid category_id")
	}

	product := &models.Product{
		Name:        name,
		Description: description,
		CategoryID:  uint(categoryID),
	}
	if err := h.validate.Struct(product); err != nil {
		return respondValidationError(c, err)
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		filename, err := upload.SaveImage(fh, h.uploadDir)
		if err != nil {
			if errors.Is(err, upload.ErrInvalidType) || errors.Is(err, upload.ErrTooLarge) {
				return respondBadRequest(c, err.Error())
			}
			log.Printf("Failed to store product image: %v", err)
			return respondError(c, err)
		}
		product.Image = filename
	}

	if err := h.productService.CreateProduct(product); err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "", product)
}

// HandleUpdate patches product fields.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid product id")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	product, err := h.productService.UpdateProduct(uint(id), req.Name, nil, req.Description, req.CategoryID)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", product)
}

// HandleDelete removes a product and its variants.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid product id")
	}

	product, err := h.productService.DeleteProduct(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", product)
}

// HandleAddSize attaches a variant to a product.
func (h *ProductHandler) HandleAddSize(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid product id")
	}

	var req AddSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	product, err := h.productService.AddSizeToProduct(uint(id), req.SizeID, req.Price, req.Stock)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusCreated, "", product)
}

// HandleUpdateSize patches one variant's price and/or stock.
func (h *ProductHandler) HandleUpdateSize(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid product id")
	}
	sizeID, err := strconv.ParseUint(c.Params("sizeId"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid size id")
	}

	var req UpdateSizeVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	product, err := h.productService.UpdateProductSize(uint(id), uint(sizeID), req.Price, req.Stock)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", product)
}

// HandleDeleteSize detaches a variant from a product.
func (h *ProductHandler) HandleDeleteSize(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid product id")
	}
	sizeID, err := strconv.ParseUint(c.Params("sizeId"), 10, 32)
	if err != nil {
		return respondBadRequest(c, "invalid size id")
	}

	product, err := h.productService.DeleteSizeFromProduct(uint(id), uint(sizeID))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, fiber.StatusOK, "", product)
}
