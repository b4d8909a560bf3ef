package repositories

import "github.com/yildirimsamet/simplestorage/internal/models"

// ProductRepository defines the interface for product and variant data access.
// Every returned product has its variants eagerly populated, each with the
// size display name resolved.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	// Search matches the term case-insensitively against name or description.
	Search(term string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(id uint, name, image, description *string, categoryID *uint) (*models.Product, error)
	// Delete removes the product; its variants are cascade-deleted.
	Delete(id uint) (*models.Product, error)
	// AddSize attaches a variant for (productID, variant.SizeID). A second
	// variant for the same pair fails with Conflict.
	AddSize(productID uint, variant *models.ProductSize) (*models.Product, error)
	// UpdateSize patches price and/or stock of one variant; omitted fields
	// are unchanged.
	UpdateSize(productID, sizeID uint, price *float64, stock *int) (*models.Product, error)
	DeleteSize(productID, sizeID uint) (*models.Product, error)
}
