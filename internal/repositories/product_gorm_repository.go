package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yildirimsamet/simplestorage/internal/apperrors"
	"github.com/yildirimsamet/simplestorage/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// withVariants eager-loads variants and their sizes in a fixed order, so a
// product and its full variant set come back in a bounded number of queries.
func withVariants(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sizes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("product_sizes.id")
		}).
		Preload("Sizes.Size")
}

// resolveSizeNames copies each preloaded size name into the serialized field
// and normalizes a nil variant slice to an empty one.
func resolveSizeNames(products []models.Product) {
	for i := range products {
		if products[i].Sizes == nil {
			products[i].Sizes = []models.ProductSize{}
		}
		for j := range products[i].Sizes {
			products[i].Sizes[j].ResolveSizeName()
		}
	}
}

// GetAll retrieves every product with its variants populated.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := withVariants(r.db).Order("id").Find(&products).Error; err != nil {
		return nil, apperrors.FromDB(err, "product")
	}
	resolveSizeNames(products)
	return products, nil
}

// GetByID retrieves a single product with its variants populated.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	return r.getByID(r.db, id)
}

func (r *GORMProductRepository) getByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := withVariants(db).First(&product, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "product")
	}
	if product.Sizes == nil {
		product.Sizes = []models.ProductSize{}
	}
	for i := range product.Sizes {
		product.Sizes[i].ResolveSizeName()
	}
	return &product, nil
}

// Search matches the term case-insensitively against product name or
// description. No match yields an empty list, not an error.
func (r *GORMProductRepository) Search(term string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var products []models.Product
	err := withVariants(r.db).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, apperrors.FromDB(err, "product")
	}
	resolveSizeNames(products)
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Create inserts a new product with no variants. A duplicate name or an
// unknown category surfaces as Conflict from the store constraints; the
// category is not pre-validated here.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.FromDB(err, "product")
	}
	if product.Sizes == nil {
		product.Sizes = []models.ProductSize{}
	}
	return nil
}

// Update patches the supplied product fields and returns the refreshed product.
func (r *GORMProductRepository) Update(id uint, name, image, description *string, categoryID *uint) (*models.Product, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return err
		}

		patch := map[string]any{}
		if name != nil {
			patch["name"] = *name
		}
		if image != nil {
			patch["image"] = *image
		}
		if description != nil {
			patch["description"] = *description
		}
		if categoryID != nil {
			patch["category_id"] = *categoryID
		}
		if len(patch) == 0 {
			return nil
		}
		return tx.Model(&product).Updates(patch).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "product")
	}
	return r.GetByID(id)
}

// Delete removes a product; the CASCADE foreign key deletes its variants.
func (r *GORMProductRepository) Delete(id uint) (*models.Product, error) {
	var product *models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		product, err = r.getByID(tx, id)
		if err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "product")
	}
	return product, nil
}

// AddSize attaches a new variant to the product and returns the product with
// its variant set refreshed. The uq_product_size index rejects a duplicate
// (product, size) pair; an unknown size is rejected by the foreign key.
func (r *GORMProductRepository) AddSize(productID uint, variant *models.ProductSize) (*models.Product, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return apperrors.FromDB(err, "product")
		}
		variant.ProductID = productID
		if err := tx.Create(variant).Error; err != nil {
			return apperrors.FromDB(err, "product size")
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "product size")
	}
	return r.GetByID(productID)
}

// UpdateSize patches price and/or stock of the (productID, sizeID) variant.
func (r *GORMProductRepository) UpdateSize(productID, sizeID uint, price *float64, stock *int) (*models.Product, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return apperrors.FromDB(err, "product")
		}

		var variant models.ProductSize
		if err := tx.First(&variant, "product_id = ? AND size_id = ?", productID, sizeID).Error; err != nil {
			return apperrors.FromDB(err, "product size")
		}

		patch := map[string]any{}
		if price != nil {
			patch["price"] = *price
		}
		if stock != nil {
			patch["stock"] = *stock
		}
		if len(patch) == 0 {
			return nil
		}
		if err := tx.Model(&variant).Updates(patch).Error; err != nil {
			return apperrors.FromDB(err, "product size")
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "product size")
	}
	return r.GetByID(productID)
}

// DeleteSize detaches the (productID, sizeID) variant from the product.
func (r *GORMProductRepository) DeleteSize(productID, sizeID uint) (*models.Product, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return apperrors.FromDB(err, "product")
		}

		res := tx.Delete(&models.ProductSize{}, "product_id = ? AND size_id = ?", productID, sizeID)
		if res.Error != nil {
			return apperrors.FromDB(res.Error, "product size")
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("product size")
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "product size")
	}
	return r.GetByID(productID)
}
