package services

import (
	"log"
	"strings"

	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/repositories"
)

// ProductService handles business logic related to products and their
// variants. Search results go through the cache-aside SearchCache; every
// mutation invalidates the whole search namespace and publishes a catalog
// event. Both side channels are best-effort.
type ProductService struct {
	repo  repositories.ProductRepository
	cache SearchCache
	mq    EventPublisher
}

// NewProductService creates a new ProductService. cache and mq may be nil.
func NewProductService(repo repositories.ProductRepository, cache SearchCache, mq EventPublisher) *ProductService {
	return &ProductService{repo: repo, cache: cache, mq: mq}
}

// GetAllProducts retrieves every product with its variants populated.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product with its variants populated.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// SearchProducts matches the term case-insensitively against name or
// description, consulting the cache first. Correctness is identical with or
// without the cache; a cache fault degrades to a store query.
func (s *ProductService) SearchProducts(term string) ([]models.Product, error) {
	normalized := strings.ToLower(strings.TrimSpace(term))

	if s.cache != nil {
		cached, found, err := s.cache.GetSearch(normalized)
		if err != nil {
			log.Printf("Warning: search cache read failed: %v", err)
		} else if found {
			return cached, nil
		}
	}

	products, err := s.repo.Search(normalized)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.PutSearch(normalized, products); err != nil {
			log.Printf("Warning: search cache write failed: %v", err)
		}
	}
	return products, nil
}

// CreateProduct creates a product with no variants. The category reference
// is not pre-validated; the store's foreign key decides.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "product.created", product)
	return nil
}

// UpdateProduct patches the supplied product fields.
func (s *ProductService) UpdateProduct(id uint, name, image, description *string, categoryID *uint) (*models.Product, error) {
	product, err := s.repo.Update(id, name, image, description, categoryID)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "product.updated", product)
	return product, nil
}

// DeleteProduct removes a product and, through the cascade, its variants.
func (s *ProductService) DeleteProduct(id uint) (*models.Product, error) {
	product, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "product.deleted", product)
	return product, nil
}

// AddSizeToProduct attaches a variant and returns the refreshed product.
func (s *ProductService) AddSizeToProduct(productID, sizeID uint, price float64, stock int) (*models.Product, error) {
	variant := &models.ProductSize{SizeID: sizeID, Price: price, Stock: stock}
	product, err := s.repo.AddSize(productID, variant)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "product_size.created", product)
	return product, nil
}

// UpdateProductSize patches price and/or stock of one variant; omitted
// fields are unchanged.
func (s *ProductService) UpdateProductSize(productID, sizeID uint, price *float64, stock *int) (*models.Product, error) {
	product, err := s.repo.UpdateSize(productID, sizeID, price, stock)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "product_size.updated", product)
	return product, nil
}

// DeleteSizeFromProduct removes one variant and returns the refreshed product.
func (s *ProductService) DeleteSizeFromProduct(productID, sizeID uint) (*models.Product, error) {
	product, err := s.repo.DeleteSize(productID, sizeID)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "product_size.deleted", product)
	return product, nil
}
