package services

import (
	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo  repositories.CategoryRepository
	cache SearchCache
	mq    EventPublisher
}

// NewCategoryService creates a new CategoryService. cache and mq may be nil.
func NewCategoryService(repo repositories.CategoryRepository, cache SearchCache, mq EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, mq: mq}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory creates a new uniquely-named category.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "category.created", category)
	return category, nil
}

// UpdateCategory renames a category.
func (s *CategoryService) UpdateCategory(id uint, name string) (*models.Category, error) {
	category, err := s.repo.Update(id, name)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "category.updated", category)
	return category, nil
}

// DeleteCategory removes a category; it fails with Conflict while any
// product still references it.
func (s *CategoryService) DeleteCategory(id uint) (*models.Category, error) {
	category, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "category.deleted", category)
	return category, nil
}
