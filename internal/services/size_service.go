package services

import (
	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/repositories"
)

// SizeService handles business logic related to sizes and their display order.
type SizeService struct {
	repo  repositories.SizeRepository
	cache SearchCache
	mq    EventPublisher
}

// NewSizeService creates a new SizeService. cache and mq may be nil.
func NewSizeService(repo repositories.SizeRepository, cache SearchCache, mq EventPublisher) *SizeService {
	return &SizeService{repo: repo, cache: cache, mq: mq}
}

// GetSizes retrieves all sizes in display order.
func (s *SizeService) GetSizes() ([]models.Size, error) {
	return s.repo.GetAll()
}

// CreateSize creates a size; the store assigns the next display rank when
// displayOrder is zero.
func (s *SizeService) CreateSize(name string, displayOrder int) (*models.Size, error) {
	size := &models.Size{Name: name, DisplayOrder: displayOrder}
	if err := s.repo.Create(size); err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "size.created", size)
	return size, nil
}

// UpdateSize patches a size's name and/or display rank. Rank collisions swap
// with the size holding the target rank.
func (s *SizeService) UpdateSize(id uint, name *string, displayOrder *int) (*models.Size, error) {
	size, err := s.repo.Update(id, name, displayOrder)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "size.updated", size)
	return size, nil
}

// DeleteSize removes a size; it fails with Conflict while any product
// variant still references it.
func (s *SizeService) DeleteSize(id uint) (*models.Size, error) {
	size, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	invalidateSearchCache(s.cache)
	publishEvent(s.mq, "size.deleted", size)
	return size, nil
}
