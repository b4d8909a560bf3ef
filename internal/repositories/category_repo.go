package repositories

import "github.com/yildirimsamet/simplestorage/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(id uint, name string) (*models.Category, error)
	Delete(id uint) (*models.Category, error)
}
