package repositories

import "github.com/yildirimsamet/simplestorage/internal/models"

// SizeRepository defines the interface for size data access.
type SizeRepository interface {
	GetAll() ([]models.Size, error)
	GetByID(id uint) (*models.Size, error)
	// Create inserts a size. When size.DisplayOrder is zero the store assigns
	// the next free rank (current max + 1).
	Create(size *models.Size) error
	// Update applies a partial patch. A display-order change that collides
	// with another size swaps the two ranks so the uniqueness invariant
	// holds after every successful update.
	Update(id uint, name *string, displayOrder *int) (*models.Size, error)
	Delete(id uint) (*models.Size, error)
}
