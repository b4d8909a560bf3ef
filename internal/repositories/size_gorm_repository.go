package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yildirimsamet/simplestorage/internal/apperrors"
	"github.com/yildirimsamet/simplestorage/internal/models"
)

// GORMSizeRepository is a GORM implementation of SizeRepository.
type GORMSizeRepository struct {
	db *gorm.DB
}

// NewGORMSizeRepository creates a new instance of GORMSizeRepository.
func NewGORMSizeRepository(db *gorm.DB) *GORMSizeRepository {
	return &GORMSizeRepository{db: db}
}

// GetAll retrieves all sizes ordered by display rank.
func (r *GORMSizeRepository) GetAll() ([]models.Size, error) {
	var sizes []models.Size
	if err := r.db.Order("display_order").Find(&sizes).Error; err != nil {
		return nil, apperrors.FromDB(err, "size")
	}
	return sizes, nil
}

// GetByID retrieves a single size by its ID.
func (r *GORMSizeRepository) GetByID(id uint) (*models.Size, error) {
	var size models.Size
	if err := r.db.First(&size, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "size")
	}
	return &size, nil
}

// Create inserts a new size, assigning the next display rank when none was
// given. Concurrent creates racing for the same rank are settled by the
// unique index: one commits, the other fails with Conflict.
func (r *GORMSizeRepository) Create(size *models.Size) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if size.DisplayOrder == 0 {
			var max int
			row := tx.Model(&models.Size{}).Select("COALESCE(MAX(display_order), 0)").Row()
			if err := row.Scan(&max); err != nil {
				return err
			}
			size.DisplayOrder = max + 1
		}
		return tx.Create(size).Error
	})
	if err != nil {
		return apperrors.FromDB(err, "size")
	}
	return nil
}

// Update patches name and/or display order. When the target rank is held by
// another size the two ranks are swapped: the other size is parked on a
// temporary negative rank so the unique index stays satisfied between the
// updates, then takes over this size's old rank. A free target rank is simply
// taken; gaps left by deletes are not compacted.
func (r *GORMSizeRepository) Update(id uint, name *string, displayOrder *int) (*models.Size, error) {
	var size models.Size
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&size, "id = ?", id).Error; err != nil {
			return err
		}

		if displayOrder != nil && *displayOrder != size.DisplayOrder {
			target := *displayOrder
			oldOrder := size.DisplayOrder

			var other models.Size
			err := tx.First(&other, "display_order = ? AND id <> ?", target, size.ID).Error
			switch {
			case err == nil:
				if err := tx.Model(&other).Update("display_order", -int(other.ID)).Error; err != nil {
					return err
				}
				if err := tx.Model(&size).Update("display_order", target).Error; err != nil {
					return err
				}
				if err := tx.Model(&other).Update("display_order", oldOrder).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Model(&size).Update("display_order", target).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}

		if name != nil {
			if err := tx.Model(&size).Update("name", *name).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "size")
	}
	return &size, nil
}

// Delete removes a size. The RESTRICT foreign key on product variants rejects
// the delete with Conflict while the size is still in use.
func (r *GORMSizeRepository) Delete(id uint) (*models.Size, error) {
	var size models.Size
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&size, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&size).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "size")
	}
	return &size, nil
}
