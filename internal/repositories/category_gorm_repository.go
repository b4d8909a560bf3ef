package repositories

import (
	"gorm.io/gorm"

	"github.com/yildirimsamet/simplestorage/internal/apperrors"
	"github.com/yildirimsamet/simplestorage/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories ordered by ID.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.FromDB(err, "category")
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "category")
	}
	return &category, nil
}

// Create inserts a new category. A duplicate name surfaces as Conflict.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return apperrors.FromDB(err, "category")
	}
	return nil
}

// Update renames a category.
func (r *GORMCategoryRepository) Update(id uint, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&category).Update("name", name).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "category")
	}
	return &category, nil
}

// Delete removes a category. The RESTRICT foreign key on products rejects the
// delete with Conflict while any product still references it.
func (r *GORMCategoryRepository) Delete(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err, "category")
	}
	return &category, nil
}
