package repositories

import (
	"gorm.io/gorm"

	"github.com/yildirimsamet/simplestorage/internal/apperrors"
	"github.com/yildirimsamet/simplestorage/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// Create inserts a new user. Duplicate username or email surfaces as Conflict.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperrors.FromDB(err, "user")
	}
	return nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, "user")
	}
	return &user, nil
}

// GetByUsername retrieves a user by their username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, apperrors.FromDB(err, "user")
	}
	return &user, nil
}

// Exists reports whether a user with the given email or username is already
// registered. The unique indexes remain the final arbiter under concurrency.
func (r *GORMUserRepository) Exists(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	if err != nil {
		return false, apperrors.FromDB(err, "user")
	}
	return count > 0, nil
}
