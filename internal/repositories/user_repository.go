package repositories

import "github.com/yildirimsamet/simplestorage/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Exists(email, username string) (bool, error)
}
