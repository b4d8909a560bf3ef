package services

import (
	"github.com/yildirimsamet/simplestorage/internal/apperrors"
	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/repositories"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser registers a new account with a hashed password. The pre-check is
// a convenience; the unique indexes settle concurrent registrations.
func (s *UserService) CreateUser(username, email, password string, isAdmin bool) (*models.User, error) {
	exists, err := s.userRepo.Exists(email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("user already exists")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsAdmin:  isAdmin,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByUsername retrieves a single user by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}
