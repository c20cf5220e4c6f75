package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
)

// UserService handles registration and the admin role checks.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

// Register inserts the user and reports whether the email was already taken.
// Duplicate detection rides on the unique index, not a racy pre-check.
func (s *UserService) Register(user *entity.User) (bool, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	err := s.userRepo.Create(user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	return false, err
}

// IsAdmin reports whether the stored record for email carries the admin role.
// An unknown email is simply not an admin.
func (s *UserService) IsAdmin(email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == "admin", nil
}

func (s *UserService) List() ([]entity.User, error) {
	return s.userRepo.FindAll()
}

func (s *UserService) PromoteToAdmin(id uint) (int64, error) {
	return s.userRepo.PromoteToAdmin(id)
}

func (s *UserService) Delete(id uint) (int64, error) {
	return s.userRepo.DeleteByID(id)
}
