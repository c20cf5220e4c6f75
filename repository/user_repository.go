package repository

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	if err := r.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create relies on the unique index on email; duplicates come back as
// gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// PromoteToAdmin sets role="admin" and reports how many rows changed.
func (r *UserRepository) PromoteToAdmin(id uint) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", "admin")
	return res.RowsAffected, res.Error
}

func (r *UserRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.User{}, id)
	return res.RowsAffected, res.Error
}
