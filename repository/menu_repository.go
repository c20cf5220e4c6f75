package repository

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	var items []entity.Menu
	if err := r.DB.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) Create(item *entity.Menu) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Menu{}, id)
	return res.RowsAffected, res.Error
}
