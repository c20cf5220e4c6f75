package repository

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindByEmail returns the owner's pending cart lines. An owner with no rows
// gets an empty slice, not an error.
func (r *CartRepository) FindByEmail(email string) ([]entity.CartItem, error) {
	items := []entity.CartItem{}
	if err := r.DB.Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) Create(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

func (r *CartRepository) DeleteByID(id uint) (int64, error) {
	res := r.DB.Delete(&entity.CartItem{}, id)
	return res.RowsAffected, res.Error
}

// DeleteByIDs purges settled cart rows inside the caller's transaction.
func (r *CartRepository) DeleteByIDs(tx *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := tx.Where("id IN ?", ids).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
