package repository

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

// Create inserts inside the caller's transaction so the cart purge can be
// committed or rolled back together with the payment row.
func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}
