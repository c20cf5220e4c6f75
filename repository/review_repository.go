package repository

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) FindAll() ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.DB.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
