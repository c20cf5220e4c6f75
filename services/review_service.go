package services

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: repo}
}

func (s *ReviewService) List() ([]entity.Review, error) {
	return s.reviewRepo.FindAll()
}
