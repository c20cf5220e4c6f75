package services

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
)

type CartService struct {
	cartRepo *repository.CartRepository
}

func NewCartService(repo *repository.CartRepository) *CartService {
	return &CartService{cartRepo: repo}
}

func (s *CartService) ListByOwner(email string) ([]entity.CartItem, error) {
	return s.cartRepo.FindByEmail(email)
}

func (s *CartService) Add(item *entity.CartItem) error {
	return s.cartRepo.Create(item)
}

func (s *CartService) Remove(id uint) (int64, error) {
	return s.cartRepo.DeleteByID(id)
}
