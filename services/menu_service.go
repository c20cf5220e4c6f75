package services

import (
	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
)

type MenuService struct {
	menuRepo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: repo}
}

func (s *MenuService) List() ([]entity.Menu, error) {
	return s.menuRepo.FindAll()
}

func (s *MenuService) Add(item *entity.Menu) error {
	return s.menuRepo.Create(item)
}

func (s *MenuService) Delete(id uint) (int64, error) {
	return s.menuRepo.DeleteByID(id)
}
