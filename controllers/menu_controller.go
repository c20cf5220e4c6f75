package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/services"
)

type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Price    float64 `json:"price" binding:"gte=0"`
}

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu (admin only)
func (h *MenuController) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.Menu{
		Name:     req.Name,
		Category: req.Category,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Price:    req.Price,
	}
	if err := h.Svc.Add(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"insertedId": item.ID})
}

// DELETE /menu/:id (admin only)
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	n, err := h.Svc.Delete(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deletedCount": n})
}
