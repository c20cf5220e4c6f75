package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/services"
	"github.com/gaurabwebdev/bistro-boss-server/utils"
)

type CartItemRequest struct {
	Email      string  `json:"email" binding:"required,email"`
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name" binding:"required"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" binding:"gte=0"`
}

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /carts?email=
// No email yields an empty list. A mismatch between query email and token
// email is the one ownership check in the system.
func (h *CartController) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.OK(c, []entity.CartItem{})
		return
	}
	if email != utils.CurrentEmail(c) {
		resp.Forbidden(c, "Forbidden Access")
		return
	}

	items, err := h.Svc.ListByOwner(email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /carts
func (h *CartController) Add(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	}
	if err := h.Svc.Add(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"insertedId": item.ID})
}

// DELETE /carts/:id
func (h *CartController) Remove(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	n, err := h.Svc.Remove(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deletedCount": n})
}
