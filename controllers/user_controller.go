package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/services"
	"github.com/gaurabwebdev/bistro-boss-server/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /users (admin only)
func (h *UserController) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /users
// Self-registration. A duplicate email is answered with a plain message, not
// an error; the frontend treats returning users the same as new ones.
func (h *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user := entity.User{Email: req.Email, Name: req.Name, PhotoURL: req.PhotoURL}
	exists, err := h.Svc.Register(&user)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if exists {
		resp.OK(c, gin.H{"message": "User Already Exist"})
		return
	}
	resp.OK(c, gin.H{"insertedId": user.ID})
}

// GET /users/admin/:email
// Reports admin:false without a lookup when the token belongs to someone else.
func (h *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if utils.CurrentEmail(c) != email {
		resp.OK(c, gin.H{"admin": false})
		return
	}

	isAdmin, err := h.Svc.IsAdmin(email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"admin": isAdmin})
}

// PATCH /users/admin/:id
func (h *UserController) PromoteToAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}

	n, err := h.Svc.PromoteToAdmin(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"modifiedCount": n})
}

// DELETE /users/:id
func (h *UserController) Delete(c *gin.Context) {
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
