package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/services"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /reviews
func (h *ReviewController) List(c *gin.Context) {
	reviews, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}
