package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/pkg/resp"
	"github.com/gaurabwebdev/bistro-boss-server/services"
)

type PaymentRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	TransactionID  string  `json:"transactionId" binding:"required"`
	Amount         float64 `json:"amount" binding:"gte=0"`
	Status         string  `json:"status"`
	CartProductIDs []uint  `json:"cartProductsId"`
	MenuItemIDs    []uint  `json:"menuItemsId"`
}

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /create-payment-content
// Asks the gateway for an intent over the cart total; the charge itself is
// confirmed client-side with the returned secret.
func (h *PaymentController) CreateIntent(c *gin.Context) {
	var body struct {
		TotalPrice float64 `json:"totalPrice" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	secret, err := h.Svc.CreateIntent(body.TotalPrice)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"clientSecret": secret})
}

// POST /payment
// Records the confirmed charge and purges the settled cart rows in one
// transaction.
func (h *PaymentController) Record(c *gin.Context) {
	var body struct {
		Payment PaymentRequest `json:"payment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p := entity.Payment{
		Email:          body.Payment.Email,
		TransactionID:  body.Payment.TransactionID,
		Amount:         body.Payment.Amount,
		Status:         body.Payment.Status,
		CartProductIDs: body.Payment.CartProductIDs,
		MenuItemIDs:    body.Payment.MenuItemIDs,
	}
	deleted, err := h.Svc.Record(&p)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"insertedId": p.ID, "deletedCount": deleted})
}
