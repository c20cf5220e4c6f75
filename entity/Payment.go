package entity

import (
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Email         string  `gorm:"index" json:"email"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`

	// cart rows settled by this payment and the menu items they referenced
	CartProductIDs []uint `gorm:"serializer:json" json:"cartProductsId"`
	MenuItemIDs    []uint `gorm:"serializer:json" json:"menuItemsId"`
}
