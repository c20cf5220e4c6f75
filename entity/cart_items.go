package entity

import (
	"gorm.io/gorm"
)

// CartItem is a pending, unpurchased product line. Ownership is the email
// asserted by the caller's token, not a foreign key to users.
type CartItem struct {
	gorm.Model
	Email      string  `gorm:"index;not null" json:"email"`
	MenuItemID uint    `json:"menuItemId"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}
