package entity

import (
	"gorm.io/gorm"
)

// Review is read-only through the API; rows are loaded by operators.
type Review struct {
	gorm.Model
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
