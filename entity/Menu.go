package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
}
