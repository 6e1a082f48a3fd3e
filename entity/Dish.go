package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// orders keep their own snapshots; this relation is never preloaded
	OrderLines []OrderLine `json:"-"`
}
