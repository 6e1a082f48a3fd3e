package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TableNumber int `json:"tableNumber"`

	Subtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Status OrderStatus `gorm:"type:varchar(16);not null" json:"status"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// nil until the customer registers; guest orders are grouped by session only
	CustomerID *uint     `json:"customerId"`
	Customer   *Customer `json:"-"`

	GuestSessionID string `gorm:"index" json:"guestSessionId"`

	Lines []OrderLine `json:"lines"`
}
