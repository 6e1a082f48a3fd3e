package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine is a snapshot of the dish at order time. Name and price are
// copied, never joined back to the live Dish row, so past orders stay
// accurate after menu edits.
type OrderLine struct {
	gorm.Model
	Name      string          `json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"lineTotal"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
}
