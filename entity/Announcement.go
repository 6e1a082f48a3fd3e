package entity

import (
	"gorm.io/gorm"
)

type Announcement struct {
	gorm.Model
	Title  string `json:"title"`
	Body   string `json:"body"`
	Active bool   `gorm:"default:true" json:"active"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
