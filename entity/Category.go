package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name     string `json:"name"`
	Position int    `json:"position"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Dishes []Dish `json:"-"`
}
