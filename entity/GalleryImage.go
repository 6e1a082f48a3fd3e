package entity

import (
	"gorm.io/gorm"
)

// GalleryImage stores the hosted image URL only; the bytes live on the
// external media host.
type GalleryImage struct {
	gorm.Model
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
