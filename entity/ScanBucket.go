package entity

import (
	"gorm.io/gorm"
)

// ScanBucket counts QR scans per restaurant per calendar day.
// Day is YYYY-MM-DD in the server's local timezone.
type ScanBucket struct {
	gorm.Model
	Day   string `gorm:"uniqueIndex:idx_restaurant_day;size:10" json:"day"`
	Count int64  `json:"count"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_restaurant_day" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
