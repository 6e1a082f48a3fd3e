package entity

import (
	"gorm.io/gorm"
)

type Owner struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`

	Restaurants []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
}
