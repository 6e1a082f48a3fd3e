package entity

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Mobile    string     `gorm:"uniqueIndex;not null" json:"mobile"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birthDate"`

	// a customer can visit many restaurants
	Restaurants []Restaurant `gorm:"many2many:customer_restaurants;" json:"-"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}
