package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Subdomain   string `gorm:"uniqueIndex;not null" json:"subdomain"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logoUrl"`

	// applied to order subtotals; defaults from TAX_RATE at onboarding
	TaxRate decimal.Decimal `gorm:"type:decimal(5,4)" json:"taxRate"`

	OwnerID uint  `json:"ownerId"`
	Owner   Owner `json:"-"`

	Categories    []Category     `json:"-"`
	Dishes        []Dish         `json:"-"`
	Orders        []Order        `json:"-"`
	Announcements []Announcement `json:"-"`
	Gallery       []GalleryImage `json:"-"`

	Customers []Customer `gorm:"many2many:customer_restaurants;" json:"-"`
}
