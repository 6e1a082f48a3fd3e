package configs

import (
	"log"

	"dineinn/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates a demo owner + restaurant for local development.
// Controlled by DEMO_EMAIL/DEMO_PASSWORD; skipped when unset.
func SeedDemo(cfg *Config) error {
	db := DB()
	email := getEnv("DEMO_EMAIL", "")
	pass := getEnv("DEMO_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip demo seed: missing DEMO_EMAIL/DEMO_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Owner{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo owner already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	owner := entity.Owner{Email: email, Password: string(hash), Name: "Demo Owner"}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name:      "Demo Diner",
		Subdomain: "demo",
		TaxRate:   cfg.TaxRate,
		OwnerID:   owner.ID,
	}
	if err := db.Create(&rest).Error; err != nil {
		return err
	}

	starters := entity.Category{Name: "Starters", Position: 1, RestaurantID: rest.ID}
	mains := entity.Category{Name: "Mains", Position: 2, RestaurantID: rest.ID}
	db.Create(&starters)
	db.Create(&mains)

	db.Create(&entity.Dish{
		Name: "Spring Rolls", Price: decimal.NewFromInt(120),
		CategoryID: starters.ID, RestaurantID: rest.ID,
	})
	db.Create(&entity.Dish{
		Name: "Pad Thai", Price: decimal.NewFromInt(180),
		CategoryID: mains.ID, RestaurantID: rest.ID,
	})

	log.Println("demo restaurant seeded:", rest.Subdomain)
	return nil
}
