package configs

import (
	"log"

	"dineinn/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.Owner{}, &entity.Restaurant{},
		&entity.Category{}, &entity.Dish{},
		&entity.Customer{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.ScanBucket{},
		&entity.Announcement{}, &entity.GalleryImage{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
}
