package services

import (
	"testing"

	"dineinn/entity"
	"dineinn/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Owner{}, &entity.Restaurant{},
		&entity.Category{}, &entity.Dish{},
		&entity.Customer{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.ScanBucket{},
		&entity.Announcement{}, &entity.GalleryImage{},
	))
	return db
}

type fixture struct {
	db       *gorm.DB
	orders   *OrderService
	owner    entity.Owner
	rest     entity.Restaurant
	padThai  entity.Dish
	rolls    entity.Dish
	customer entity.Customer
}

// newFixture seeds one owner, one restaurant with two dishes, and one
// registered customer.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testDB(t)

	f := &fixture{db: db}
	f.owner = entity.Owner{Email: "owner@example.com", Password: "x", Name: "Owner"}
	require.NoError(t, db.Create(&f.owner).Error)

	f.rest = entity.Restaurant{
		Name: "Thai Corner", Subdomain: "thaicorner",
		TaxRate: decimal.Zero, OwnerID: f.owner.ID,
	}
	require.NoError(t, db.Create(&f.rest).Error)

	cat := entity.Category{Name: "Mains", RestaurantID: f.rest.ID}
	require.NoError(t, db.Create(&cat).Error)

	f.padThai = entity.Dish{
		Name: "Pad Thai", Price: decimal.NewFromInt(100),
		CategoryID: cat.ID, RestaurantID: f.rest.ID, Available: true,
	}
	require.NoError(t, db.Create(&f.padThai).Error)

	f.rolls = entity.Dish{
		Name: "Spring Rolls", Price: decimal.NewFromInt(50),
		CategoryID: cat.ID, RestaurantID: f.rest.ID, Available: true,
	}
	require.NoError(t, db.Create(&f.rolls).Error)

	f.customer = entity.Customer{Mobile: "5550100", Name: "Alice"}
	require.NoError(t, db.Create(&f.customer).Error)

	f.orders = NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewDishRepository(db),
		repository.NewRestaurantRepository(db),
	)
	return f
}
