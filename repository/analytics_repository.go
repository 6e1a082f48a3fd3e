package repository

import (
	"dineinn/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// IncrementScan upserts today's bucket in one statement: either the row
// and its count appear together or neither does.
func (r *AnalyticsRepository) IncrementScan(restID uint, day string) error {
	b := entity.ScanBucket{RestaurantID: restID, Day: day, Count: 1}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{"count": gorm.Expr("count + 1")}),
	}).Create(&b).Error
}

// ListBuckets returns buckets for the given days; absent days simply
// have no row and are zero-filled by the service.
func (r *AnalyticsRepository) ListBuckets(restID uint, fromDay, toDay string) ([]entity.ScanBucket, error) {
	var out []entity.ScanBucket
	err := r.DB.Where("restaurant_id = ? AND day >= ? AND day <= ?", restID, fromDay, toDay).
		Order("day").Find(&out).Error
	return out, err
}
