package repository

import (
	"dineinn/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

// ListByIDsForRestaurant is the catalog lookup for order creation: only
// dishes owned by the restaurant come back, cross-tenant ids are dropped.
// The caller compares result size against request size and fails closed.
func (r *DishRepository) ListByIDsForRestaurant(dishIDs []uint, restID uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Select("id, name, price, restaurant_id").
		Where("id IN ? AND restaurant_id = ?", dishIDs, restID).
		Find(&out).Error
	return out, err
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) GetForRestaurant(dishID, restID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Where("id = ? AND restaurant_id = ?", dishID, restID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Update(dishID, restID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Dish{}).
		Where("id = ? AND restaurant_id = ?", dishID, restID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *DishRepository) Delete(dishID, restID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", dishID, restID).Delete(&entity.Dish{})
	return res.RowsAffected, res.Error
}

func (r *DishRepository) ListForRestaurant(restID uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("category_id, id").Find(&out).Error
	return out, err
}
