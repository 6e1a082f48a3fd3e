package repository

import (
	"dineinn/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) GetBySubdomain(sub string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("subdomain = ?", sub).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// SubdomainTaken is checked before onboarding; the unique index is the
// real guard, this just gives a friendlier 409.
func (r *RestaurantRepository) SubdomainTaken(sub string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("subdomain = ?", sub).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) IsOwnedBy(restID, ownerID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, ownerID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) ListForOwner(ownerID uint) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("owner_id = ?", ownerID).Order("id").Find(&out).Error
	return out, err
}
