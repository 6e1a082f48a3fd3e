package repository

import (
	"errors"

	"dineinn/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// FindByMobile returns (nil, nil) when no customer exists; registration
// uses this to stay idempotent per mobile number. Runs on the caller's
// transaction so the read and the create see the same state.
func (r *CustomerRepository) FindByMobile(tx *gorm.DB, mobile string) (*entity.Customer, error) {
	var cust entity.Customer
	err := tx.Where("mobile = ?", mobile).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var cust entity.Customer
	if err := r.DB.First(&cust, id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) Create(tx *gorm.DB, cust *entity.Customer) error {
	return tx.Create(cust).Error
}

func (r *CustomerRepository) IsLinked(tx *gorm.DB, custID, restID uint) (bool, error) {
	var cnt int64
	err := tx.Table("customer_restaurants").
		Where("customer_id = ? AND restaurant_id = ?", custID, restID).
		Count(&cnt).Error
	return cnt > 0, err
}

// Link attaches the customer to a restaurant. Callers check IsLinked
// first so the join table never holds duplicates.
func (r *CustomerRepository) Link(tx *gorm.DB, cust *entity.Customer, restID uint) error {
	return tx.Model(cust).Association("Restaurants").Append(&entity.Restaurant{Model: gorm.Model{ID: restID}})
}

// ClaimGuestOrders attaches previously anonymous orders from this guest
// session to the newly registered customer.
func (r *CustomerRepository) ClaimGuestOrders(tx *gorm.DB, custID uint, guestSession string) error {
	if guestSession == "" {
		return nil
	}
	return tx.Model(&entity.Order{}).
		Where("guest_session_id = ? AND customer_id IS NULL", guestSession).
		Update("customer_id", custID).Error
}

func (r *CustomerRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Customer{}).Where("id = ?", id).Updates(updates).Error
}
