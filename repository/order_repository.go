package repository

import (
	"time"

	"dineinn/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}

// ---------------- Listing ----------------

type OrderSummary struct {
	ID          uint               `json:"id"`
	TableNumber int                `json:"tableNumber"`
	Total       decimal.Decimal    `json:"total"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListForCustomer returns the customer's orders newest first. An unset
// or non-positive limit falls back to the 50 most recent rows; callers
// wanting more history pass an explicit limit.
func (r *OrderRepository) ListForCustomer(custID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, table_number, total, status, created_at").
		Where("customer_id = ?", custID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListForGuest mirrors ListForCustomer for anonymous sessions, with the
// same default of the 50 most recent rows.
func (r *OrderRepository) ListForGuest(session string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, table_number, total, status, created_at").
		Where("guest_session_id = ?", session).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type AdminOrderSummary struct {
	ID          uint               `json:"id"`
	TableNumber int                `json:"tableNumber"`
	Total       decimal.Decimal    `json:"total"`
	Status      entity.OrderStatus `json:"status"`
	CustomerID  *uint              `json:"customerId"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ListForRestaurant returns a restaurant's orders newest first, with an
// optional single-status filter.
func (r *OrderRepository) ListForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []AdminOrderSummary
	err := q.Select("id, table_number, total, status, customer_id, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

// ---------------- Status ----------------

// UpdateStatusGuard flips the status only when the row still carries the
// expected current status. RowsAffected == 0 means the transition lost a
// race or was not applicable; the caller rejects without mutating.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Scoped fetches ----------------

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
