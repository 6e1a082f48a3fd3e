package services

import (
	"errors"

	"dineinn/entity"
	"dineinn/repository"

	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidDish        = errors.New("dish not available for this restaurant")
	ErrForbidden          = errors.New("forbidden")
	ErrUnknownStatus      = errors.New("unknown status")
	ErrBadTransition      = errors.New("transition not allowed from current status")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	DishRepo *repository.DishRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, dishRepo *repository.DishRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, RestRepo: restRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	DishID uint `json:"dishId" binding:"required"`
	Qty    int  `json:"qty" binding:"required,min=1"`
}

type CreateOrderReq struct {
	RestaurantID uint          `json:"restaurantId" binding:"required"`
	TableNumber  int           `json:"tableNumber" binding:"required,min=1"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderRes struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
	Total   string             `json:"total"`
}

// ----- Create -----

// Create turns a cart into a PLACED order. The customer id comes from a
// verified token; guests never reach this point. Order and lines are
// written in one transaction.
func (s *OrderService) Create(customerID uint, guestSession string, req *CreateOrderReq) (*CreateOrderRes, error) {
	rest, err := s.RestRepo.GetByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	// duplicate dish ids in the cart are summed, not separate lines
	qty := make(map[uint]int, len(req.Items))
	for _, it := range req.Items {
		if it.Qty <= 0 {
			return nil, ErrBadQuantity
		}
		qty[it.DishID] += it.Qty
	}
	dishIDs := make([]uint, 0, len(qty))
	for id := range qty {
		dishIDs = append(dishIDs, id)
	}

	dishes, err := s.DishRepo.ListByIDsForRestaurant(dishIDs, rest.ID)
	if err != nil {
		return nil, err
	}
	// fail closed: any cross-tenant or unknown id aborts the whole order
	if len(dishes) != len(dishIDs) {
		return nil, ErrInvalidDish
	}

	quote, err := PriceCart(dishes, qty, rest.TaxRate)
	if err != nil {
		return nil, err
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TableNumber:    req.TableNumber,
			Subtotal:       quote.Subtotal,
			Tax:            quote.Tax,
			Total:          quote.Total,
			Status:         entity.StatusPlaced,
			RestaurantID:   rest.ID,
			CustomerID:     &customerID,
			GuestSessionID: guestSession,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range quote.Lines {
			line := entity.OrderLine{
				Name:      l.Name,
				Price:     l.Price,
				Quantity:  l.Quantity,
				LineTotal: l.LineTotal,
				OrderID:   order.ID,
				DishID:    l.DishID,
			}
			if err := s.Repo.CreateOrderLine(tx, &line); err != nil {
				return err
			}
		}
		out = CreateOrderRes{OrderID: order.ID, Status: order.Status, Total: order.Total.StringFixed(2)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- List & Detail -----

// ListForVisitor serves GET /orders for whoever shows up: registered
// customers get their history, guests get their session's orders, and a
// request with neither identity gets an empty list, never an error.
func (s *OrderService) ListForVisitor(customerID uint, guestSession string, limit int) ([]repository.OrderSummary, error) {
	if customerID != 0 {
		return s.Repo.ListForCustomer(customerID, limit)
	}
	if guestSession != "" {
		return s.Repo.ListForGuest(guestSession, limit)
	}
	return []repository.OrderSummary{}, nil
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Lines []entity.OrderLine `json:"lines"`
}

func (s *OrderService) DetailForVisitor(customerID uint, guestSession string, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	owned := (customerID != 0 && o.CustomerID != nil && *o.CustomerID == customerID) ||
		(guestSession != "" && o.GuestSessionID == guestSession)
	if !owned {
		return nil, ErrOrderNotFound
	}
	lines, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Lines: lines}, nil
}

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(ownerID, restID uint, status *entity.OrderStatus, page, limit int) (*AdminOrderListOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	items, total, err := s.Repo.ListForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForRestaurant(ownerID, restID, orderID uint) (*OrderDetail, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	o, err := s.Repo.GetOrderForRestaurant(restID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	lines, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Lines: lines}, nil
}
