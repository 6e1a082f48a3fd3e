package services

import (
	"errors"
	"strings"
	"time"

	"dineinn/entity"
	"dineinn/repository"
	"dineinn/utils"

	"gorm.io/gorm"
)

var (
	ErrMobileRequired = errors.New("mobile is required")
	ErrMobileConflict = errors.New("mobile number already registered")
)

// CustomerService handles registration and the customer side of
// identity. Registration is idempotent by mobile number.
type CustomerService struct {
	DB        *gorm.DB
	Repo      *repository.CustomerRepository
	RestRepo  *repository.RestaurantRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository, restRepo *repository.RestaurantRepository, secret string, ttl time.Duration) *CustomerService {
	return &CustomerService{DB: db, Repo: repo, RestRepo: restRepo, jwtSecret: secret, tokenTTL: ttl}
}

type RegisterCustomerReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Mobile       string `json:"mobile" binding:"required"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BirthDate    string `json:"birthDate"` // YYYY-MM-DD, optional
}

type RegisterCustomerRes struct {
	Customer *entity.Customer
	Token    string
	Created  bool
}

// Register creates or reuses the Customer for this mobile number, links
// it to the restaurant at most once, claims any guest-session orders and
// issues the long-lived identity token. Calling it twice with the same
// mobile never produces a second Customer row or a second link.
func (s *CustomerService) Register(req *RegisterCustomerReq, guestSession string) (*RegisterCustomerRes, error) {
	mobile := strings.TrimSpace(req.Mobile)
	if mobile == "" {
		return nil, ErrMobileRequired
	}

	if _, err := s.RestRepo.GetByID(req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	var birth *time.Time
	if req.BirthDate != "" {
		t, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, errors.New("birthDate must be YYYY-MM-DD")
		}
		birth = &t
	}

	res := &RegisterCustomerRes{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cust, err := s.Repo.FindByMobile(tx, mobile)
		if err != nil {
			return err
		}
		if cust == nil {
			cust = &entity.Customer{
				Mobile:    mobile,
				Name:      strings.TrimSpace(req.Name),
				Email:     strings.TrimSpace(req.Email),
				BirthDate: birth,
			}
			if err := s.Repo.Create(tx, cust); err != nil {
				// the unique index on mobile fires when another request
				// registered the same number between our find and create
				return ErrMobileConflict
			}
			res.Created = true
		}

		linked, err := s.Repo.IsLinked(tx, cust.ID, req.RestaurantID)
		if err != nil {
			return err
		}
		if !linked {
			if err := s.Repo.Link(tx, cust, req.RestaurantID); err != nil {
				return err
			}
		}

		if err := s.Repo.ClaimGuestOrders(tx, cust.ID, guestSession); err != nil {
			return err
		}

		res.Customer = cust
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(res.Customer.ID, utils.RoleCustomer, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, errors.New("cannot generate token")
	}
	res.Token = token
	return res, nil
}

func (s *CustomerService) Profile(customerID uint) (*entity.Customer, error) {
	return s.Repo.FindByID(customerID)
}
