package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dineinn/configs"
	"dineinn/entity"
	"dineinn/repository"
	"dineinn/utils"
	"dineinn/ws"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type env struct {
	router *gin.Engine
	db     *gorm.DB
	rest   entity.Restaurant
	dish   entity.Dish
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	e := &env{db: db}

	owner := entity.Owner{Email: "owner@example.com", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	e.rest = entity.Restaurant{Name: "Thai Corner", Subdomain: "thaicorner", TaxRate: decimal.Zero, OwnerID: owner.ID}
	require.NoError(t, db.Create(&e.rest).Error)
	e.dish = entity.Dish{Name: "Pad Thai", Price: decimal.NewFromInt(100), RestaurantID: e.rest.ID, Available: true}
	require.NoError(t, db.Create(&e.dish).Error)

	cfg := &configs.Config{
		JWTSecret:        "test-secret",
		OwnerTokenTTL:    time.Hour,
		CustomerTokenTTL: 24 * time.Hour,
		TaxRate:          decimal.Zero,
		PublicBaseURL:    "http://localhost:8000",
	}

	hub := ws.NewOrderHub(repository.NewRestaurantRepository(db))
	go hub.Run()

	e.router = gin.New()
	RegisterRoutes(e.router, db, cfg, hub)
	return e
}

func (e *env) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func cookieNamed(res *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range res.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestCreateOrderRequiresRegistration(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/orders", gin.H{
		"restaurantId": e.rest.ID,
		"tableNumber":  1,
		"items":        []gin.H{{"dishId": e.dish.ID, "qty": 1}},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var cnt int64
	e.db.Model(&entity.Order{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestRegisterThenOrderFlow(t *testing.T) {
	e := newEnv(t)

	// register by mobile; response sets the long-lived identity cookie
	w := e.do(t, http.MethodPost, "/customers", gin.H{
		"restaurantId": e.rest.ID,
		"mobile":       "5550123",
		"name":         "Alice",
	})
	require.Equal(t, http.StatusOK, w.Code)
	identity := cookieNamed(w, utils.CustomerCookie)
	require.NotNil(t, identity)
	assert.True(t, identity.HttpOnly)

	w = e.do(t, http.MethodPost, "/orders", gin.H{
		"restaurantId": e.rest.ID,
		"tableNumber":  4,
		"items":        []gin.H{{"dishId": e.dish.ID, "qty": 2}},
	}, identity)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			OrderID uint   `json:"orderId"`
			Status  string `json:"status"`
			Total   string `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "PLACED", body.Data.Status)
	assert.Equal(t, "200.00", body.Data.Total)

	// the registered customer sees their order
	w = e.do(t, http.MethodGet, "/orders", nil, identity)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data struct {
			Orders []json.RawMessage `json:"orders"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data.Orders, 1)
}

func TestRegisterMobileConflictReturns409(t *testing.T) {
	e := newEnv(t)

	// a mobile the registration lookup cannot see but the unique index
	// still guards, as when a concurrent registration wins the insert
	ghost := entity.Customer{Mobile: "5550456"}
	require.NoError(t, e.db.Create(&ghost).Error)
	require.NoError(t, e.db.Delete(&ghost).Error)

	w := e.do(t, http.MethodPost, "/customers", gin.H{
		"restaurantId": e.rest.ID,
		"mobile":       "5550456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListOrdersWithoutIdentityIsEmpty(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		OK   bool `json:"ok"`
		Data struct {
			Orders []json.RawMessage `json:"orders"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.True(t, list.OK)
	assert.Empty(t, list.Data.Orders)
}

func TestScanHandsOutGuestSessionAndCounts(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/scan", gin.H{"subdomain": "thaicorner", "tableNumber": 7})
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, cookieNamed(w, utils.GuestCookie))
	table := cookieNamed(w, utils.TableCookie)
	require.NotNil(t, table)
	assert.Equal(t, "7", table.Value)

	var buckets []entity.ScanBucket
	require.NoError(t, e.db.Find(&buckets).Error)
	require.Len(t, buckets, 1)
	assert.EqualValues(t, 1, buckets[0].Count)
}

func TestAdminEndpointsRequireOwnerToken(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/orders/admin?restaurantId=1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPatch, "/orders/1/status", gin.H{"status": "ACCEPTED"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
