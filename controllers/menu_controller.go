package controllers

import (
	"dineinn/entity"
	"dineinn/pkg/resp"
	"dineinn/repository"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuController covers owner-side catalog management: categories and
// dishes. Prices land on the live Dish row; placed orders keep their own
// snapshots and are unaffected by edits here.
type MenuController struct {
	DB       *gorm.DB
	RestRepo *repository.RestaurantRepository
	DishRepo *repository.DishRepository
}

func NewMenuController(db *gorm.DB, restRepo *repository.RestaurantRepository, dishRepo *repository.DishRepository) *MenuController {
	return &MenuController{DB: db, RestRepo: restRepo, DishRepo: dishRepo}
}

func (mc *MenuController) mustOwn(c *gin.Context, restID uint) bool {
	ok, err := mc.RestRepo.IsOwnedBy(restID, utils.CurrentOwnerID(c))
	if err != nil {
		resp.ServerError(c, err)
		return false
	}
	if !ok {
		resp.Forbidden(c, "forbidden")
		return false
	}
	return true
}

// ===== Categories =====

type CategoryRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Position     int    `json:"position"`
}

// POST /categories (owner)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}
	if !mc.mustOwn(c, req.RestaurantID) { return }

	cat := entity.Category{Name: req.Name, Position: req.Position, RestaurantID: req.RestaurantID}
	if err := mc.DB.Create(&cat).Error; err != nil {
		resp.ServerError(c, err); return
	}
	resp.Created(c, cat)
}

// DELETE /categories/:id?restaurantId= (owner)
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}
	if !mc.mustOwn(c, restID) { return }

	res := mc.DB.Where("id = ? AND restaurant_id = ?", paramUint(c, "id"), restID).Delete(&entity.Category{})
	if res.Error != nil { resp.ServerError(c, res.Error); return }
	if res.RowsAffected == 0 {
		resp.NotFound(c, "category not found"); return
	}
	resp.OK(c, gin.H{"msg": "deleted"})
}

// ===== Dishes =====

type DishRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	CategoryID   uint   `json:"categoryId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	ImageURL     string `json:"imageUrl"`
}

// POST /dishes (owner)
func (mc *MenuController) CreateDish(c *gin.Context) {
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}
	if !mc.mustOwn(c, req.RestaurantID) { return }

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		resp.BadRequest(c, "price must be a non-negative decimal"); return
	}

	var cat entity.Category
	if err := mc.DB.Where("id = ? AND restaurant_id = ?", req.CategoryID, req.RestaurantID).First(&cat).Error; err != nil {
		resp.BadRequest(c, "category not found for this restaurant"); return
	}

	dish := entity.Dish{
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		ImageURL:     req.ImageURL,
		Available:    true,
		CategoryID:   cat.ID,
		RestaurantID: req.RestaurantID,
	}
	if err := mc.DishRepo.Create(&dish); err != nil {
		resp.ServerError(c, err); return
	}
	resp.Created(c, dish)
}

type UpdateDishRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	ImageURL     *string `json:"imageUrl"`
	Available    *bool   `json:"available"`
}

// PATCH /dishes/:id (owner)
func (mc *MenuController) UpdateDish(c *gin.Context) {
	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}
	if !mc.mustOwn(c, req.RestaurantID) { return }

	updates := map[string]any{}
	if req.Name != nil { updates["name"] = *req.Name }
	if req.Description != nil { updates["description"] = *req.Description }
	if req.ImageURL != nil { updates["image_url"] = *req.ImageURL }
	if req.Available != nil { updates["available"] = *req.Available }
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			resp.BadRequest(c, "price must be a non-negative decimal"); return
		}
		updates["price"] = price
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update"); return
	}

	affected, err := mc.DishRepo.Update(paramUint(c, "id"), req.RestaurantID, updates)
	if err != nil { resp.ServerError(c, err); return }
	if affected == 0 {
		resp.NotFound(c, "dish not found"); return
	}

	dish, err := mc.DishRepo.GetForRestaurant(paramUint(c, "id"), req.RestaurantID)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, dish)
}

// DELETE /dishes/:id?restaurantId= (owner)
func (mc *MenuController) DeleteDish(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}
	if !mc.mustOwn(c, restID) { return }

	affected, err := mc.DishRepo.Delete(paramUint(c, "id"), restID)
	if err != nil { resp.ServerError(c, err); return }
	if affected == 0 {
		resp.NotFound(c, "dish not found"); return
	}
	resp.OK(c, gin.H{"msg": "deleted"})
}

// GET /dishes?restaurantId= (owner; includes unavailable dishes)
func (mc *MenuController) ListDishes(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}
	if !mc.mustOwn(c, restID) { return }

	items, err := mc.DishRepo.ListForRestaurant(restID)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}
