package controllers

import (
	"errors"
	"strconv"

	"dineinn/configs"
	"dineinn/entity"
	"dineinn/pkg/resp"
	"dineinn/repository"
	"dineinn/services"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB   *gorm.DB
	Repo *repository.RestaurantRepository
	Cfg  *configs.Config
}

func NewRestaurantController(db *gorm.DB, repo *repository.RestaurantRepository, cfg *configs.Config) *RestaurantController {
	return &RestaurantController{DB: db, Repo: repo, Cfg: cfg}
}

type OnboardRequest struct {
	Name        string `json:"name" binding:"required"`
	Subdomain   string `json:"subdomain" binding:"required,alphanum,lowercase"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	LogoURL     string `json:"logoUrl"`
}

// POST /restaurants (owner)
func (rc *RestaurantController) Onboard(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	taken, err := rc.Repo.SubdomainTaken(req.Subdomain)
	if err != nil { resp.ServerError(c, err); return }
	if taken {
		resp.Conflict(c, "subdomain already taken"); return
	}

	rest := entity.Restaurant{
		Name:        req.Name,
		Subdomain:   req.Subdomain,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		LogoURL:     req.LogoURL,
		TaxRate:     rc.Cfg.TaxRate,
		OwnerID:     ownerID,
	}
	if err := rc.Repo.Create(&rest); err != nil {
		// unique index may still fire under a race
		resp.Conflict(c, "subdomain already taken"); return
	}
	resp.Created(c, rest)
}

// GET /restaurants/mine (owner)
func (rc *RestaurantController) Mine(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	items, err := rc.Repo.ListForOwner(ownerID)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, gin.H{"items": items})
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	LogoURL     *string `json:"logoUrl"`
}

// PATCH /restaurants/:id (owner)
func (rc *RestaurantController) Update(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	restID := paramUint(c, "id")

	ok, err := rc.Repo.IsOwnedBy(restID, ownerID)
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	updates := map[string]any{}
	if req.Name != nil { updates["name"] = *req.Name }
	if req.Description != nil { updates["description"] = *req.Description }
	if req.Address != nil { updates["address"] = *req.Address }
	if req.Phone != nil { updates["phone"] = *req.Phone }
	if req.LogoURL != nil { updates["logo_url"] = *req.LogoURL }
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update"); return
	}

	if err := rc.Repo.Update(restID, updates); err != nil {
		resp.ServerError(c, err); return
	}
	rest, err := rc.Repo.GetByID(restID)
	if err != nil { resp.ServerError(c, err); return }
	resp.OK(c, rest)
}

// GET /m/:subdomain serves the public menu a scanned QR lands on.
func (rc *RestaurantController) PublicMenu(c *gin.Context) {
	rest, err := rc.Repo.GetBySubdomain(c.Param("subdomain"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found"); return
		}
		resp.ServerError(c, err); return
	}

	var categories []entity.Category
	if err := rc.DB.Where("restaurant_id = ?", rest.ID).Order("position, id").Find(&categories).Error; err != nil {
		resp.ServerError(c, err); return
	}
	var dishes []entity.Dish
	if err := rc.DB.Where("restaurant_id = ? AND available = ?", rest.ID, true).
		Order("category_id, id").Find(&dishes).Error; err != nil {
		resp.ServerError(c, err); return
	}
	var announcements []entity.Announcement
	if err := rc.DB.Where("restaurant_id = ? AND active = ?", rest.ID, true).
		Order("id DESC").Find(&announcements).Error; err != nil {
		resp.ServerError(c, err); return
	}
	var gallery []entity.GalleryImage
	if err := rc.DB.Where("restaurant_id = ?", rest.ID).Order("position, id").Find(&gallery).Error; err != nil {
		resp.ServerError(c, err); return
	}

	resp.OK(c, gin.H{
		"restaurant":    rest,
		"categories":    categories,
		"dishes":        dishes,
		"announcements": announcements,
		"gallery":       gallery,
	})
}

// GET /restaurants/:id/tables/:n/qr.png (owner) → PNG bytes
func (rc *RestaurantController) TableQR(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)
	restID := paramUint(c, "id")

	ok, err := rc.Repo.IsOwnedBy(restID, ownerID)
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	table, err := strconv.Atoi(c.Param("n"))
	if err != nil || table < 1 {
		resp.BadRequest(c, "table number must be a positive integer"); return
	}

	rest, err := rc.Repo.GetByID(restID)
	if err != nil { resp.ServerError(c, err); return }

	png, err := services.TableQR{BaseURL: rc.Cfg.PublicBaseURL}.Generate(rest.Subdomain, table)
	if err != nil { resp.ServerError(c, err); return }

	c.Data(200, "image/png", png)
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.Atoi(c.Param(name))
	if v < 0 {
		return 0
	}
	return uint(v)
}

func queryUint(c *gin.Context, name string) uint {
	v, _ := strconv.Atoi(c.Query(name))
	if v < 0 {
		return 0
	}
	return uint(v)
}
