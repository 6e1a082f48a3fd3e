package controllers

import (
	"dineinn/entity"
	"dineinn/pkg/resp"
	"dineinn/repository"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnnouncementController struct {
	DB       *gorm.DB
	RestRepo *repository.RestaurantRepository
}

func NewAnnouncementController(db *gorm.DB, restRepo *repository.RestaurantRepository) *AnnouncementController {
	return &AnnouncementController{DB: db, RestRepo: restRepo}
}

type AnnouncementRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Body         string `json:"body"`
}

// POST /announcements (owner)
func (ac *AnnouncementController) Create(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	ok, err := ac.RestRepo.IsOwnedBy(req.RestaurantID, utils.CurrentOwnerID(c))
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	ann := entity.Announcement{
		Title: req.Title, Body: req.Body, Active: true,
		RestaurantID: req.RestaurantID,
	}
	if err := ac.DB.Create(&ann).Error; err != nil {
		resp.ServerError(c, err); return
	}
	resp.Created(c, ann)
}

type UpdateAnnouncementRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Title        *string `json:"title"`
	Body         *string `json:"body"`
	Active       *bool   `json:"active"`
}

// PATCH /announcements/:id (owner)
func (ac *AnnouncementController) Update(c *gin.Context) {
	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	ok, err := ac.RestRepo.IsOwnedBy(req.RestaurantID, utils.CurrentOwnerID(c))
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	updates := map[string]any{}
	if req.Title != nil { updates["title"] = *req.Title }
	if req.Body != nil { updates["body"] = *req.Body }
	if req.Active != nil { updates["active"] = *req.Active }
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update"); return
	}

	res := ac.DB.Model(&entity.Announcement{}).
		Where("id = ? AND restaurant_id = ?", paramUint(c, "id"), req.RestaurantID).
		Updates(updates)
	if res.Error != nil { resp.ServerError(c, res.Error); return }
	if res.RowsAffected == 0 {
		resp.NotFound(c, "announcement not found"); return
	}
	resp.OK(c, gin.H{"msg": "updated"})
}

// DELETE /announcements/:id?restaurantId= (owner)
func (ac *AnnouncementController) Delete(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}

	ok, err := ac.RestRepo.IsOwnedBy(restID, utils.CurrentOwnerID(c))
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	res := ac.DB.Where("id = ? AND restaurant_id = ?", paramUint(c, "id"), restID).Delete(&entity.Announcement{})
	if res.Error != nil { resp.ServerError(c, res.Error); return }
	if res.RowsAffected == 0 {
		resp.NotFound(c, "announcement not found"); return
	}
	resp.OK(c, gin.H{"msg": "deleted"})
}
