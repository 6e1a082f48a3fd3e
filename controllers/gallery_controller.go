package controllers

import (
	"dineinn/entity"
	"dineinn/pkg/resp"
	"dineinn/repository"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GalleryController manages gallery image metadata. Uploads go straight
// to the external media host; only the resulting URL is stored here.
type GalleryController struct {
	DB       *gorm.DB
	RestRepo *repository.RestaurantRepository
}

func NewGalleryController(db *gorm.DB, restRepo *repository.RestaurantRepository) *GalleryController {
	return &GalleryController{DB: db, RestRepo: restRepo}
}

type GalleryImageRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	URL          string `json:"url" binding:"required,url"`
	Caption      string `json:"caption"`
	Position     int    `json:"position"`
}

// POST /gallery (owner)
func (gc *GalleryController) Create(c *gin.Context) {
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	ok, err := gc.RestRepo.IsOwnedBy(req.RestaurantID, utils.CurrentOwnerID(c))
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	img := entity.GalleryImage{
		URL: req.URL, Caption: req.Caption, Position: req.Position,
		RestaurantID: req.RestaurantID,
	}
	if err := gc.DB.Create(&img).Error; err != nil {
		resp.ServerError(c, err); return
	}
	resp.Created(c, img)
}

// DELETE /gallery/:id?restaurantId= (owner)
func (gc *GalleryController) Delete(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}

	ok, err := gc.RestRepo.IsOwnedBy(restID, utils.CurrentOwnerID(c))
	if err != nil { resp.ServerError(c, err); return }
	if !ok { resp.Forbidden(c, "forbidden"); return }

	res := gc.DB.Where("id = ? AND restaurant_id = ?", paramUint(c, "id"), restID).Delete(&entity.GalleryImage{})
	if res.Error != nil { resp.ServerError(c, res.Error); return }
	if res.RowsAffected == 0 {
		resp.NotFound(c, "image not found"); return
	}
	resp.OK(c, gin.H{"msg": "deleted"})
}
