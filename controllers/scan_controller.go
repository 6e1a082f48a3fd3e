package controllers

import (
	"errors"
	"strconv"

	"dineinn/configs"
	"dineinn/pkg/resp"
	"dineinn/repository"
	"dineinn/services"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScanController handles the QR landing hit: it hands the client its
// guest session and table cookies and counts the scan.
type ScanController struct {
	RestRepo  *repository.RestaurantRepository
	Analytics *services.AnalyticsService
	Cfg       *configs.Config
}

func NewScanController(restRepo *repository.RestaurantRepository, analytics *services.AnalyticsService, cfg *configs.Config) *ScanController {
	return &ScanController{RestRepo: restRepo, Analytics: analytics, Cfg: cfg}
}

type ScanRequest struct {
	Subdomain   string `json:"subdomain" binding:"required"`
	TableNumber int    `json:"tableNumber" binding:"required,min=1"`
}

// POST /scan
func (sc *ScanController) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	rest, err := sc.RestRepo.GetBySubdomain(req.Subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found"); return
		}
		resp.ServerError(c, err); return
	}

	// hand out a guest session on first contact; keep the existing one after
	session, _ := c.Cookie(utils.GuestCookie)
	if session == "" {
		session = uuid.NewString()
		utils.SetIdentityCookie(c, utils.GuestCookie, session,
			int(sc.Cfg.CustomerTokenTTL.Seconds()), sc.Cfg.CookieSecure)
	}
	utils.SetTableCookie(c, strconv.Itoa(req.TableNumber), sc.Cfg.CookieSecure)

	if err := sc.Analytics.RecordScan(rest.ID); err != nil {
		resp.ServerError(c, err); return
	}

	resp.OK(c, gin.H{
		"restaurantId": rest.ID,
		"subdomain":    rest.Subdomain,
		"tableNumber":  req.TableNumber,
		"sessionId":    session,
	})
}
