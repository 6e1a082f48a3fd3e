package controllers

import (
	"errors"

	"dineinn/pkg/resp"
	"dineinn/services"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *services.AnalyticsService
}

func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: service}
}

// GET /analytics/scans?restaurantId=&days= (owner)
func (ac *AnalyticsController) Scans(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}

	out, err := ac.Service.ScanWindow(utils.CurrentOwnerID(c), restID, int(queryUint(c, "days")))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden"); return
		}
		resp.ServerError(c, err); return
	}
	resp.OK(c, out)
}
