package controllers

import (
	"errors"

	"dineinn/entity"
	"dineinn/pkg/resp"
	"dineinn/services"
	"dineinn/utils"
	"dineinn/ws"

	"github.com/gin-gonic/gin"
)

// OwnerOrderController is the admin side: list, inspect and advance
// orders for a restaurant the caller owns.
type OwnerOrderController struct {
	Service *services.OrderService
	Hub     *ws.OrderHub
}

func NewOwnerOrderController(service *services.OrderService, hub *ws.OrderHub) *OwnerOrderController {
	return &OwnerOrderController{Service: service, Hub: hub}
}

// GET /orders/admin?restaurantId=&status=&page=&limit= (owner)
func (oc *OwnerOrderController) List(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}

	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status"); return
		}
		status = &st
	}

	out, err := oc.Service.ListForRestaurant(
		utils.CurrentOwnerID(c), restID, status,
		int(queryUint(c, "page")), int(queryUint(c, "limit")),
	)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "forbidden"); return
		}
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"orders": out.Items, "total": out.Total, "page": out.Page, "limit": out.Limit})
}

// GET /orders/admin/:id?restaurantId= (owner)
func (oc *OwnerOrderController) Detail(c *gin.Context) {
	restID := queryUint(c, "restaurantId")
	if restID == 0 {
		resp.BadRequest(c, "restaurantId is required"); return
	}

	out, err := oc.Service.DetailForRestaurant(utils.CurrentOwnerID(c), restID, paramUint(c, "id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, out)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (owner). Unknown statuses are 400; statuses
// not reachable from the current one are 409 and leave the row untouched.
func (oc *OwnerOrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	order, err := oc.Service.UpdateStatus(
		utils.CurrentOwnerID(c), paramUint(c, "id"), entity.OrderStatus(req.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownStatus):
			resp.BadRequest(c, "unknown status")
		case errors.Is(err, services.ErrBadTransition):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "forbidden")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	oc.Hub.Publish(ws.OrderEvent{
		RestaurantID: order.RestaurantID,
		Type:         "status_changed",
		OrderID:      order.ID,
		TableNumber:  order.TableNumber,
		Status:       order.Status,
	})

	resp.OK(c, gin.H{"order": order})
}
