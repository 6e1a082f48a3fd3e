package controllers

import (
	"errors"

	"dineinn/pkg/resp"
	"dineinn/services"
	"dineinn/utils"
	"dineinn/ws"

	"github.com/gin-gonic/gin"
)

// OrderController is the customer-facing side of the order lifecycle.
type OrderController struct {
	Service *services.OrderService
	Hub     *ws.OrderHub
}

func NewOrderController(service *services.OrderService, hub *ws.OrderHub) *OrderController {
	return &OrderController{Service: service, Hub: hub}
}

// POST /orders (registered customers only; middleware returns 401 for guests)
func (oc *OrderController) Create(c *gin.Context) {
	customerID := utils.CurrentCustomerID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	guestSession, _ := c.Cookie(utils.GuestCookie)

	out, err := oc.Service.Create(customerID, guestSession, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound),
			errors.Is(err, services.ErrInvalidDish),
			errors.Is(err, services.ErrBadQuantity):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	oc.Hub.Publish(ws.OrderEvent{
		RestaurantID: req.RestaurantID,
		Type:         "order_created",
		OrderID:      out.OrderID,
		TableNumber:  req.TableNumber,
		Status:       out.Status,
		Total:        out.Total,
	})

	resp.Created(c, out)
}

// GET /orders?sessionId= works for customers, guests, and nobody at
// all; the last case is an empty list, not an error.
func (oc *OrderController) List(c *gin.Context) {
	items, err := oc.Service.ListForVisitor(
		utils.CurrentCustomerID(c),
		utils.CurrentGuestSession(c),
		int(queryUint(c, "limit")),
	)
	if err != nil {
		resp.ServerError(c, err); return
	}
	resp.OK(c, gin.H{"orders": items})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	out, err := oc.Service.DetailForVisitor(
		utils.CurrentCustomerID(c),
		utils.CurrentGuestSession(c),
		paramUint(c, "id"),
	)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found"); return
		}
		resp.ServerError(c, err); return
	}
	resp.OK(c, out)
}
