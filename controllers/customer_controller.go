package controllers

import (
	"errors"

	"dineinn/configs"
	"dineinn/pkg/resp"
	"dineinn/services"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Service *services.CustomerService
	Cfg     *configs.Config
}

func NewCustomerController(service *services.CustomerService, cfg *configs.Config) *CustomerController {
	return &CustomerController{Service: service, Cfg: cfg}
}

// POST /customers registers or re-attaches by mobile number. Safe to call
// again with the same mobile: the existing row is reused and the tenant
// link is added at most once.
func (cc *CustomerController) Register(c *gin.Context) {
	var req services.RegisterCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error()); return
	}

	guestSession, _ := c.Cookie(utils.GuestCookie)

	out, err := cc.Service.Register(&req, guestSession)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrMobileRequired):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrMobileConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	// year-scale identity cookie
	utils.SetIdentityCookie(c, utils.CustomerCookie, out.Token,
		int(cc.Cfg.CustomerTokenTTL.Seconds()), cc.Cfg.CookieSecure)

	msg := "welcome back"
	if out.Created {
		msg = "registered"
	}
	resp.OK(c, gin.H{"msg": msg, "customer": out.Customer})
}

// GET /customers/me (customer)
func (cc *CustomerController) Me(c *gin.Context) {
	cust, err := cc.Service.Profile(utils.CurrentCustomerID(c))
	if err != nil {
		resp.NotFound(c, "customer not found"); return
	}
	resp.OK(c, cust)
}
