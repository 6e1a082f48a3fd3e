package routes

import (
	"dineinn/configs"
	"dineinn/controllers"
	"dineinn/middlewares"
	"dineinn/repository"
	"dineinn/services"
	"dineinn/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	custRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, restRepo)
	custSvc := services.NewCustomerService(db, custRepo, restRepo, cfg.JWTSecret, cfg.CustomerTokenTTL)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo, restRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	restCtrl := controllers.NewRestaurantController(db, restRepo, cfg)
	menuCtrl := controllers.NewMenuController(db, restRepo, dishRepo)
	custCtrl := controllers.NewCustomerController(custSvc, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc, hub)
	scanCtrl := controllers.NewScanController(restRepo, analyticsSvc, cfg)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	ownerAuth := middlewares.OwnerAuth(cfg.JWTSecret)
	customerAuth := middlewares.CustomerAuth(cfg.JWTSecret)
	identify := middlewares.Identify(cfg.JWTSecret)

	// Owner auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", ownerAuth, authCtrl.Me)
	}

	// Public: scanned QR lands here
	r.POST("/scan", scanCtrl.Scan)
	r.GET("/m/:subdomain", restCtrl.PublicMenu)

	// Customers
	r.POST("/customers", custCtrl.Register)
	r.GET("/customers/me", customerAuth, custCtrl.Me)

	// Orders (customer/guest)
	r.POST("/orders", customerAuth, orderCtrl.Create)
	r.GET("/orders", identify, orderCtrl.List)
	r.GET("/orders/:id", identify, orderCtrl.Detail)

	// Orders (owner)
	owner := r.Group("/", ownerAuth)
	{
		owner.GET("/orders/admin", ownerOrderCtrl.List)
		owner.GET("/orders/admin/:id", ownerOrderCtrl.Detail)
		owner.PATCH("/orders/:id/status", ownerOrderCtrl.UpdateStatus)

		owner.POST("/restaurants", restCtrl.Onboard)
		owner.GET("/restaurants/mine", restCtrl.Mine)
		owner.PATCH("/restaurants/:id", restCtrl.Update)
		owner.GET("/restaurants/:id/tables/:n/qr.png", restCtrl.TableQR)

		owner.POST("/categories", menuCtrl.CreateCategory)
		owner.DELETE("/categories/:id", menuCtrl.DeleteCategory)
		owner.GET("/dishes", menuCtrl.ListDishes)
		owner.POST("/dishes", menuCtrl.CreateDish)
		owner.PATCH("/dishes/:id", menuCtrl.UpdateDish)
		owner.DELETE("/dishes/:id", menuCtrl.DeleteDish)

		owner.GET("/analytics/scans", analyticsCtrl.Scans)

		owner.GET("/ws/orders", hub.HandleWebSocket)
	}

	// Gallery & announcements (owner)
	galleryCtrl := controllers.NewGalleryController(db, restRepo)
	annCtrl := controllers.NewAnnouncementController(db, restRepo)
	owner.POST("/gallery", galleryCtrl.Create)
	owner.DELETE("/gallery/:id", galleryCtrl.Delete)
	owner.POST("/announcements", annCtrl.Create)
	owner.PATCH("/announcements/:id", annCtrl.Update)
	owner.DELETE("/announcements/:id", annCtrl.Delete)
}
