package routes

import (
	"github.com/DonAdhyatma/fe-final-project/configs"
	"github.com/DonAdhyatma/fe-final-project/controllers"
	"github.com/DonAdhyatma/fe-final-project/entity"
	"github.com/DonAdhyatma/fe-final-project/middlewares"
	"github.com/DonAdhyatma/fe-final-project/repository"
	"github.com/DonAdhyatma/fe-final-project/services"
	"github.com/DonAdhyatma/fe-final-project/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(menuRepo, cfg.TaxRateBP)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, cfg.TaxRateBP)
	orderSvc.Notifier = hub
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, orderSvc)
	reportSvc := services.NewReportService(reportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, paymentSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	reportCtrl := controllers.NewReportController(reportSvc)

	secret := cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/register", authCtrl.Register)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(secret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/profile", authCtrl.Profile)
		aAuth.PUT("/profile", authCtrl.UpdateProfile)
		aAuth.POST("/change-password", authCtrl.ChangePassword)
	}
	a.POST("/reset-password", middlewares.AuthMiddleware(secret, entity.RoleAdmin), authCtrl.ResetPassword)

	// Menu: reads for any logged-in terminal, writes for admin
	menu := r.Group("/menu", middlewares.AuthMiddleware(secret))
	{
		menu.GET("", menuCtrl.List)
		menu.GET("/:id", menuCtrl.Detail)
		menu.GET("/:id/image", menuCtrl.Image)
	}
	menuAdmin := r.Group("/menu", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		menuAdmin.POST("", menuCtrl.Create)
		menuAdmin.PUT("/:id", menuCtrl.Update)
		menuAdmin.DELETE("/:id", menuCtrl.Delete)
		menuAdmin.PATCH("/:id/status", menuCtrl.UpdateStatus)
		menuAdmin.POST("/:id/image", menuCtrl.UploadImage)
	}

	// Cart: the cashier's in-progress order
	cartGroup := r.Group("/cart", middlewares.AuthMiddleware(secret, entity.RoleCashier, entity.RoleAdmin))
	{
		cartGroup.GET("", cartCtrl.Get)
		cartGroup.DELETE("", cartCtrl.Clear)
		cartGroup.POST("/items", cartCtrl.Add)
		cartGroup.PATCH("/items/:menuId", cartCtrl.SetQuantity)
		cartGroup.DELETE("/items/:menuId", cartCtrl.Remove)
		cartGroup.PATCH("/order-type", cartCtrl.SetOrderType)
		cartGroup.PATCH("/customer", cartCtrl.SetCustomer)
		cartGroup.POST("/checkout", cartCtrl.Checkout)
	}

	// Orders
	orders := r.Group("/orders", middlewares.AuthMiddleware(secret, entity.RoleCashier, entity.RoleAdmin))
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.GET("/:id/payment", orderCtrl.Payment)
		orders.POST("", orderCtrl.Create)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
	}

	// Payments
	payments := r.Group("/payments", middlewares.AuthMiddleware(secret, entity.RoleCashier, entity.RoleAdmin))
	{
		payments.POST("", paymentCtrl.Process)
		payments.POST("/:id/refund", paymentCtrl.Refund)
	}

	// Reports (admin only)
	reports := r.Group("/reports", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		reports.GET("/sales-overview", reportCtrl.SalesOverview)
		reports.GET("/sales-by-category", reportCtrl.SalesByCategory)
		reports.GET("/sales-by-period", reportCtrl.SalesByPeriod)
		reports.GET("/top-menu-items", reportCtrl.TopMenuItems)
		reports.GET("/dashboard-stats", reportCtrl.Dashboard)
	}

	// User management (admin only)
	users := r.Group("/users", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		users.GET("", userCtrl.List)
		users.GET("/:id", userCtrl.Detail)
		users.POST("", userCtrl.Create)
		users.PUT("/:id", userCtrl.Update)
		users.DELETE("/:id", userCtrl.Delete)
		users.PATCH("/:id/status", userCtrl.UpdateStatus)
		users.PATCH("/:id/role", userCtrl.ChangeRole)
	}

	// Live order feed
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(secret), hub.HandleWebSocket)
}
