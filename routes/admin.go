package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/auth"
	"github.com/LaryssaDev/site-para-gueto-fya/config"
	adminController "github.com/LaryssaDev/site-para-gueto-fya/controllers/admin"
	orderControllers "github.com/LaryssaDev/site-para-gueto-fya/controllers/order"
	productcontroller "github.com/LaryssaDev/site-para-gueto-fya/controllers/product"
	"github.com/LaryssaDev/site-para-gueto-fya/middleware"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Everything except
// the login sits behind the token middleware.
func SetupAdminRoutes(r *gin.Engine, s *store.Store, cfg config.Config) {
	r.POST("/admin/login", auth.AdminLogin(cfg))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken(cfg.JWTSecret))
	{
		// ─────────── Dashboard & Clients ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboard(s))
		adminGroup.GET("/clients", adminController.GetClients(s))

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(s))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(s))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(s))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(s))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(s))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(s))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(s))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(s))
		}
	}
}
