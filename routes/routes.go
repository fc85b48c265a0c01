package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/config"
	orderControllers "github.com/LaryssaDev/site-para-gueto-fya/controllers/order"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

// SetupRoutes is the single entry-point that wires up the shop and admin
// route groups.
func SetupRoutes(r *gin.Engine, s *store.Store, cfg config.Config) {
	// Shop routes (public)
	SetupShopRoutes(r, s, cfg)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, s, cfg)

	// Push new orders to the admin dashboard feed
	orderControllers.RegisterOrderFeed(s)
}
