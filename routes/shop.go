package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/config"
	cartControllers "github.com/LaryssaDev/site-para-gueto-fya/controllers/cart"
	orderControllers "github.com/LaryssaDev/site-para-gueto-fya/controllers/order"
	productcontroller "github.com/LaryssaDev/site-para-gueto-fya/controllers/product"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

// SetupShopRoutes registers the public storefront endpoints.
func SetupShopRoutes(r *gin.Engine, s *store.Store, cfg config.Config) {
	// ─────────── Catalog ───────────
	r.GET("/products", productcontroller.GetProducts(s))
	r.GET("/products/:id", productcontroller.GetProductByID(s))

	// ─────────── Cart ───────────
	cart := r.Group("/cart")
	{
		cart.GET("", cartControllers.GetCart(s))
		cart.GET("/summary", cartControllers.GetCartSummary(s))
		cart.POST("", cartControllers.AddCartItem(s))
		// the line's current size is a query param, not a path segment,
		// so lines still waiting for a size selection remain addressable
		cart.PATCH("/:product_id", cartControllers.UpdateCartItem(s))
		cart.DELETE("/:product_id", cartControllers.DeleteCartItem(s))
		cart.DELETE("", cartControllers.ClearCart(s))
	}

	// ─────────── Checkout ───────────
	r.POST("/checkout", orderControllers.CheckoutHandler(s, cfg))
}
