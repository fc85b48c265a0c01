package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CartItemPatch struct {
	QuantityDelta *int    `json:"quantity_delta"`
	Size          *string `json:"size"`
}

// GET /cart
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Cart())
	}
}

// GET /cart/summary
func GetCartSummary(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Summary())
	}
}

// POST /cart
func AddCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.AddToCart(input.ProductID, input.Size, input.Quantity); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, s.Cart())
	}
}

// PATCH /cart/:product_id?size=
// The current size rides in the query so a line whose size was never
// selected (empty size) stays addressable. Accepts a quantity delta, a
// new size, or both.
func UpdateCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("product_id")
		size := c.Query("size")

		var patch CartItemPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if patch.QuantityDelta == nil && patch.Size == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
			return
		}

		if patch.QuantityDelta != nil {
			s.UpdateQuantity(productID, size, *patch.QuantityDelta)
		}
		if patch.Size != nil {
			s.UpdateItemSize(productID, size, *patch.Size)
		}

		c.JSON(http.StatusOK, s.Cart())
	}
}

// DELETE /cart/:product_id?size=
func DeleteCartItem(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.RemoveFromCart(c.Param("product_id"), c.Query("size"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
