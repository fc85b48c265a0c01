package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/config"
	"github.com/LaryssaDev/site-para-gueto-fya/models"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
	"github.com/LaryssaDev/site-para-gueto-fya/whatsapp"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	Customer struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	} `json:"customer" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Handlers --------

// POST /checkout
// Freezes the cart into a pending order and answers with the WhatsApp
// handoff link the client must open to finish the purchase.
func CheckoutHandler(s *store.Store, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := s.PlaceOrder(models.CustomerInfo{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyCart),
				errors.Is(err, store.ErrSizeNotSelected),
				errors.Is(err, store.ErrCustomerInfo):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order_id":     order.ID,
			"order":        order,
			"whatsapp_url": whatsapp.Link(cfg.ShopPhone, order),
		})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Orders())
	}
}

// GET /admin/orders/:orderID
func GetOrderByIDHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.OrderByID(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := s.UpdateOrderStatus(c.Param("orderID"), newStatus); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
