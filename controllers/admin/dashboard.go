package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

// How many months the dashboard revenue chart looks back.
const revenueChartMonths = 3

// GET /admin/dashboard
func GetDashboard(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"stats":   s.Stats(),
			"monthly": s.MonthlyRevenue(revenueChartMonths),
		})
	}
}

// GET /admin/clients
func GetClients(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Clients())
	}
}
