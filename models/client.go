package models

import "time"

// Client is one distinct customer seen across the order history, keyed by
// e-mail. Order count and last-order date accumulate over every order;
// TotalSpent only counts approved ones.
type Client struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	TotalSpent float64   `json:"total_spent"`
	OrderCount int       `json:"order_count"`
	LastOrder  time.Time `json:"last_order"`
}

// DashboardStats are the headline figures on the admin dashboard. Revenue
// figures only ever include approved orders.
type DashboardStats struct {
	RevenueTotal float64 `json:"revenue_total"`
	RevenueMonth float64 `json:"revenue_month"`
	TicketAvg    float64 `json:"ticket_avg"`
	MostSold     string  `json:"most_sold"`
}

// MonthlyRevenue is one bucket of the trailing revenue chart.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}
