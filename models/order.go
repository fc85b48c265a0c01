package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"  // placed, waiting for admin review
	OrderStatusApproved OrderStatus = "approved" // confirmed by the shop
	OrderStatusRejected OrderStatus = "rejected" // declined by the shop
)

// ParseOrderStatus maps a request string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusApproved):
		return OrderStatusApproved, nil
	case string(OrderStatusRejected):
		return OrderStatusRejected, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CustomerInfo is the contact block collected at checkout. All three
// fields are required before an order can be placed.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Order is a frozen snapshot of the cart at placement time plus the
// customer contact info and the totals computed then. Only Status may
// change afterwards.
type Order struct {
	ID              string       `json:"id"`
	Customer        CustomerInfo `json:"customer"`
	Items           []CartItem   `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	DiscountPercent float64      `json:"discountPercent"`
	DiscountAmount  float64      `json:"discountAmount"`
	TotalAmount     float64      `json:"totalAmount"`
	Date            time.Time    `json:"date"`
	Status          OrderStatus  `json:"status"`
}

// TotalItems is the number of pieces across all lines.
func (o Order) TotalItems() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
