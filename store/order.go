package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrSizeNotSelected = errors.New("every cart item needs a size before checkout")
	ErrCustomerInfo    = errors.New("customer name, phone and email are required")
	ErrOrderNotFound   = errors.New("order not found")
)

// orderRef builds a new order id, e.g. 20250908130500-8f14e45f.
func orderRef(now time.Time) string {
	return now.Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// PlaceOrder freezes the current cart into a new pending order, prepends
// it to the history (newest first) and clears the cart. The returned
// order owns its own copy of the lines; later cart changes never touch it.
func (s *Store) PlaceOrder(customer models.CustomerInfo) (models.Order, error) {
	if customer.Name == "" || customer.Phone == "" || customer.Email == "" {
		return models.Order{}, ErrCustomerInfo
	}

	s.mu.Lock()

	if len(s.cart) == 0 {
		s.mu.Unlock()
		return models.Order{}, ErrEmptyCart
	}
	for _, it := range s.cart {
		if it.SelectedSize == "" {
			s.mu.Unlock()
			return models.Order{}, ErrSizeNotSelected
		}
	}

	now := s.now()
	sum := summarize(s.cart)

	order := models.Order{
		ID:              orderRef(now),
		Customer:        customer,
		Items:           copyItems(s.cart),
		Subtotal:        sum.Subtotal,
		DiscountPercent: sum.DiscountPercent,
		DiscountAmount:  sum.DiscountAmount,
		TotalAmount:     sum.FinalTotal,
		Date:            now,
		Status:          models.OrderStatusPending,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.cart = nil
	s.persistOrders()
	s.persistCart()

	notify := s.onNewOrder
	s.mu.Unlock()

	if notify != nil {
		notify(order)
	}
	return order, nil
}

// Orders returns the order history, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o
		out[i].Items = copyItems(o.Items)
	}
	return out
}

// OrderByID looks one order up by its reference.
func (s *Store) OrderByID(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			o.Items = copyItems(o.Items)
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// UpdateOrderStatus moves an order to the given status. Any status can
// move to any other, including re-opening an approved or rejected order;
// setting the status it already has is a no-op.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			if s.orders[i].Status != status {
				s.orders[i].Status = status
				s.persistOrders()
			}
			return nil
		}
	}
	return ErrOrderNotFound
}
