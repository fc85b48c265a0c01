package store

import (
	"errors"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

var ErrProductNotFound = errors.New("product not found")

// AddToCart puts quantity units of a product in the chosen size into the
// cart. If a line for the same (product id, size) already exists its
// quantity is bumped; otherwise a new line is appended, so insertion order
// is display order. The size may still be empty at this point — checkout
// is what requires one.
func (s *Store) AddToCart(productID, size string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.findProduct(productID)
	if !ok {
		return ErrProductNotFound
	}

	for i := range s.cart {
		if s.cart[i].ID == productID && s.cart[i].SelectedSize == size {
			s.cart[i].Quantity += quantity
			s.persistCart()
			return nil
		}
	}

	s.cart = append(s.cart, models.CartItem{
		Product:      copyProduct(product),
		Quantity:     quantity,
		SelectedSize: size,
	})
	s.persistCart()
	return nil
}

// RemoveFromCart drops the line matching (product id, size). Removing a
// line that is not there is a no-op.
func (s *Store) RemoveFromCart(productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID && s.cart[i].SelectedSize == size {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			s.persistCart()
			return
		}
	}
}

// UpdateQuantity adds delta to the line's quantity, flooring at 1. Lines
// are only ever removed through RemoveFromCart.
func (s *Store) UpdateQuantity(productID, size string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID && s.cart[i].SelectedSize == size {
			newQty := s.cart[i].Quantity + delta
			if newQty < 1 {
				newQty = 1
			}
			s.cart[i].Quantity = newQty
			s.persistCart()
			return
		}
	}
}

// UpdateItemSize reassigns the size label on an existing line in place.
// If another line already carries (product id, newSize) the two lines are
// NOT merged and the cart ends up with two lines on the same key; the
// shop has always behaved this way and the admin flow tolerates it.
func (s *Store) UpdateItemSize(productID, size, newSize string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID && s.cart[i].SelectedSize == size {
			s.cart[i].SelectedSize = newSize
			s.persistCart()
			return
		}
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	s.persistCart()
}

// Cart returns a copy of the cart lines in display order.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.cart)
}

// Summary computes the derived cart figures from the live lines. Nothing
// here is cached, so it can never go stale.
func (s *Store) Summary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.cart)
}

func summarize(items []models.CartItem) models.CartSummary {
	var sum models.CartSummary
	for _, it := range items {
		sum.TotalItems += it.Quantity
		sum.Subtotal += it.LineTotal()
	}
	sum.DiscountPercent = Discount(sum.TotalItems)
	sum.DiscountAmount = sum.Subtotal * sum.DiscountPercent
	sum.FinalTotal = sum.Subtotal - sum.DiscountAmount
	return sum
}

func (s *Store) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func copyProduct(p models.Product) models.Product {
	cp := p
	cp.Images = append([]string(nil), p.Images...)
	cp.Sizes = append([]string(nil), p.Sizes...)
	return cp
}

func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Product = copyProduct(it.Product)
	}
	return out
}
