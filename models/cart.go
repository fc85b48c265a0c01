package models

// CartItem is one cart line: a product copy plus the chosen size and a
// quantity. Two lines never share the same (product id, size) pair; adding
// the same pair again bumps the quantity instead.
type CartItem struct {
	Product
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize"`
}

// LineTotal is the price of this line before any discount.
func (it CartItem) LineTotal() float64 {
	return it.Price * float64(it.Quantity)
}

// CartSummary carries the derived cart figures. It is computed on demand
// from the current lines, never stored.
type CartSummary struct {
	TotalItems      int     `json:"total_items"`
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	FinalTotal      float64 `json:"final_total"`
}
