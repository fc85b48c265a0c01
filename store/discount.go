package store

// Discount maps the total piece count in a cart to the progressive
// discount rate. Tier bounds are inclusive: exactly 4 pieces already earn
// 10%.
func Discount(totalItems int) float64 {
	switch {
	case totalItems >= 7:
		return 0.15
	case totalItems >= 4:
		return 0.10
	case totalItems >= 2:
		return 0.05
	default:
		return 0
	}
}
