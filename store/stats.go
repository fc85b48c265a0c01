package store

import (
	"time"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

var monthShortPT = []string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// Stats computes the admin dashboard headline figures. Only approved
// orders count toward revenue.
func (s *Store) Stats() models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var stats models.DashboardStats
	approvedCount := 0
	soldByName := make(map[string]int)

	for _, o := range s.orders {
		if o.Status != models.OrderStatusApproved {
			continue
		}
		approvedCount++
		stats.RevenueTotal += o.TotalAmount
		if o.Date.Month() == now.Month() && o.Date.Year() == now.Year() {
			stats.RevenueMonth += o.TotalAmount
		}
		for _, it := range o.Items {
			soldByName[it.Name] += it.Quantity
		}
	}

	if approvedCount > 0 {
		stats.TicketAvg = stats.RevenueTotal / float64(approvedCount)
	}

	stats.MostSold = "N/A"
	best := 0
	for name, count := range soldByName {
		// ties break toward the lexicographically smaller name so the
		// result is stable across runs
		if count > best || (count == best && best > 0 && name < stats.MostSold) {
			best = count
			stats.MostSold = name
		}
	}

	return stats
}

// MonthlyRevenue buckets approved-order revenue by calendar month over
// the trailing window of `months` months, oldest bucket first. The chart
// on the dashboard uses a 3-month window.
func (s *Store) MonthlyRevenue(months int) []models.MonthlyRevenue {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	type bucketKey struct {
		month time.Month
		year  int
	}

	out := make([]models.MonthlyRevenue, 0, months)
	index := make(map[bucketKey]int, months)
	for i := months - 1; i >= 0; i-- {
		// anchor on the first of the month so the offset never skips a
		// short month
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		index[bucketKey{d.Month(), d.Year()}] = len(out)
		out = append(out, models.MonthlyRevenue{
			Month: monthShortPT[d.Month()-1],
			Year:  d.Year(),
		})
	}

	for _, o := range s.orders {
		if o.Status != models.OrderStatusApproved {
			continue
		}
		if i, ok := index[bucketKey{o.Date.Month(), o.Date.Year()}]; ok {
			out[i].Revenue += o.TotalAmount
		}
	}

	return out
}

// Clients folds the whole order history into one record per distinct
// customer e-mail, in order of most recent first appearance. Every order
// counts toward OrderCount and LastOrder; only approved ones add to
// TotalSpent.
func (s *Store) Clients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int)
	out := make([]models.Client, 0)

	for _, o := range s.orders {
		i, ok := index[o.Customer.Email]
		if !ok {
			i = len(out)
			index[o.Customer.Email] = i
			out = append(out, models.Client{
				Name:      o.Customer.Name,
				Email:     o.Customer.Email,
				Phone:     o.Customer.Phone,
				LastOrder: o.Date,
			})
		}

		out[i].OrderCount++
		if o.Date.After(out[i].LastOrder) {
			out[i].LastOrder = o.Date
		}
		if o.Status == models.OrderStatusApproved {
			out[i].TotalSpent += o.TotalAmount
		}
	}

	return out
}
