// Package analytics computes aggregates over the stored collections. Every
// figure is recomputed from the full collections on each call; there is no
// incremental maintenance.
package analytics

import (
	"math"

	"github.com/shopstack/catalog-api/internal/catalog"
)

// RecentOrderLimit caps the recent-orders list in the dashboard summary.
const RecentOrderLimit = 10

// Summary is the dashboard aggregate returned by GET /analytics.
type Summary struct {
	TotalProducts int             `json:"totalProducts"`
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  float64         `json:"totalRevenue"`
	AverageRating float64         `json:"averageRating"`
	CategoryStats map[string]int  `json:"categoryStats"`
	RecentOrders  []catalog.Order `json:"recentOrders"`
}

// Summarize builds the dashboard summary. Revenue and rating are rounded to
// two decimals; the average rating of an empty catalog is zero.
func Summarize(products []catalog.Product, orders []catalog.Order) Summary {
	totalRevenue := 0.0
	for _, o := range orders {
		totalRevenue += o.Total
	}

	categoryStats := map[string]int{}
	ratingSum := 0.0
	for _, p := range products {
		categoryStats[p.Category]++
		ratingSum += p.Rating
	}
	averageRating := 0.0
	if len(products) > 0 {
		averageRating = ratingSum / float64(len(products))
	}

	// newest first: orders are appended in creation order
	recent := make([]catalog.Order, 0, RecentOrderLimit)
	for i := len(orders) - 1; i >= 0 && len(recent) < RecentOrderLimit; i-- {
		recent = append(recent, orders[i])
	}

	return Summary{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalRevenue:  round2(totalRevenue),
		AverageRating: round2(averageRating),
		CategoryStats: categoryStats,
		RecentOrders:  recent,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
