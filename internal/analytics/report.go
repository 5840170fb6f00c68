package analytics

import (
	"sort"

	"github.com/shopstack/catalog-api/internal/catalog"
)

// Top-product orderings accepted by TopProducts.
const (
	TopByRating  = "rating"
	TopByReviews = "reviews"
	TopByPrice   = "price"
)

// ProductStats are basic counts and averages over the product collection.
type ProductStats struct {
	TotalProducts   int     `json:"totalProducts"`
	AveragePrice    float64 `json:"averagePrice"`
	AverageRating   float64 `json:"averageRating"`
	InStockCount    int     `json:"inStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
	FeaturedCount   int     `json:"featuredCount"`
}

// PriceRanges buckets products by price.
type PriceRanges struct {
	Under25     int `json:"under25"`
	From25To50  int `json:"from25to50"`
	From50To100 int `json:"from50to100"`
	Over100     int `json:"over100"`
}

// PriceAnalysis describes the price distribution.
type PriceAnalysis struct {
	MinPrice    float64     `json:"minPrice"`
	MaxPrice    float64     `json:"maxPrice"`
	MedianPrice float64     `json:"medianPrice"`
	Ranges      PriceRanges `json:"priceRanges"`
}

// RatingDistribution buckets products by star rating.
type RatingDistribution struct {
	FiveStars  int `json:"fiveStars"`
	FourStars  int `json:"fourStars"`
	ThreeStars int `json:"threeStars"`
	TwoStars   int `json:"twoStars"`
	OneStar    int `json:"oneStar"`
}

// RatingAnalysis describes the rating distribution.
type RatingAnalysis struct {
	AverageRating float64            `json:"averageRating"`
	MedianRating  float64            `json:"medianRating"`
	Distribution  RatingDistribution `json:"ratingDistribution"`
}

// Inventory describes stock levels. Low stock means fewer than 10 units.
type Inventory struct {
	TotalStockUnits    int      `json:"totalStockUnits"`
	TotalStockValue    float64  `json:"totalStockValue"`
	LowStockCount      int      `json:"lowStockCount"`
	OutOfStockCount    int      `json:"outOfStockCount"`
	LowStockProducts   []string `json:"lowStockProducts"`
	OutOfStockProducts []string `json:"outOfStockProducts"`
}

// Sales describes order volume and revenue.
type Sales struct {
	TotalOrders       int                `json:"totalOrders"`
	TotalRevenue      float64            `json:"totalRevenue"`
	AverageOrderValue float64            `json:"averageOrderValue"`
	OrdersByStatus    map[string]int     `json:"ordersByStatus"`
	MonthlyRevenue    map[string]float64 `json:"monthlyRevenue"`
}

// Report bundles the extended analytics blocks.
type Report struct {
	ProductStats   ProductStats      `json:"productStats"`
	PriceAnalysis  PriceAnalysis     `json:"priceAnalysis"`
	RatingAnalysis RatingAnalysis    `json:"ratingAnalysis"`
	Inventory      Inventory         `json:"inventory"`
	Sales          Sales             `json:"sales"`
	TopProducts    []catalog.Product `json:"topProducts"`
}

// BuildReport computes every extended block. topBy and limit select the
// top-products ordering; see TopProducts for defaults.
func BuildReport(products []catalog.Product, orders []catalog.Order, topBy string, limit int) Report {
	return Report{
		ProductStats:   BuildProductStats(products),
		PriceAnalysis:  BuildPriceAnalysis(products),
		RatingAnalysis: BuildRatingAnalysis(products),
		Inventory:      BuildInventory(products),
		Sales:          BuildSales(orders),
		TopProducts:    TopProducts(products, topBy, limit),
	}
}

// BuildProductStats computes counts and averages over the catalog.
func BuildProductStats(products []catalog.Product) ProductStats {
	stats := ProductStats{TotalProducts: len(products)}
	if len(products) == 0 {
		return stats
	}
	priceSum, ratingSum := 0.0, 0.0
	for _, p := range products {
		priceSum += p.Price
		ratingSum += p.Rating
		if p.InStock {
			stats.InStockCount++
		}
		if p.Featured {
			stats.FeaturedCount++
		}
	}
	stats.OutOfStockCount = stats.TotalProducts - stats.InStockCount
	stats.AveragePrice = round2(priceSum / float64(len(products)))
	stats.AverageRating = round2(ratingSum / float64(len(products)))
	return stats
}

// BuildPriceAnalysis computes the price distribution. Empty catalogs yield
// the zero value.
func BuildPriceAnalysis(products []catalog.Product) PriceAnalysis {
	if len(products) == 0 {
		return PriceAnalysis{}
	}
	prices := make([]float64, 0, len(products))
	var ranges PriceRanges
	for _, p := range products {
		prices = append(prices, p.Price)
		switch {
		case p.Price < 25:
			ranges.Under25++
		case p.Price < 50:
			ranges.From25To50++
		case p.Price < 100:
			ranges.From50To100++
		default:
			ranges.Over100++
		}
	}
	sort.Float64s(prices)
	return PriceAnalysis{
		MinPrice:    prices[0],
		MaxPrice:    prices[len(prices)-1],
		MedianPrice: median(prices),
		Ranges:      ranges,
	}
}

// BuildRatingAnalysis computes the rating distribution. Empty catalogs
// yield the zero value.
func BuildRatingAnalysis(products []catalog.Product) RatingAnalysis {
	if len(products) == 0 {
		return RatingAnalysis{}
	}
	ratings := make([]float64, 0, len(products))
	var dist RatingDistribution
	sum := 0.0
	for _, p := range products {
		ratings = append(ratings, p.Rating)
		sum += p.Rating
		switch {
		case p.Rating >= 4.5:
			dist.FiveStars++
		case p.Rating >= 4.0:
			dist.FourStars++
		case p.Rating >= 3.0:
			dist.ThreeStars++
		case p.Rating >= 2.0:
			dist.TwoStars++
		default:
			dist.OneStar++
		}
	}
	sort.Float64s(ratings)
	return RatingAnalysis{
		AverageRating: round2(sum / float64(len(products))),
		MedianRating:  round2(median(ratings)),
		Distribution:  dist,
	}
}

// BuildInventory computes stock levels and flags products under 10 units.
func BuildInventory(products []catalog.Product) Inventory {
	inv := Inventory{
		LowStockProducts:   []string{},
		OutOfStockProducts: []string{},
	}
	for _, p := range products {
		inv.TotalStockUnits += p.Stock
		inv.TotalStockValue += p.Price * float64(p.Stock)
		if p.Stock < 10 {
			inv.LowStockCount++
			inv.LowStockProducts = append(inv.LowStockProducts, p.Name)
		}
		if p.Stock == 0 {
			inv.OutOfStockCount++
			inv.OutOfStockProducts = append(inv.OutOfStockProducts, p.Name)
		}
	}
	inv.TotalStockValue = round2(inv.TotalStockValue)
	return inv
}

// BuildSales computes order volume, revenue and the monthly revenue series
// (keys are YYYY-MM of the order creation time).
func BuildSales(orders []catalog.Order) Sales {
	sales := Sales{
		OrdersByStatus: map[string]int{},
		MonthlyRevenue: map[string]float64{},
	}
	for _, o := range orders {
		sales.TotalOrders++
		sales.TotalRevenue += o.Total
		sales.OrdersByStatus[o.Status]++
		month := o.CreatedAt.Format("2006-01")
		sales.MonthlyRevenue[month] = round2(sales.MonthlyRevenue[month] + o.Total)
	}
	sales.TotalRevenue = round2(sales.TotalRevenue)
	if sales.TotalOrders > 0 {
		sales.AverageOrderValue = round2(sales.TotalRevenue / float64(sales.TotalOrders))
	}
	return sales
}

// TopProducts returns up to limit products ordered by rating, reviews or
// price, descending. An unrecognized ordering preserves catalog order;
// limit <= 0 means 10. The input slice is never mutated.
func TopProducts(products []catalog.Product, by string, limit int) []catalog.Product {
	if limit <= 0 {
		limit = 10
	}
	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	switch by {
	case TopByRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case TopByReviews:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews > sorted[j].Reviews })
	case TopByPrice:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
