package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopstack/catalog-api/internal/catalog"
)

func mkOrder(id string, total float64, created time.Time) catalog.Order {
	return catalog.Order{
		ID:        id,
		Total:     total,
		Status:    catalog.OrderStatusPending,
		CreatedAt: created,
	}
}

func TestSummarize_EmptyCollections(t *testing.T) {
	s := Summarize(nil, nil)
	if s.TotalProducts != 0 || s.TotalOrders != 0 || s.TotalRevenue != 0 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.AverageRating != 0 {
		t.Fatalf("average rating of empty catalog must be 0, got %v", s.AverageRating)
	}
	if len(s.RecentOrders) != 0 {
		t.Fatalf("expected no recent orders, got %d", len(s.RecentOrders))
	}
}

func TestSummarize_Totals(t *testing.T) {
	products := []catalog.Product{
		{Category: "electronics", Rating: 4.5},
		{Category: "electronics", Rating: 4.0},
		{Category: "clothing", Rating: 3.5},
	}
	now := time.Now()
	orders := []catalog.Order{
		mkOrder("a", 10.123, now),
		mkOrder("b", 20, now),
	}

	s := Summarize(products, orders)
	if s.TotalProducts != 3 || s.TotalOrders != 2 {
		t.Fatalf("counts wrong: %+v", s)
	}
	if s.TotalRevenue != 30.12 {
		t.Fatalf("revenue should round to 2 decimals, got %v", s.TotalRevenue)
	}
	if s.AverageRating != 4.0 {
		t.Fatalf("expected average rating 4.0, got %v", s.AverageRating)
	}
	if !reflect.DeepEqual(s.CategoryStats, map[string]int{"electronics": 2, "clothing": 1}) {
		t.Fatalf("category stats wrong: %v", s.CategoryStats)
	}
}

func TestSummarize_RecentOrdersNewestFirstCappedAtTen(t *testing.T) {
	now := time.Now()
	orders := make([]catalog.Order, 0, 12)
	for i := 0; i < 12; i++ {
		orders = append(orders, mkOrder(string(rune('a'+i)), 1, now))
	}

	s := Summarize(nil, orders)
	if len(s.RecentOrders) != RecentOrderLimit {
		t.Fatalf("expected %d recent orders, got %d", RecentOrderLimit, len(s.RecentOrders))
	}
	if s.RecentOrders[0].ID != "l" || s.RecentOrders[9].ID != "c" {
		t.Fatalf("expected newest first, got %s..%s", s.RecentOrders[0].ID, s.RecentOrders[9].ID)
	}
}

func TestBuildProductStats(t *testing.T) {
	products := []catalog.Product{
		{Price: 10, Rating: 4, InStock: true, Featured: true},
		{Price: 20, Rating: 2, InStock: false},
	}
	stats := BuildProductStats(products)
	want := ProductStats{
		TotalProducts:   2,
		AveragePrice:    15,
		AverageRating:   3,
		InStockCount:    1,
		OutOfStockCount: 1,
		FeaturedCount:   1,
	}
	if stats != want {
		t.Fatalf("got %+v want %+v", stats, want)
	}

	if empty := BuildProductStats(nil); empty.TotalProducts != 0 || empty.AveragePrice != 0 {
		t.Fatalf("empty catalog stats: %+v", empty)
	}
}

func TestBuildPriceAnalysis(t *testing.T) {
	products := []catalog.Product{
		{Price: 10}, {Price: 30}, {Price: 70}, {Price: 150},
	}
	pa := BuildPriceAnalysis(products)
	if pa.MinPrice != 10 || pa.MaxPrice != 150 {
		t.Fatalf("bounds wrong: %+v", pa)
	}
	if pa.MedianPrice != 50 {
		t.Fatalf("even-count median should average the middle pair, got %v", pa.MedianPrice)
	}
	want := PriceRanges{Under25: 1, From25To50: 1, From50To100: 1, Over100: 1}
	if pa.Ranges != want {
		t.Fatalf("ranges wrong: %+v", pa.Ranges)
	}
}

func TestBuildRatingAnalysis(t *testing.T) {
	products := []catalog.Product{
		{Rating: 4.7}, {Rating: 4.2}, {Rating: 3.1}, {Rating: 2.0}, {Rating: 1.5},
	}
	ra := BuildRatingAnalysis(products)
	if ra.MedianRating != 3.1 {
		t.Fatalf("median wrong: %v", ra.MedianRating)
	}
	want := RatingDistribution{FiveStars: 1, FourStars: 1, ThreeStars: 1, TwoStars: 1, OneStar: 1}
	if ra.Distribution != want {
		t.Fatalf("distribution wrong: %+v", ra.Distribution)
	}
}

func TestBuildInventory(t *testing.T) {
	products := []catalog.Product{
		{Name: "A", Price: 10, Stock: 100},
		{Name: "B", Price: 5, Stock: 4},
		{Name: "C", Price: 3, Stock: 0},
	}
	inv := BuildInventory(products)
	if inv.TotalStockUnits != 104 {
		t.Fatalf("units wrong: %d", inv.TotalStockUnits)
	}
	if inv.TotalStockValue != 1020 {
		t.Fatalf("value wrong: %v", inv.TotalStockValue)
	}
	if inv.LowStockCount != 2 || inv.OutOfStockCount != 1 {
		t.Fatalf("counts wrong: %+v", inv)
	}
	if !reflect.DeepEqual(inv.LowStockProducts, []string{"B", "C"}) {
		t.Fatalf("low stock names wrong: %v", inv.LowStockProducts)
	}
	if !reflect.DeepEqual(inv.OutOfStockProducts, []string{"C"}) {
		t.Fatalf("out of stock names wrong: %v", inv.OutOfStockProducts)
	}
}

func TestBuildSales(t *testing.T) {
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	orders := []catalog.Order{
		mkOrder("a", 10, jan),
		mkOrder("b", 30, jan),
		mkOrder("c", 20, feb),
	}

	sales := BuildSales(orders)
	if sales.TotalOrders != 3 || sales.TotalRevenue != 60 {
		t.Fatalf("totals wrong: %+v", sales)
	}
	if sales.AverageOrderValue != 20 {
		t.Fatalf("aov wrong: %v", sales.AverageOrderValue)
	}
	if sales.OrdersByStatus[catalog.OrderStatusPending] != 3 {
		t.Fatalf("status counts wrong: %v", sales.OrdersByStatus)
	}
	want := map[string]float64{"2026-01": 40, "2026-02": 20}
	if !reflect.DeepEqual(sales.MonthlyRevenue, want) {
		t.Fatalf("monthly revenue wrong: %v", sales.MonthlyRevenue)
	}

	if empty := BuildSales(nil); empty.AverageOrderValue != 0 {
		t.Fatalf("empty sales must not divide by zero: %+v", empty)
	}
}

func TestTopProducts(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Rating: 3, Reviews: 500, Price: 10},
		{ID: 2, Rating: 5, Reviews: 100, Price: 30},
		{ID: 3, Rating: 4, Reviews: 300, Price: 20},
	}

	top := TopProducts(products, TopByRating, 2)
	if len(top) != 2 || top[0].ID != 2 || top[1].ID != 3 {
		t.Fatalf("top by rating wrong: %+v", top)
	}

	top = TopProducts(products, TopByReviews, 10)
	if top[0].ID != 1 {
		t.Fatalf("top by reviews wrong: %+v", top)
	}

	top = TopProducts(products, TopByPrice, 0) // default limit
	if len(top) != 3 || top[0].ID != 2 {
		t.Fatalf("top by price wrong: %+v", top)
	}

	// input untouched
	if products[0].ID != 1 || products[1].ID != 2 {
		t.Fatalf("input mutated: %+v", products)
	}
}
