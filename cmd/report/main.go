// Command report prints offline analytics over a catalog data directory and
// optionally exports the collections as CSV. It reads whatever is on disk
// and never seeds or mutates the store.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/shopstack/catalog-api/internal/analytics"
	"github.com/shopstack/catalog-api/internal/catalog"
	"github.com/shopstack/catalog-api/internal/docstore"
)

func main() {
	dataDir := flag.String("data", "database", "directory holding the collection JSON files")
	csvDir := flag.String("csv", "", "export products/orders/category stats as CSV into this directory")
	topBy := flag.String("top", analytics.TopByRating, "top products ordering: rating, reviews or price")
	limit := flag.Int("limit", 10, "number of top products to list")
	flag.Parse()

	ctx := context.Background()

	docs, err := docstore.NewFileStore(*dataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}
	store := catalog.NewStore(docs)

	products, err := store.Products(ctx)
	if err != nil {
		log.Fatalf("load products: %v", err)
	}
	orders, err := store.Orders(ctx)
	if err != nil {
		log.Fatalf("load orders: %v", err)
	}

	report := analytics.BuildReport(products, orders, *topBy, *limit)
	printReport(report)

	if *csvDir != "" {
		if err := exportCSV(*csvDir, products, orders); err != nil {
			log.Fatalf("export csv: %v", err)
		}
		fmt.Printf("\nCSV export written to %s\n", *csvDir)
	}
}

func printReport(r analytics.Report) {
	fmt.Println("E-COMMERCE ANALYTICS REPORT")
	fmt.Println("Generated:", time.Now().Format(time.RFC1123))
	fmt.Println()

	fmt.Println("PRODUCTS")
	fmt.Printf("  total: %d  in stock: %d  out of stock: %d  featured: %d\n",
		r.ProductStats.TotalProducts, r.ProductStats.InStockCount,
		r.ProductStats.OutOfStockCount, r.ProductStats.FeaturedCount)
	fmt.Printf("  average price: %.2f  average rating: %.2f\n",
		r.ProductStats.AveragePrice, r.ProductStats.AverageRating)

	fmt.Println("PRICES")
	fmt.Printf("  min: %.2f  max: %.2f  median: %.2f\n",
		r.PriceAnalysis.MinPrice, r.PriceAnalysis.MaxPrice, r.PriceAnalysis.MedianPrice)
	fmt.Printf("  <25: %d  25-50: %d  50-100: %d  >=100: %d\n",
		r.PriceAnalysis.Ranges.Under25, r.PriceAnalysis.Ranges.From25To50,
		r.PriceAnalysis.Ranges.From50To100, r.PriceAnalysis.Ranges.Over100)

	fmt.Println("RATINGS")
	fmt.Printf("  average: %.2f  median: %.2f\n",
		r.RatingAnalysis.AverageRating, r.RatingAnalysis.MedianRating)
	d := r.RatingAnalysis.Distribution
	fmt.Printf("  5*: %d  4*: %d  3*: %d  2*: %d  1*: %d\n",
		d.FiveStars, d.FourStars, d.ThreeStars, d.TwoStars, d.OneStar)

	fmt.Println("INVENTORY")
	fmt.Printf("  units: %d  value: %.2f  low stock: %d  out of stock: %d\n",
		r.Inventory.TotalStockUnits, r.Inventory.TotalStockValue,
		r.Inventory.LowStockCount, r.Inventory.OutOfStockCount)
	for _, name := range r.Inventory.LowStockProducts {
		fmt.Printf("    low: %s\n", name)
	}

	fmt.Println("SALES")
	fmt.Printf("  orders: %d  revenue: %.2f  avg order value: %.2f\n",
		r.Sales.TotalOrders, r.Sales.TotalRevenue, r.Sales.AverageOrderValue)
	months := make([]string, 0, len(r.Sales.MonthlyRevenue))
	for m := range r.Sales.MonthlyRevenue {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		fmt.Printf("    %s: %.2f\n", m, r.Sales.MonthlyRevenue[m])
	}

	fmt.Println("TOP PRODUCTS")
	for i, p := range r.TopProducts {
		fmt.Printf("  %2d. %s (price %.2f, rating %.1f, %d reviews)\n",
			i+1, p.Name, p.Price, p.Rating, p.Reviews)
	}
}

func exportCSV(dir string, products []catalog.Product, orders []catalog.Order) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	productRows := [][]string{{"id", "name", "category", "price", "rating", "reviews", "stock", "inStock", "featured"}}
	categoryCounts := map[string]int{}
	for _, p := range products {
		categoryCounts[p.Category]++
		productRows = append(productRows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.FormatFloat(p.Rating, 'f', 1, 64),
			strconv.Itoa(p.Reviews),
			strconv.Itoa(p.Stock),
			strconv.FormatBool(p.InStock),
			strconv.FormatBool(p.Featured),
		})
	}
	if err := writeCSV(filepath.Join(dir, "products.csv"), productRows); err != nil {
		return err
	}

	orderRows := [][]string{{"id", "items", "subtotal", "shipping", "tax", "total", "status", "createdAt"}}
	for _, o := range orders {
		orderRows = append(orderRows, []string{
			o.ID,
			strconv.Itoa(len(o.Items)),
			strconv.FormatFloat(o.Subtotal, 'f', 2, 64),
			strconv.FormatFloat(o.Shipping, 'f', 2, 64),
			strconv.FormatFloat(o.Tax, 'f', 2, 64),
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			o.Status,
			o.CreatedAt.Format(time.RFC3339),
		})
	}
	if err := writeCSV(filepath.Join(dir, "orders.csv"), orderRows); err != nil {
		return err
	}

	categories := make([]string, 0, len(categoryCounts))
	for c := range categoryCounts {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	statRows := [][]string{{"category", "count"}}
	for _, c := range categories {
		statRows = append(statRows, []string{c, strconv.Itoa(categoryCounts[c])})
	}
	return writeCSV(filepath.Join(dir, "category_stats.csv"), statRows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
