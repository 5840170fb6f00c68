// Package query implements the product filter/sort pipeline shared by the
// HTTP API and the report tool. It is the only implementation of these
// semantics in the module.
package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shopstack/catalog-api/internal/catalog"
)

// Sort modes recognized by Apply. Anything else preserves input order.
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Filter is the fully enumerated set of recognized options. Zero values
// disable the corresponding stage, so an unset bound never filters.
type Filter struct {
	Category  string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Search    string
	Sort      string
}

// ParseFilter reads recognized query parameters into a Filter. Unrecognized
// keys are ignored. A numeric parameter that fails to parse leaves its
// field zero, which disables that stage rather than rejecting the request.
func ParseFilter(values url.Values) Filter {
	return Filter{
		Category:  values.Get("category"),
		MinPrice:  parseFloat(values.Get("minPrice")),
		MaxPrice:  parseFloat(values.Get("maxPrice")),
		MinRating: parseFloat(values.Get("minRating")),
		Search:    values.Get("search"),
		Sort:      values.Get("sort"),
	}
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// Apply runs the filter stages in fixed order (category, min price, max
// price, min rating, search, sort) and returns the surviving products.
// The input slice is never mutated; sorts are stable so equal keys keep
// their original relative order.
func Apply(products []catalog.Product, f Filter) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))

	search := strings.ToLower(f.Search)
	for _, p := range products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice != 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.MinRating != 0 && p.Rating < f.MinRating {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	return out
}

// matchesSearch reports whether the lowercased term occurs in the name,
// description or category.
func matchesSearch(p catalog.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}
