package query

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/shopstack/catalog-api/internal/catalog"
)

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Wireless Headphones", Description: "noise cancelling", Category: "electronics", Price: 99.99, Rating: 4.5},
		{ID: 2, Name: "Phone Case", Description: "durable case", Category: "electronics", Price: 24.99, Rating: 4.2},
		{ID: 3, Name: "Cotton T-Shirt", Description: "comfortable cotton", Category: "clothing", Price: 19.99, Rating: 4.0},
		{ID: 4, Name: "Desk Lamp", Description: "adjustable lamp", Category: "home", Price: 34.99, Rating: 4.2},
	}
}

func ids(products []catalog.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_NoFilter_PreservesOrder(t *testing.T) {
	products := sampleProducts()
	got := Apply(products, Filter{})
	if !reflect.DeepEqual(ids(got), []int{1, 2, 3, 4}) {
		t.Fatalf("expected original order, got %v", ids(got))
	}
}

func TestApply_CategoryFilter(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, Filter{Category: "electronics"})
	if !reflect.DeepEqual(ids(got), []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", ids(got))
	}

	// "all" and empty both disable the stage
	for _, cat := range []string{"", "all"} {
		got = Apply(products, Filter{Category: cat})
		if len(got) != len(products) {
			t.Fatalf("category %q should not filter, got %d products", cat, len(got))
		}
	}
}

func TestApply_PriceBounds(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, Filter{MinPrice: 25})
	if !reflect.DeepEqual(ids(got), []int{1, 4}) {
		t.Fatalf("minPrice 25: expected [1 4], got %v", ids(got))
	}

	got = Apply(products, Filter{MaxPrice: 25})
	if !reflect.DeepEqual(ids(got), []int{2, 3}) {
		t.Fatalf("maxPrice 25: expected [2 3], got %v", ids(got))
	}

	// bounds are inclusive
	got = Apply(products, Filter{MinPrice: 24.99, MaxPrice: 24.99})
	if !reflect.DeepEqual(ids(got), []int{2}) {
		t.Fatalf("expected [2], got %v", ids(got))
	}
}

func TestApply_MinRating(t *testing.T) {
	got := Apply(sampleProducts(), Filter{MinRating: 4.2})
	if !reflect.DeepEqual(ids(got), []int{1, 2, 4}) {
		t.Fatalf("expected [1 2 4], got %v", ids(got))
	}
}

func TestApply_Search_CaseInsensitive_AcrossFields(t *testing.T) {
	products := sampleProducts()

	// name match
	got := Apply(products, Filter{Search: "HEADPHONES"})
	if !reflect.DeepEqual(ids(got), []int{1}) {
		t.Fatalf("expected [1], got %v", ids(got))
	}

	// description match
	got = Apply(products, Filter{Search: "cotton"})
	if !reflect.DeepEqual(ids(got), []int{3}) {
		t.Fatalf("expected [3], got %v", ids(got))
	}

	// category match
	got = Apply(products, Filter{Search: "electron"})
	if !reflect.DeepEqual(ids(got), []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", ids(got))
	}
}

func TestApply_SortModes(t *testing.T) {
	products := sampleProducts()

	got := Apply(products, Filter{Sort: SortName})
	if !reflect.DeepEqual(ids(got), []int{3, 4, 2, 1}) {
		t.Fatalf("name sort: got %v", ids(got))
	}

	got = Apply(products, Filter{Sort: SortPriceLow})
	if !reflect.DeepEqual(ids(got), []int{3, 2, 4, 1}) {
		t.Fatalf("price-low sort: got %v", ids(got))
	}

	got = Apply(products, Filter{Sort: SortPriceHigh})
	if !reflect.DeepEqual(ids(got), []int{1, 4, 2, 3}) {
		t.Fatalf("price-high sort: got %v", ids(got))
	}
}

func TestApply_SortStability(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "A", Price: 10, Rating: 4},
		{ID: 2, Name: "B", Price: 5, Rating: 4},
	}

	got := Apply(products, Filter{Sort: SortPriceLow})
	if !reflect.DeepEqual(ids(got), []int{2, 1}) {
		t.Fatalf("price-low: expected [2 1], got %v", ids(got))
	}

	// equal ratings keep original relative order
	got = Apply(products, Filter{Sort: SortRating})
	if !reflect.DeepEqual(ids(got), []int{1, 2}) {
		t.Fatalf("rating tie: expected [1 2], got %v", ids(got))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	want := ids(products)
	Apply(products, Filter{Sort: SortPriceHigh, Category: "electronics"})
	if !reflect.DeepEqual(ids(products), want) {
		t.Fatalf("input mutated: %v", ids(products))
	}
}

func TestParseFilter_InvalidNumericDisablesStage(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "abc")

	f := ParseFilter(values)
	if f.MinPrice != 0 {
		t.Fatalf("expected invalid minPrice to parse as 0, got %v", f.MinPrice)
	}

	// identical behavior to no filters at all
	products := sampleProducts()
	got := Apply(products, f)
	want := Apply(products, Filter{})
	if !reflect.DeepEqual(ids(got), ids(want)) {
		t.Fatalf("invalid numeric filter must behave like absent filter, got %v want %v", ids(got), ids(want))
	}
}

func TestParseFilter_ReadsAllKeys(t *testing.T) {
	values := url.Values{}
	values.Set("category", "electronics")
	values.Set("minPrice", "10")
	values.Set("maxPrice", "100")
	values.Set("minRating", "4")
	values.Set("search", "case")
	values.Set("sort", "price-low")
	values.Set("unrecognized", "ignored")

	got := ParseFilter(values)
	want := Filter{Category: "electronics", MinPrice: 10, MaxPrice: 100, MinRating: 4, Search: "case", Sort: "price-low"}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestApply_RelaxingFilterNeverShrinksResult(t *testing.T) {
	products := sampleProducts()
	full := Filter{Category: "electronics", MinPrice: 20, MinRating: 4.2}
	relaxed := []Filter{
		{MinPrice: 20, MinRating: 4.2},
		{Category: "electronics", MinRating: 4.2},
		{Category: "electronics", MinPrice: 20},
	}

	base := len(Apply(products, full))
	for i, f := range relaxed {
		if n := len(Apply(products, f)); n < base {
			t.Fatalf("relaxed filter %d returned %d products, fewer than %d", i, n, base)
		}
	}
}

func TestApply_EmptyCollection(t *testing.T) {
	got := Apply(nil, Filter{Category: "electronics", Sort: SortName})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	if got == nil {
		t.Fatal("expected non-nil empty slice")
	}
}
