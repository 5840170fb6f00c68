// Package catalog owns the product, category and order collections.
package catalog

import "time"

// Order status. Orders are recorded with this status and never transition.
const OrderStatusPending = "pending"

// Product is a catalog entry. ID is immutable once assigned.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"` // pre-discount price, display only
	Category      string    `json:"category"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Image         string    `json:"image"`
	InStock       bool      `json:"inStock"`
	Stock         int       `json:"stock"`
	Featured      bool      `json:"featured"`
	Badges        []string  `json:"badges"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Category groups products via Product.Category == Category.ID. There is no
// foreign-key enforcement; products may reference unknown categories.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryCount is a category plus its live product count. The count is
// computed on read and never persisted.
type CategoryCount struct {
	Category
	Count int `json:"count"`
}

// Order is an append-only record of a checkout. Items and customer info are
// stored verbatim from the request.
type Order struct {
	ID           string                   `json:"id"`
	Items        []map[string]interface{} `json:"items"`
	Subtotal     float64                  `json:"subtotal"`
	Shipping     float64                  `json:"shipping"`
	Tax          float64                  `json:"tax"`
	Total        float64                  `json:"total"`
	CustomerInfo map[string]interface{}   `json:"customerInfo"`
	Status       string                   `json:"status"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}
