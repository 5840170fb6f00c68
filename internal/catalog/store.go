package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shopstack/catalog-api/internal/docstore"
	"github.com/shopstack/catalog-api/internal/validation"
)

// ErrNotFound is returned by id lookups that match no product.
var ErrNotFound = errors.New("product not found")

// Store owns the three collections. Each mutating operation re-reads the
// collection, modifies it in memory and writes the whole document back; a
// per-collection mutex serializes that cycle so concurrent requests within
// this process cannot interleave writes. Writers in other processes still
// race (last write wins).
type Store struct {
	docs docstore.Store

	productsMu   sync.Mutex
	categoriesMu sync.Mutex
	ordersMu     sync.Mutex

	nowFunc    func() time.Time
	newOrderID func() string
}

// NewStore creates a Store over the given document store.
func NewStore(docs docstore.Store) *Store {
	return &Store{
		docs:       docs,
		nowFunc:    time.Now,
		newOrderID: uuid.NewString,
	}
}

// load decodes a collection document into out. A missing or undecodable
// document reads as the empty collection, never as an error.
func (s *Store) load(ctx context.Context, collection string, out interface{}) error {
	data, err := s.docs.Load(ctx, collection)
	if err != nil {
		if errors.Is(err, docstore.ErrMissing) {
			return nil
		}
		return fmt.Errorf("load %s: %w", collection, err)
	}
	_ = json.Unmarshal(data, out)
	return nil
}

func (s *Store) save(ctx context.Context, collection string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := s.docs.Save(ctx, collection, data); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// Products returns the full product collection in stored order.
func (s *Store) Products(ctx context.Context) ([]Product, error) {
	products := []Product{}
	if err := s.load(ctx, docstore.CollectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct looks a product up by id.
func (s *Store) GetProduct(ctx context.Context, id int) (Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// CreateProduct appends a product built from an already validated payload.
// The id is one past the highest existing id, assigned under the collection
// lock so concurrent creates cannot collide.
func (s *Store) CreateProduct(ctx context.Context, payload validation.ProductPayload) (Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.Products(ctx)
	if err != nil {
		return Product{}, err
	}

	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	now := s.nowFunc()
	product := Product{
		ID:            maxID + 1,
		Name:          strings.TrimSpace(payload.Name),
		Description:   strings.TrimSpace(payload.Description),
		Price:         *payload.Price,
		OriginalPrice: payload.OriginalPrice,
		Category:      payload.Category,
		Badges:        []string{},
		InStock:       true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if payload.Rating != nil {
		product.Rating = *payload.Rating
	}
	if payload.Reviews != nil {
		product.Reviews = *payload.Reviews
	}
	if payload.Image != nil {
		product.Image = *payload.Image
	}
	if payload.InStock != nil {
		product.InStock = *payload.InStock
	}
	if payload.Stock != nil {
		product.Stock = *payload.Stock
	}
	if payload.Featured != nil {
		product.Featured = *payload.Featured
	}
	if payload.Badges != nil {
		product.Badges = payload.Badges
	}

	products = append(products, product)
	if err := s.save(ctx, docstore.CollectionProducts, products); err != nil {
		return Product{}, err
	}
	return product, nil
}

// UpdateProduct overwrites name, description, price, category and
// originalPrice unconditionally from the payload, and the remaining fields
// only when present. Id and createdAt never change; updatedAt always does.
func (s *Store) UpdateProduct(ctx context.Context, id int, payload validation.ProductPayload) (Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.Products(ctx)
	if err != nil {
		return Product{}, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		p := &products[i]
		p.Name = strings.TrimSpace(payload.Name)
		p.Description = strings.TrimSpace(payload.Description)
		p.Price = *payload.Price
		p.Category = payload.Category
		p.OriginalPrice = payload.OriginalPrice
		if payload.Rating != nil {
			p.Rating = *payload.Rating
		}
		if payload.Reviews != nil {
			p.Reviews = *payload.Reviews
		}
		if payload.Image != nil {
			p.Image = *payload.Image
		}
		if payload.InStock != nil {
			p.InStock = *payload.InStock
		}
		if payload.Stock != nil {
			p.Stock = *payload.Stock
		}
		if payload.Featured != nil {
			p.Featured = *payload.Featured
		}
		if payload.Badges != nil {
			p.Badges = payload.Badges
		}
		p.UpdatedAt = s.nowFunc()

		if err := s.save(ctx, docstore.CollectionProducts, products); err != nil {
			return Product{}, err
		}
		return *p, nil
	}
	return Product{}, ErrNotFound
}

// DeleteProduct removes the matching entry, preserving the relative order
// of the rest of the collection.
func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	products, err := s.Products(ctx)
	if err != nil {
		return err
	}

	remaining := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return ErrNotFound
	}
	return s.save(ctx, docstore.CollectionProducts, remaining)
}

// Categories returns all categories, each with a live product count.
func (s *Store) Categories(ctx context.Context) ([]CategoryCount, error) {
	categories := []Category{}
	if err := s.load(ctx, docstore.CollectionCategories, &categories); err != nil {
		return nil, err
	}
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		count := 0
		for _, p := range products {
			if p.Category == c.ID {
				count++
			}
		}
		out = append(out, CategoryCount{Category: c, Count: count})
	}
	return out, nil
}

// Orders returns the full order collection in insertion order.
func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	orders := []Order{}
	if err := s.load(ctx, docstore.CollectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder appends an order built from an already validated payload.
// Items and customer info are copied verbatim; the status is always
// "pending" and nothing in this system ever changes it.
func (s *Store) CreateOrder(ctx context.Context, payload validation.OrderPayload) (Order, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	orders, err := s.Orders(ctx)
	if err != nil {
		return Order{}, err
	}

	now := s.nowFunc()
	order := Order{
		ID:           s.newOrderID(),
		Items:        payload.Items,
		Subtotal:     payload.Subtotal,
		Shipping:     payload.Shipping,
		Tax:          payload.Tax,
		Total:        *payload.Total,
		CustomerInfo: payload.CustomerInfo,
		Status:       OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if order.CustomerInfo == nil {
		order.CustomerInfo = map[string]interface{}{}
	}

	orders = append(orders, order)
	if err := s.save(ctx, docstore.CollectionOrders, orders); err != nil {
		return Order{}, err
	}
	return order, nil
}
