package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopstack/catalog-api/internal/docstore"
)

func floatPtr(f float64) *float64 { return &f }

func (s *Store) seedProducts() []Product {
	now := s.nowFunc()
	return []Product{
		{
			ID:            1,
			Name:          "Wireless Bluetooth Headphones",
			Description:   "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Price:         99.99,
			OriginalPrice: floatPtr(129.99),
			Category:      "electronics",
			Rating:        4.5,
			Reviews:       1250,
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			InStock:       true,
			Stock:         50,
			Featured:      true,
			Badges:        []string{"sale", "featured"},
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:          2,
			Name:        "Smartphone Case",
			Description: "Durable protective case for smartphones with wireless charging compatibility.",
			Price:       24.99,
			Category:    "electronics",
			Rating:      4.2,
			Reviews:     890,
			Image:       "https://images.unsplash.com/photo-1556656793-08538906a9f8?w=400&h=300&fit=crop",
			InStock:     true,
			Stock:       100,
			Badges:      []string{"new"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          3,
			Name:        "Cotton T-Shirt",
			Description: "Comfortable 100% cotton t-shirt available in multiple colors and sizes.",
			Price:       19.99,
			Category:    "clothing",
			Rating:      4.0,
			Reviews:     456,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
			InStock:     true,
			Stock:       200,
			Badges:      []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func (s *Store) seedCategories() []Category {
	now := s.nowFunc()
	return []Category{
		{
			ID:          "electronics",
			Name:        "Electronics",
			Description: "Latest gadgets and electronic devices",
			Image:       "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=300&fit=crop",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "clothing",
			Name:        "Clothing & Accessories",
			Description: "Fashion and lifestyle products",
			Image:       "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=300&fit=crop",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "home",
			Name:        "Home & Garden",
			Description: "Everything for your home and garden",
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "books",
			Name:        "Books",
			Description: "Educational and entertainment books",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// Seed writes the stock catalog into any collection that has never been
// persisted. Existing collections are left alone, so this is safe to call
// on every startup.
func (s *Store) Seed(ctx context.Context) error {
	if missing, err := s.collectionMissing(ctx, docstore.CollectionProducts); err != nil {
		return err
	} else if missing {
		if err := s.save(ctx, docstore.CollectionProducts, s.seedProducts()); err != nil {
			return err
		}
	}

	if missing, err := s.collectionMissing(ctx, docstore.CollectionCategories); err != nil {
		return err
	} else if missing {
		if err := s.save(ctx, docstore.CollectionCategories, s.seedCategories()); err != nil {
			return err
		}
	}

	if missing, err := s.collectionMissing(ctx, docstore.CollectionOrders); err != nil {
		return err
	} else if missing {
		if err := s.save(ctx, docstore.CollectionOrders, []Order{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) collectionMissing(ctx context.Context, collection string) (bool, error) {
	_, err := s.docs.Load(ctx, collection)
	if errors.Is(err, docstore.ErrMissing) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", collection, err)
	}
	return false, nil
}
