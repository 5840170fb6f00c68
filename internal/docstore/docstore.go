// Package docstore persists whole collections as opaque JSON documents
// keyed by collection name.
package docstore

import (
	"context"
	"errors"
)

// Collection names owned by the catalog.
const (
	CollectionProducts   = "products"
	CollectionCategories = "categories"
	CollectionOrders     = "orders"
)

// ErrMissing is returned by Load when the collection has never been written.
var ErrMissing = errors.New("collection not found")

// Store reads and writes one document per collection. Every write replaces
// the whole document; there is no partial update.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, doc []byte) error
}
