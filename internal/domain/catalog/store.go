package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Store persists catalog records
type Store interface {
	Insert(ctx context.Context, p *Product) error
	// DeleteByID removes a product; ErrNotFound if absent. The removed
	// product is returned so callers can echo its name.
	DeleteByID(ctx context.Context, id int64) (*Product, error)
	// All returns every product in insertion order
	All(ctx context.Context) ([]Product, error)
	// LastID returns the id of the most recently inserted product;
	// ok is false when the catalog is empty.
	LastID(ctx context.Context) (id int64, ok bool, err error)
	// MaxID returns the highest id present, zero when empty
	MaxID(ctx context.Context) (int64, error)
}
