package catalog

import (
	"context"
	"errors"

	"github.com/arsens-deals/storefront/internal/domain"
)

var ErrNotFound = errors.New("product not found")

// Store abstracts the catalog backing store so it can be swapped between
// in-memory and Postgres without touching callers.
type Store interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)

	// Get returns the product with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Product, error)

	// Add inserts a new product.
	Add(ctx context.Context, p domain.Product) error

	// Remove deletes a product, returning ErrNotFound if it does not exist.
	Remove(ctx context.Context, id string) error
}

// DemoProducts is the seed catalog used when no database is configured.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Title: "Wireless Earbuds", Image: "https://via.placeholder.com/600x400", Price: 999, Shipping: 0},
		{ID: "p2", Title: "Stainless Water Bottle", Image: "https://via.placeholder.com/600x400", Price: 849, Shipping: 150},
		{ID: "p3", Title: "USB-C Charger 20W", Image: "https://via.placeholder.com/600x400", Price: 699, Shipping: 0},
	}
}
