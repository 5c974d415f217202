package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/arsens-deals/storefront/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("lists seeded products in order", func(t *testing.T) {
		store := NewMemoryStore(DemoProducts()...)

		products, err := store.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 3 {
			t.Fatalf("expected 3 products, got %d", len(products))
		}
		if products[0].ID != "p1" || products[2].ID != "p3" {
			t.Errorf("unexpected order: %v", products)
		}
	})

	t.Run("get returns ErrNotFound for unknown id", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("add then get returns a copy", func(t *testing.T) {
		store := NewMemoryStore()

		p := domain.Product{ID: "p9", Title: "Phone Stand", Image: "img", Price: 499, Shipping: 100}
		if err := store.Add(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx, "p9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *got != p {
			t.Errorf("got %+v, want %+v", *got, p)
		}

		// Mutating the returned product must not affect the store.
		got.Price = 1
		again, _ := store.Get(ctx, "p9")
		if again.Price != 499 {
			t.Errorf("store mutated through returned pointer")
		}
	})

	t.Run("remove deletes and reports missing", func(t *testing.T) {
		store := NewMemoryStore(DemoProducts()...)

		if err := store.Remove(ctx, "p2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		products, _ := store.List(ctx)
		if len(products) != 2 {
			t.Fatalf("expected 2 products after removal, got %d", len(products))
		}

		if err := store.Remove(ctx, "p2"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound on second removal, got %v", err)
		}
	})
}
