package pricing

import (
	"testing"

	"github.com/arsens-deals/storefront/internal/domain"
)

func TestEngine_Totals(t *testing.T) {
	engine := NewEngine(DefaultMarkup)

	t.Run("empty cart yields all zeros", func(t *testing.T) {
		totals := engine.Totals(nil)
		if totals.Items != 0 || totals.Shipping != 0 || totals.Markup != 0 || totals.Total != 0 {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})

	t.Run("reference cart", func(t *testing.T) {
		// [{9.99, 0.00}, {8.49, 1.50}] with 0.50 markup per line
		lines := []domain.CartLine{
			{ProductID: "p1", Price: 999, Shipping: 0},
			{ProductID: "p2", Price: 849, Shipping: 150},
		}

		totals := engine.Totals(lines)

		if totals.Items != 1848 {
			t.Errorf("expected items 1848, got %d", totals.Items)
		}
		if totals.Shipping != 150 {
			t.Errorf("expected shipping 150, got %d", totals.Shipping)
		}
		if totals.Markup != 100 {
			t.Errorf("expected markup 100, got %d", totals.Markup)
		}
		if totals.Total != 2098 {
			t.Errorf("expected total 2098, got %d", totals.Total)
		}
		if got := domain.FormatAmount(totals.Total); got != "20.98" {
			t.Errorf("expected formatted total 20.98, got %s", got)
		}
	})

	t.Run("total equals items plus shipping plus markup", func(t *testing.T) {
		carts := [][]domain.CartLine{
			{},
			{{Price: 100, Shipping: 0}},
			{{Price: 999, Shipping: 150}, {Price: 0, Shipping: 0}},
			{{Price: 1, Shipping: 1}, {Price: 2, Shipping: 2}, {Price: 3, Shipping: 3}},
			{{Price: 123456, Shipping: 789}, {Price: 1, Shipping: 99999}},
		}

		for _, lines := range carts {
			totals := engine.Totals(lines)

			var items, shipping int64
			for _, l := range lines {
				items += l.Price
				shipping += l.Shipping
			}
			want := items + shipping + int64(len(lines))*DefaultMarkup

			if totals.Total != want {
				t.Errorf("cart %v: total = %d, want %d", lines, totals.Total, want)
			}
			if totals.Markup != int64(len(lines))*DefaultMarkup {
				t.Errorf("cart %v: markup = %d, want %d", lines, totals.Markup, int64(len(lines))*DefaultMarkup)
			}
		}
	})

	t.Run("custom markup", func(t *testing.T) {
		custom := NewEngine(125)
		totals := custom.Totals([]domain.CartLine{{Price: 100}, {Price: 100}})
		if totals.Markup != 250 {
			t.Errorf("expected markup 250, got %d", totals.Markup)
		}
		if totals.Total != 450 {
			t.Errorf("expected total 450, got %d", totals.Total)
		}
	})
}

func TestEngine_UnitPrice(t *testing.T) {
	engine := NewEngine(DefaultMarkup)

	p := domain.Product{ID: "p2", Price: 849, Shipping: 150}
	if got := engine.UnitPrice(p); got != 1049 {
		t.Errorf("expected unit price 1049, got %d", got)
	}

	t.Run("strictly above base price when shipping or markup is nonzero", func(t *testing.T) {
		products := []domain.Product{
			{Price: 999, Shipping: 0},
			{Price: 849, Shipping: 150},
			{Price: 0, Shipping: 1},
		}
		for _, p := range products {
			if got := engine.UnitPrice(p); got <= p.Price {
				t.Errorf("unit price %d not above base price %d", got, p.Price)
			}
		}
	})

	t.Run("equals base price with zero markup and shipping", func(t *testing.T) {
		free := NewEngine(0)
		p := domain.Product{Price: 500, Shipping: 0}
		if got := free.UnitPrice(p); got != 500 {
			t.Errorf("expected 500, got %d", got)
		}
	})
}
