package pricing

import "github.com/arsens-deals/storefront/internal/domain"

// DefaultMarkup is the flat per-line margin in cents, hidden from the customer.
const DefaultMarkup int64 = 50

// Engine computes cart totals and customer-facing unit prices. It is a pure
// function of its inputs; all amounts are in cents.
type Engine struct {
	markup int64
}

func NewEngine(markup int64) *Engine {
	return &Engine{markup: markup}
}

func (e *Engine) Markup() int64 {
	return e.markup
}

// Totals sums item prices and shipping costs and adds the flat markup per
// line. An empty cart yields all-zero totals.
func (e *Engine) Totals(lines []domain.CartLine) domain.OrderTotals {
	var items, shipping int64
	for _, line := range lines {
		items += line.Price
		shipping += line.Shipping
	}

	markup := int64(len(lines)) * e.markup

	return domain.OrderTotals{
		Items:    items,
		Shipping: shipping,
		Markup:   markup,
		Total:    items + shipping + markup,
	}
}

// UnitPrice is what the customer sees on a product card: base price plus
// shipping plus the markup.
func (e *Engine) UnitPrice(p domain.Product) int64 {
	return p.Price + p.Shipping + e.markup
}
