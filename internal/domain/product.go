package domain

import "time"

type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Shipping int64  `json:"shipping"`
}

// CartLine is a snapshot of a product taken when it was added to the cart.
// Removing the product from the catalog does not touch existing lines.
type CartLine struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Shipping  int64  `json:"shipping"`
}

func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.Image,
		Price:     p.Price,
		Shipping:  p.Shipping,
	}
}

type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
}

// OrderTotals is always recomputed from the current cart, never stored.
type OrderTotals struct {
	Items    int64 `json:"items"`
	Shipping int64 `json:"shipping"`
	Markup   int64 `json:"markup"`
	Total    int64 `json:"total"`
}
