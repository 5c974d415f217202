package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arsens-deals/storefront/internal/pricing"
)

func newTestHandler(store Store) *Handler {
	return NewHandler(
		store,
		pricing.NewEngine(pricing.DefaultMarkup),
		"hunter2",
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestHandler_HandleList(t *testing.T) {
	handler := newTestHandler(NewMemoryStore(DemoProducts()...))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var products []struct {
		ID           string `json:"id"`
		Price        int64  `json:"price"`
		Shipping     int64  `json:"shipping"`
		DisplayPrice int64  `json:"display_price"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	// display price = price + shipping + markup
	if products[1].DisplayPrice != 849+150+50 {
		t.Errorf("expected display price 1049, got %d", products[1].DisplayPrice)
	}
}

func TestHandler_HandleCreate(t *testing.T) {
	t.Run("rejects missing admin password", func(t *testing.T) {
		handler := newTestHandler(NewMemoryStore())

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title":"x","image":"y","price":"1.00"}`))
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("creates product with parsed amounts", func(t *testing.T) {
		store := NewMemoryStore()
		handler := newTestHandler(store)

		body := `{"title":"Desk Lamp","image":"https://example.com/lamp.jpg","price":"12.99","shipping":"2.50"}`
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		req.Header.Set("X-Admin-Password", "hunter2")
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var created struct {
			ID           string `json:"id"`
			Price        int64  `json:"price"`
			Shipping     int64  `json:"shipping"`
			DisplayPrice int64  `json:"display_price"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if created.ID == "" {
			t.Error("expected generated product id")
		}
		if created.Price != 1299 || created.Shipping != 250 {
			t.Errorf("unexpected amounts: price=%d shipping=%d", created.Price, created.Shipping)
		}
		if created.DisplayPrice != 1299+250+50 {
			t.Errorf("expected display price 1599, got %d", created.DisplayPrice)
		}
	})

	t.Run("rejects missing title or image", func(t *testing.T) {
		handler := newTestHandler(NewMemoryStore())

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title":"","image":"","price":"1.00"}`))
		req.Header.Set("X-Admin-Password", "hunter2")
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("rejects malformed price", func(t *testing.T) {
		handler := newTestHandler(NewMemoryStore())

		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"title":"x","image":"y","price":"cheap"}`))
		req.Header.Set("X-Admin-Password", "hunter2")
		rec := httptest.NewRecorder()

		handler.HandleCreate(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandler_HandleRemove(t *testing.T) {
	t.Run("removes existing product", func(t *testing.T) {
		store := NewMemoryStore(DemoProducts()...)
		handler := newTestHandler(store)

		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /products/{id}", handler.HandleRemove)

		req := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
		req.Header.Set("X-Admin-Password", "hunter2")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
	})

	t.Run("404 for unknown product", func(t *testing.T) {
		handler := newTestHandler(NewMemoryStore())

		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /products/{id}", handler.HandleRemove)

		req := httptest.NewRequest(http.MethodDelete, "/products/nope", nil)
		req.Header.Set("X-Admin-Password", "hunter2")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("rejects wrong admin password", func(t *testing.T) {
		handler := newTestHandler(NewMemoryStore(DemoProducts()...))

		mux := http.NewServeMux()
		mux.HandleFunc("DELETE /products/{id}", handler.HandleRemove)

		req := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
		req.Header.Set("X-Admin-Password", "wrong")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", rec.Code)
		}
	})
}
