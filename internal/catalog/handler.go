package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/arsens-deals/storefront/internal/domain"
	"github.com/arsens-deals/storefront/internal/pricing"
)

type Handler struct {
	store         Store
	engine        *pricing.Engine
	adminPassword string
	logger        *slog.Logger
}

func NewHandler(store Store, engine *pricing.Engine, adminPassword string, logger *slog.Logger) *Handler {
	return &Handler{
		store:         store,
		engine:        engine,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

type productResponse struct {
	domain.Product
	DisplayPrice int64 `json:"display_price"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, productResponse{Product: p, DisplayPrice: h.engine.UnitPrice(p)})
	}

	h.logger.Info("products listed", "count", len(result))
	h.writeJSON(w, http.StatusOK, result)
}

type createProductRequest struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Shipping string `json:"shipping"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.writeError(w, http.StatusUnauthorized, "invalid admin password")
		return
	}

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.Image == "" {
		h.writeError(w, http.StatusBadRequest, "title and image are required")
		return
	}

	price, err := domain.ParseAmount(req.Price)
	if err != nil || price < 0 {
		h.writeError(w, http.StatusBadRequest, "invalid price")
		return
	}

	shipping := int64(0)
	if req.Shipping != "" {
		shipping, err = domain.ParseAmount(req.Shipping)
		if err != nil || shipping < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid shipping")
			return
		}
	}

	product := domain.Product{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Image:    req.Image,
		Price:    price,
		Shipping: shipping,
	}

	if err := h.store.Add(r.Context(), product); err != nil {
		h.logger.Error("failed to add product", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("product added", "product_id", product.ID, "title", product.Title)
	h.writeJSON(w, http.StatusCreated, productResponse{Product: product, DisplayPrice: h.engine.UnitPrice(product)})
}

func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		h.writeError(w, http.StatusUnauthorized, "invalid admin password")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing product id")
		return
	}

	if err := h.store.Remove(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to remove product", "error", err, "product_id", id)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("product removed", "product_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) authorized(r *http.Request) bool {
	return h.adminPassword != "" && r.Header.Get("X-Admin-Password") == h.adminPassword
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
