package cart

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/arsens-deals/storefront/internal/catalog"
	"github.com/arsens-deals/storefront/internal/domain"
	"github.com/arsens-deals/storefront/internal/pricing"
)

type Handler struct {
	carts   *Store
	catalog catalog.Store
	engine  *pricing.Engine
	logger  *slog.Logger
}

func NewHandler(carts *Store, catalogStore catalog.Store, engine *pricing.Engine, logger *slog.Logger) *Handler {
	return &Handler{
		carts:   carts,
		catalog: catalogStore,
		engine:  engine,
		logger:  logger,
	}
}

type cartResponse struct {
	ID     string             `json:"id"`
	Lines  []domain.CartLine  `json:"lines"`
	Totals domain.OrderTotals `json:"totals"`
}

func (h *Handler) cartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		ID:     cart.ID,
		Lines:  cart.Lines,
		Totals: h.engine.Totals(cart.Lines),
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, _ *http.Request) {
	cart := h.carts.Create()
	h.logger.Info("cart created", "cart_id", cart.ID)
	h.writeJSON(w, http.StatusCreated, h.cartResponse(cart))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Get(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "cart not found")
		return
	}
	h.writeJSON(w, http.StatusOK, h.cartResponse(cart))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		h.writeError(w, http.StatusBadRequest, "missing product id")
		return
	}

	product, err := h.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to look up product", "error", err, "product_id", req.ProductID)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	cart, err := h.carts.AddLine(r.PathValue("id"), domain.NewCartLine(*product))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	h.logger.Info("cart line added", "cart_id", cart.ID, "product_id", product.ID)
	h.writeJSON(w, http.StatusOK, h.cartResponse(cart))
}

func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid line index")
		return
	}

	cart, err := h.carts.RemoveLine(r.PathValue("id"), index)
	if err != nil {
		if errors.Is(err, ErrLineOutOfRange) {
			h.writeError(w, http.StatusBadRequest, "line index out of range")
			return
		}
		h.writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	h.logger.Info("cart line removed", "cart_id", cart.ID, "index", index)
	h.writeJSON(w, http.StatusOK, h.cartResponse(cart))
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Clear(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	h.logger.Info("cart cleared", "cart_id", cart.ID)
	h.writeJSON(w, http.StatusOK, h.cartResponse(cart))
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
