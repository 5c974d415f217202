package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/arsens-deals/storefront/internal/domain"
	"github.com/arsens-deals/storefront/internal/paypal"
)

// Verifier authenticates an inbound webhook delivery against the payment
// provider.
type Verifier interface {
	VerifyWebhookSignature(ctx context.Context, headers paypal.SignatureHeaders, rawBody []byte) (bool, error)
}

// Notifier delivers a human-readable payment notification. Failures must
// never fail the webhook response.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// Publisher emits payment events for downstream fulfillment.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type Handler struct {
	verifier  Verifier
	notifier  Notifier
	publisher Publisher // nil when no broker is configured
	seen      *SeenStore
	logger    *slog.Logger
}

func NewHandler(verifier Verifier, notifier Notifier, publisher Publisher, seen *SeenStore, logger *slog.Logger) *Handler {
	return &Handler{
		verifier:  verifier,
		notifier:  notifier,
		publisher: publisher,
		seen:      seen,
		logger:    logger,
	}
}

// HandlePayPal processes one webhook delivery. The body must stay raw until
// verification: the signature covers the exact bytes on the wire.
func (h *Handler) HandlePayPal(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read webhook body", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	headers, ok := paypal.SignatureHeadersFromRequest(r)
	if !ok {
		h.logger.Warn("webhook rejected, missing signature headers")
		h.writeError(w, http.StatusBadRequest, "missing signature headers")
		return
	}

	event, err := paypal.ParseWebhookEvent(body)
	if err != nil {
		h.logger.Warn("webhook rejected, malformed event payload", "error", err)
		h.writeError(w, http.StatusBadRequest, "malformed event payload")
		return
	}

	verified, err := h.verifier.VerifyWebhookSignature(r.Context(), headers, body)
	if err != nil {
		h.logger.Error("webhook verification failed upstream", "error", err, "event_id", event.ID)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !verified {
		h.logger.Warn("webhook rejected, invalid signature", "event_id", event.ID)
		h.writeError(w, http.StatusBadRequest, "invalid signature")
		return
	}

	// PayPal retries deliveries it considers failed; a replayed event id is
	// acknowledged without re-notifying.
	if !h.seen.MarkSeen(event.ID) {
		h.logger.Info("duplicate webhook delivery acknowledged", "event_id", event.ID)
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "duplicate"})
		return
	}

	if event.EventType == paypal.EventPaymentCaptureCompleted {
		h.handleCaptureCompleted(r.Context(), event)
	} else {
		h.logger.Info("verified event ignored", "event_id", event.ID, "event_type", event.EventType)
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleCaptureCompleted(ctx context.Context, event *paypal.WebhookEvent) {
	amount := event.Resource.Amount.Value
	currency := event.Resource.Amount.CurrencyCode
	if amount == "" || currency == "" {
		h.logger.Warn("capture event missing amount, skipping notification", "event_id", event.ID)
		return
	}

	orderID := event.OrderID()
	payer := event.PayerName()

	h.logger.Info("payment capture completed",
		"event_id", event.ID, "order_id", orderID, "amount", amount, "currency", currency)

	message := fmt.Sprintf("Paid order received: %s %s by %s. Order ID: %s", amount, currency, payer, orderID)
	if err := h.notifier.Send(ctx, message); err != nil {
		h.logger.Error("failed to send payment notification", "error", err, "event_id", event.ID)
	}

	if h.publisher != nil {
		captured := domain.PaymentCapturedEvent{
			EventID:   event.ID,
			OrderID:   orderID,
			Amount:    amount,
			Currency:  currency,
			Payer:     payer,
			Timestamp: time.Now().UTC(),
		}
		if err := h.publisher.Publish(ctx, orderID, captured); err != nil {
			h.logger.Error("failed to publish payment captured event", "error", err, "event_id", event.ID)
		}
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
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
