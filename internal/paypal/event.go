package paypal

import (
	"encoding/json"
	"fmt"
)

const EventPaymentCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"

// DefaultPayerName is used when the event carries no payer given name.
const DefaultPayerName = "Customer"

// WebhookEvent is the validated shape of an inbound PayPal event payload.
type WebhookEvent struct {
	ID        string `json:"id"`
	EventType string `json:"event_type"`
	Resource  struct {
		ID     string `json:"id"`
		Amount struct {
			Value        string `json:"value"`
			CurrencyCode string `json:"currency_code"`
		} `json:"amount"`
		SupplementaryData struct {
			RelatedIDs struct {
				OrderID string `json:"order_id"`
			} `json:"related_ids"`
		} `json:"supplementary_data"`
		Payer struct {
			Name struct {
				GivenName string `json:"given_name"`
			} `json:"name"`
		} `json:"payer"`
	} `json:"resource"`
}

// ParseWebhookEvent decodes and validates an event payload. Events without a
// type tag are rejected rather than propagated.
func ParseWebhookEvent(raw []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	if event.EventType == "" {
		return nil, fmt.Errorf("webhook event missing event_type")
	}
	return &event, nil
}

// OrderID prefers the related order id and falls back to the resource's own id.
func (e *WebhookEvent) OrderID() string {
	if id := e.Resource.SupplementaryData.RelatedIDs.OrderID; id != "" {
		return id
	}
	return e.Resource.ID
}

// PayerName returns the payer's given name or a generic fallback.
func (e *WebhookEvent) PayerName() string {
	if name := e.Resource.Payer.Name.GivenName; name != "" {
		return name
	}
	return DefaultPayerName
}
