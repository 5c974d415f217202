package domain

import "time"

type PaymentCapturedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Payer     string    `json:"payer"`
	Timestamp time.Time `json:"timestamp"`
}
