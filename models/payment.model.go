package models

import "time"

// Payment represents the payment attached to an order
type Payment struct {
	Method string     `json:"method"` // "CARD", "TRANSFER", "KAKAOPAY"
	Amount int64      `json:"amount"`
	Status string     `json:"status"`
	PaidAt *time.Time `json:"paidAt,omitempty"`
}
