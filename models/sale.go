package models

import (
	"time"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentSplit PaymentMethod = "split"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentSplit:
		return true
	}
	return false
}

// Sale is an immutable record produced at checkout. CustomerID is nil for an
// anonymous cash sale.
type Sale struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CustomerID    *string       `json:"customer_id,omitempty"`
	OrderType     OrderType     `json:"order_type"`
}
