package models

import (
	"time"
)

type OrderType string

const (
	OrderTakeAway OrderType = "take_away"
	OrderDineIn   OrderType = "dine_in"
	OrderDelivery OrderType = "delivery"
)

// Valid reports whether t is one of the three fulfillment types.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTakeAway, OrderDineIn, OrderDelivery:
		return true
	}
	return false
}

// Order is one open tab in the session. Customer is nil for a walk-in/cash
// sale. TableNum is set only while Type is dine_in.
type Order struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Items     []CartItem `json:"items"`
	Customer  *Customer  `json:"customer,omitempty"`
	Type      OrderType  `json:"type"`
	TableNum  string     `json:"table_num,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
