package models

// CartItem is a product snapshot inside an order. CartID is cart-local and
// distinct from the product ID because the same product may appear on
// multiple lines. Subtotal is computed once when the line is added and is
// never re-derived afterwards.
type CartItem struct {
	Product
	CartID   string  `json:"cart_id"`
	Quantity float64 `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	Notes    string  `json:"notes,omitempty"`
}
