package services

import (
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
)

// UnitGram is the reserved weight unit: quantities are entered in grams and
// the product price is per kilogram. Every other unit is a discrete count.
const UnitGram = "gram"

// DefaultTaxRate is applied when no rate is configured.
const DefaultTaxRate = 0.05

// LineSubtotal computes the price of a single cart line. Callers are
// responsible for rejecting non-positive quantities before adding to a cart.
func LineSubtotal(product models.Product, quantity float64) float64 {
	if product.Unit == UnitGram {
		return (quantity / 1000) * product.Price
	}
	return quantity * product.Price
}

// CartSubtotal sums the stored line subtotals. The result does not depend on
// item order.
func CartSubtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

// Pricing derives tax and grand totals from a subtotal at a fixed rate.
type Pricing struct {
	TaxRate float64
}

func NewPricing(taxRate float64) Pricing {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return Pricing{TaxRate: taxRate}
}

func (p Pricing) Tax(subtotal float64) float64 {
	return subtotal * p.TaxRate
}

func (p Pricing) GrandTotal(subtotal float64) float64 {
	return subtotal * (1 + p.TaxRate)
}
