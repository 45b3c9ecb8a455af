package services

import (
	"sync"

	"github.com/mohamedabdelbaset2026-cyber/POS/models"
)

// SalesLedger is the append-only in-memory log of completed checkouts,
// newest first. Entries are never mutated or removed.
type SalesLedger struct {
	mu    sync.RWMutex
	sales []models.Sale
}

func NewSalesLedger() *SalesLedger {
	return &SalesLedger{}
}

// Record prepends a sale so List returns most-recent-first.
func (l *SalesLedger) Record(sale models.Sale) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sales = append([]models.Sale{sale}, l.sales...)
}

func (l *SalesLedger) List() []models.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// LedgerSummary aggregates the session's sales for the reports view.
type LedgerSummary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
	ByType  map[models.OrderType]int `json:"by_type"`
}

func (l *SalesLedger) Summary() LedgerSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	summary := LedgerSummary{ByType: make(map[models.OrderType]int)}
	for _, sale := range l.sales {
		summary.Count++
		summary.Revenue += sale.Total
		summary.ByType[sale.OrderType]++
	}
	return summary
}
