package services

import (
	"testing"

	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/stretchr/testify/assert"
)

func TestSummaryAggregatesByType(t *testing.T) {
	l := NewSalesLedger()
	l.Record(models.Sale{ID: "s1", Total: 525, OrderType: models.OrderTakeAway})
	l.Record(models.Sale{ID: "s2", Total: 105, OrderType: models.OrderDineIn})
	l.Record(models.Sale{ID: "s3", Total: 210, OrderType: models.OrderTakeAway})

	sum := l.Summary()
	assert.Equal(t, 3, sum.Count)
	assert.InDelta(t, 840, sum.Revenue, 1e-9)
	assert.Equal(t, 2, sum.ByType[models.OrderTakeAway])
	assert.Equal(t, 1, sum.ByType[models.OrderDineIn])
	assert.Equal(t, 0, sum.ByType[models.OrderDelivery])
}

func TestEmptySummary(t *testing.T) {
	sum := NewSalesLedger().Summary()
	assert.Equal(t, 0, sum.Count)
	assert.InDelta(t, 0, sum.Revenue, 1e-9)
	assert.Empty(t, sum.ByType)
}
