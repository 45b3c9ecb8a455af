package services

import (
	"sync"
	"testing"

	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/stretchr/testify/assert"
)

// recordingNotifier captures events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingNotifier) Notify(event string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingNotifier) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func newTestSession() (*OrderSession, *SalesLedger) {
	ledger := NewSalesLedger()
	return NewOrderSession(NewPricing(DefaultTaxRate), ledger, nil), ledger
}

func countProduct(id, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Category: "Supplies", Price: price, Unit: "piece", Stock: 100}
}

func weightProduct(id, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Category: "Fish", Price: price, Unit: UnitGram, Stock: 50, IsFresh: true}
}

func TestSessionStartsWithOneTakeAwayOrder(t *testing.T) {
	session, _ := newTestSession()
	snap := session.Snapshot()

	assert.Len(t, snap.Orders, 1)
	assert.Equal(t, "Order 1", snap.Orders[0].Label)
	assert.Equal(t, models.OrderTakeAway, snap.Orders[0].Type)
	assert.Empty(t, snap.Orders[0].Items)
	assert.Equal(t, snap.Orders[0].ID, snap.ActiveID)
}

func TestAddItemComputesLineSubtotals(t *testing.T) {
	session, ledger := newTestSession()

	// 3 pieces at 100 each, then 500 grams at 200 per kilogram.
	_, ok := session.AddItem(countProduct("p1", "Fish Seasoning", 100), 3)
	assert.True(t, ok)
	_, ok = session.AddItem(weightProduct("p2", "Tilapia Fillet", 200), 500)
	assert.True(t, ok)

	snap := session.Snapshot()
	active := session.ActiveOrder()
	assert.Len(t, active.Items, 2)
	assert.InDelta(t, 300.0, active.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 100.0, active.Items[1].Subtotal, 1e-9)
	assert.InDelta(t, 400.0, snap.Subtotal, 1e-9)
	assert.InDelta(t, 20.0, snap.Tax, 1e-9)
	assert.InDelta(t, 420.0, snap.Total, 1e-9)

	sale, ok := session.Checkout(models.PaymentCard)
	assert.True(t, ok)
	assert.InDelta(t, 420.0, sale.Total, 1e-9)
	assert.Equal(t, models.PaymentCard, sale.PaymentMethod)
	assert.Len(t, ledger.List(), 1)
	assert.Empty(t, session.ActiveOrder().Items)
}

func TestAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	session, _ := newTestSession()

	_, ok := session.AddItem(countProduct("p1", "Seasoning", 25), 0)
	assert.False(t, ok)
	_, ok = session.AddItem(countProduct("p1", "Seasoning", 25), -2)
	assert.False(t, ok)

	assert.Empty(t, session.ActiveOrder().Items)
}

func TestRemoveItem(t *testing.T) {
	session, _ := newTestSession()
	item, _ := session.AddItem(countProduct("p1", "Seasoning", 25), 1)
	session.AddItem(countProduct("p2", "Ice Box", 40), 2)

	session.RemoveItem(item.CartID)

	active := session.ActiveOrder()
	assert.Len(t, active.Items, 1)
	assert.Equal(t, "p2", active.Items[0].Product.ID)

	// Unknown cart ids are ignored.
	session.RemoveItem("no-such-line")
	assert.Len(t, session.ActiveOrder().Items, 1)
}

func TestOrdersAreIsolated(t *testing.T) {
	session, _ := newTestSession()
	first := session.Snapshot().ActiveID

	second := session.CreateOrder()
	assert.Equal(t, "Order 2", second.Label)
	session.AddItem(countProduct("p1", "Seasoning", 25), 1)
	session.SetOrderType(models.OrderDineIn)
	session.SetTableNum("7")

	session.SetActive(first)
	active := session.ActiveOrder()
	assert.Empty(t, active.Items)
	assert.Equal(t, models.OrderTakeAway, active.Type)
	assert.Empty(t, active.TableNum)

	// The second order keeps its own state while inactive.
	snap := session.Snapshot()
	for _, o := range snap.Orders {
		if o.ID == second.ID {
			assert.Len(t, o.Items, 1)
			assert.Equal(t, models.OrderDineIn, o.Type)
			assert.Equal(t, "7", o.TableNum)
		}
	}
}

func TestSetActiveIgnoresUnknownID(t *testing.T) {
	session, _ := newTestSession()
	want := session.Snapshot().ActiveID

	session.SetActive("no-such-order")
	assert.Equal(t, want, session.Snapshot().ActiveID)
}

func TestDineInTableCoupling(t *testing.T) {
	session, _ := newTestSession()
	customer := &models.Customer{ID: "c1", Name: "Ahmed Ali"}
	session.AssignCustomer(customer)

	// Dine-in clears the customer and defaults the table to "1".
	session.SetOrderType(models.OrderDineIn)
	active := session.ActiveOrder()
	assert.Nil(t, active.Customer)
	assert.Equal(t, "1", active.TableNum)

	session.SetTableNum("12")
	assert.Equal(t, "12", session.ActiveOrder().TableNum)

	// Leaving dine-in clears the table.
	session.SetOrderType(models.OrderDelivery)
	active = session.ActiveOrder()
	assert.Equal(t, models.OrderDelivery, active.Type)
	assert.Empty(t, active.TableNum)

	// Table designators only apply to dine-in orders.
	session.SetTableNum("3")
	assert.Empty(t, session.ActiveOrder().TableNum)
}

func TestCustomerSurvivesTakeAwayDeliveryToggle(t *testing.T) {
	session, _ := newTestSession()
	customer := &models.Customer{ID: "c1", Name: "Sara Samir"}
	session.AssignCustomer(customer)

	session.SetOrderType(models.OrderDelivery)
	assert.NotNil(t, session.ActiveOrder().Customer)

	session.SetOrderType(models.OrderTakeAway)
	assert.NotNil(t, session.ActiveOrder().Customer)
	assert.Equal(t, "c1", session.ActiveOrder().Customer.ID)
}

func TestSetOrderTypeRejectsUnknownValue(t *testing.T) {
	session, _ := newTestSession()
	session.SetOrderType(models.OrderType("drive_through"))
	assert.Equal(t, models.OrderTakeAway, session.ActiveOrder().Type)
}

func TestCloseOnlyOrderResetsInPlace(t *testing.T) {
	session, _ := newTestSession()
	before := session.ActiveOrder()

	session.AddItem(countProduct("p1", "Seasoning", 25), 2)
	session.AssignCustomer(&models.Customer{ID: "c1", Name: "Ahmed Ali"})
	session.SetOrderType(models.OrderDelivery)

	session.CloseOrder(before.ID)

	snap := session.Snapshot()
	assert.Len(t, snap.Orders, 1)
	after := snap.Orders[0]
	assert.Equal(t, before.ID, after.ID, "reset keeps the order id")
	assert.Equal(t, before.Label, after.Label)
	assert.Empty(t, after.Items)
	assert.Nil(t, after.Customer)
	assert.Equal(t, models.OrderTakeAway, after.Type)
	assert.Empty(t, after.TableNum)
}

func TestCloseOrderRemovesAndActivatesLast(t *testing.T) {
	session, _ := newTestSession()
	second := session.CreateOrder()
	third := session.CreateOrder()

	session.SetActive(second.ID)
	session.CloseOrder(second.ID)

	snap := session.Snapshot()
	assert.Len(t, snap.Orders, 2)
	assert.Equal(t, third.ID, snap.ActiveID, "activation falls to the last order")
	for _, o := range snap.Orders {
		assert.NotEqual(t, second.ID, o.ID)
	}
}

func TestCloseInactiveOrderKeepsActivePointer(t *testing.T) {
	session, _ := newTestSession()
	first := session.Snapshot().ActiveID
	second := session.CreateOrder()

	session.SetActive(first)
	session.CloseOrder(second.ID)

	snap := session.Snapshot()
	assert.Len(t, snap.Orders, 1)
	assert.Equal(t, first, snap.ActiveID)
}

func TestCloseOrderIgnoresUnknownID(t *testing.T) {
	session, _ := newTestSession()
	session.CloseOrder("no-such-order")
	assert.Len(t, session.Snapshot().Orders, 1)
}

func TestLabelsDeriveFromOpenOrderCount(t *testing.T) {
	session, _ := newTestSession()

	second := session.CreateOrder()
	assert.Equal(t, "Order 2", second.Label)

	session.CloseOrder(second.ID)
	again := session.CreateOrder()
	assert.Equal(t, "Order 2", again.Label, "labels can repeat after closures")
}

func TestCheckoutRecordsSaleWithTax(t *testing.T) {
	session, ledger := newTestSession()
	beforeID := session.ActiveOrder().ID

	session.AddItem(countProduct("p1", "Calamari Rings", 150), 2) // 300
	session.AddItem(weightProduct("p2", "Sea Bream", 400), 500)   // 200

	sale, ok := session.Checkout(models.PaymentCash)
	assert.True(t, ok)
	assert.InDelta(t, 525.0, sale.Total, 1e-9, "sale total includes tax")
	assert.Equal(t, models.PaymentCash, sale.PaymentMethod)
	assert.Equal(t, models.OrderTakeAway, sale.OrderType)
	assert.Nil(t, sale.CustomerID)
	assert.Len(t, sale.Items, 2)

	sales := ledger.List()
	assert.Len(t, sales, 1)
	assert.Equal(t, sale.ID, sales[0].ID)

	// The only order resets in place with a fresh identity.
	snap := session.Snapshot()
	assert.Len(t, snap.Orders, 1)
	assert.Empty(t, snap.Orders[0].Items)
	assert.NotEqual(t, beforeID, snap.Orders[0].ID, "completed order ids are never reused")
	assert.Equal(t, snap.Orders[0].ID, snap.ActiveID)
}

func TestCheckoutAttachesCustomer(t *testing.T) {
	session, ledger := newTestSession()
	session.AssignCustomer(&models.Customer{ID: "c2", Name: "Sara Samir"})
	session.AddItem(countProduct("p1", "Seasoning", 25), 1)

	sale, ok := session.Checkout(models.PaymentCard)
	assert.True(t, ok)
	if assert.NotNil(t, sale.CustomerID) {
		assert.Equal(t, "c2", *sale.CustomerID)
	}
	assert.Len(t, ledger.List(), 1)
}

func TestCheckoutEmptyCartIsNoop(t *testing.T) {
	session, ledger := newTestSession()

	_, ok := session.Checkout(models.PaymentCash)
	assert.False(t, ok)
	assert.Empty(t, ledger.List())
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	session, ledger := newTestSession()
	session.AddItem(countProduct("p1", "Seasoning", 25), 1)

	_, ok := session.Checkout(models.PaymentMethod("barter"))
	assert.False(t, ok)
	assert.Empty(t, ledger.List())
	assert.Len(t, session.ActiveOrder().Items, 1, "cart untouched on rejected checkout")
}

func TestCheckoutRemovesOrderWhenOthersRemain(t *testing.T) {
	session, ledger := newTestSession()
	first := session.Snapshot().ActiveID

	second := session.CreateOrder()
	session.AddItem(countProduct("p1", "Seasoning", 25), 4)

	_, ok := session.Checkout(models.PaymentSplit)
	assert.True(t, ok)
	assert.Len(t, ledger.List(), 1)

	snap := session.Snapshot()
	assert.Len(t, snap.Orders, 1)
	assert.Equal(t, first, snap.Orders[0].ID)
	assert.NotEqual(t, second.ID, snap.ActiveID)
}

func TestSalesLedgerNewestFirst(t *testing.T) {
	session, ledger := newTestSession()

	session.AddItem(countProduct("p1", "Seasoning", 25), 1)
	firstSale, _ := session.Checkout(models.PaymentCash)

	session.AddItem(countProduct("p2", "Ice Box", 40), 1)
	secondSale, _ := session.Checkout(models.PaymentCard)

	sales := ledger.List()
	assert.Len(t, sales, 2)
	assert.Equal(t, secondSale.ID, sales[0].ID)
	assert.Equal(t, firstSale.ID, sales[1].ID)
}

func TestCustomerSearchClearedOnNewOrderAndAssignment(t *testing.T) {
	session, _ := newTestSession()

	session.SetCustomerSearch("ahm")
	assert.Equal(t, "ahm", session.Snapshot().CustomerSearch)

	session.CreateOrder()
	assert.Empty(t, session.Snapshot().CustomerSearch)

	session.SetCustomerSearch("sar")
	session.AssignCustomer(&models.Customer{ID: "c2", Name: "Sara Samir"})
	assert.Empty(t, session.Snapshot().CustomerSearch)
}

func TestAtLeastOneOrderAlways(t *testing.T) {
	session, _ := newTestSession()

	for i := 0; i < 5; i++ {
		order := session.CreateOrder()
		session.CloseOrder(order.ID)
		assert.GreaterOrEqual(t, len(session.Snapshot().Orders), 1)
	}

	// Close everything down to the floor.
	for _, o := range session.Snapshot().Orders {
		session.CloseOrder(o.ID)
	}
	assert.Len(t, session.Snapshot().Orders, 1)
}

func TestNotifierReceivesSaleAndSessionEvents(t *testing.T) {
	rec := &recordingNotifier{}
	ledger := NewSalesLedger()
	session := NewOrderSession(NewPricing(DefaultTaxRate), ledger, rec)

	session.AddItem(countProduct("p1", "Seasoning", 25), 1)
	session.Checkout(models.PaymentCash)

	events := rec.Events()
	assert.Contains(t, events, EventSessionUpdate)
	assert.Contains(t, events, EventSaleRecorded)
}
