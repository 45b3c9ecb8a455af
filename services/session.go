package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
)

// Event names broadcast through the Notifier after each mutation.
const (
	EventSessionUpdate  = "session_update"
	EventSaleRecorded   = "sale_recorded"
	EventCatalogUpdate  = "catalog_update"
	EventCustomerUpdate = "customer_update"
)

// Notifier receives change notifications from the session. The websocket hub
// implements it; tests pass a recorder or nil.
type Notifier interface {
	Notify(event string, data interface{})
}

// OrderSession owns the set of concurrently open orders and the active
// selection. All operations take the single session mutex: every compound
// operation assumes read-modify-write atomicity on the active order.
//
// Invalid inputs (unknown ids, non-positive quantities, empty-cart checkout)
// are silent no-ops rather than errors; the session is total over its input
// domain.
type OrderSession struct {
	mu             sync.Mutex
	orders         []models.Order
	activeID       string
	customerSearch string
	pricing        Pricing
	ledger         *SalesLedger
	notifier       Notifier
}

// NewOrderSession starts a session with one empty take-away order. The set
// of open orders never becomes empty afterwards.
func NewOrderSession(pricing Pricing, ledger *SalesLedger, notifier Notifier) *OrderSession {
	s := &OrderSession{
		pricing:  pricing,
		ledger:   ledger,
		notifier: notifier,
	}
	first := newOrder(1)
	s.orders = []models.Order{first}
	s.activeID = first.ID
	return s
}

func newOrder(n int) models.Order {
	return models.Order{
		ID:        uuid.NewString(),
		Label:     fmt.Sprintf("Order %d", n),
		Items:     []models.CartItem{},
		Type:      models.OrderTakeAway,
		CreatedAt: time.Now(),
	}
}

// SessionSnapshot is the read view handed to the presentation layer and to
// change subscribers.
type SessionSnapshot struct {
	Orders         []models.Order `json:"orders"`
	ActiveID       string         `json:"active_id"`
	CustomerSearch string         `json:"customer_search"`
	Subtotal       float64        `json:"subtotal"`
	Tax            float64        `json:"tax"`
	Total          float64        `json:"total"`
}

func (s *OrderSession) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *OrderSession) snapshotLocked() SessionSnapshot {
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)

	subtotal := CartSubtotal(s.activeLocked().Items)
	return SessionSnapshot{
		Orders:         orders,
		ActiveID:       s.activeID,
		CustomerSearch: s.customerSearch,
		Subtotal:       subtotal,
		Tax:            s.pricing.Tax(subtotal),
		Total:          s.pricing.GrandTotal(subtotal),
	}
}

// ActiveOrder returns a copy of the order currently receiving mutations.
func (s *OrderSession) ActiveOrder() models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.activeLocked()
}

func (s *OrderSession) activeLocked() *models.Order {
	for i := range s.orders {
		if s.orders[i].ID == s.activeID {
			return &s.orders[i]
		}
	}
	// activeID always references a live order; fall back defensively.
	return &s.orders[0]
}

// updateActive is the sole mutation primitive: it applies fn to the active
// order only, leaving every other order untouched.
func (s *OrderSession) updateActive(fn func(*models.Order)) {
	fn(s.activeLocked())
}

// CreateOrder appends a fresh take-away order, makes it active and clears
// the in-progress customer search. The label is derived from the current
// open-order count, so labels can repeat after closures.
func (s *OrderSession) CreateOrder() models.Order {
	s.mu.Lock()
	order := newOrder(len(s.orders) + 1)
	s.orders = append(s.orders, order)
	s.activeID = order.ID
	s.customerSearch = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(EventSessionUpdate, snap)
	return order
}

// CloseOrder removes an order from the session. Closing the only open order
// resets it in place instead, keeping its id and label, so the session never
// reaches zero orders. Unknown ids are ignored.
func (s *OrderSession) CloseOrder(id string) {
	s.mu.Lock()
	changed := s.resolveSlotLocked(id, false)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.notify(EventSessionUpdate, snap)
	}
}

// resolveSlotLocked implements the shared close/checkout policy. When the
// targeted order is the only one open it is reset in place; freshID
// additionally assigns a new identifier so a completed order's identity is
// never reused. Otherwise the order is removed and, if it was active,
// activation falls to the new last element.
func (s *OrderSession) resolveSlotLocked(id string, freshID bool) bool {
	if len(s.orders) == 1 {
		if s.orders[0].ID != id {
			return false
		}
		order := &s.orders[0]
		order.Items = []models.CartItem{}
		order.Customer = nil
		order.Type = models.OrderTakeAway
		order.TableNum = ""
		if freshID {
			order.ID = uuid.NewString()
			s.activeID = order.ID
		}
		return true
	}

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders = append(s.orders[:i], s.orders[i+1:]...)
		if s.activeID == id {
			s.activeID = s.orders[len(s.orders)-1].ID
		}
		return true
	}
	return false
}

// SetActive switches the active pointer; unknown ids are ignored.
func (s *OrderSession) SetActive(id string) {
	s.mu.Lock()
	found := false
	for i := range s.orders {
		if s.orders[i].ID == id {
			found = true
			break
		}
	}
	if found {
		s.activeID = id
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if found {
		s.notify(EventSessionUpdate, snap)
	}
}

// AddItem snapshots the product into the active order's cart with the
// subtotal computed at add time. Non-positive quantities are ignored.
func (s *OrderSession) AddItem(product models.Product, quantity float64) (models.CartItem, bool) {
	if quantity <= 0 {
		return models.CartItem{}, false
	}

	item := models.CartItem{
		Product:  product,
		CartID:   uuid.NewString(),
		Quantity: quantity,
		Subtotal: LineSubtotal(product, quantity),
	}

	s.mu.Lock()
	s.updateActive(func(o *models.Order) {
		items := make([]models.CartItem, len(o.Items), len(o.Items)+1)
		copy(items, o.Items)
		o.Items = append(items, item)
	})
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(EventSessionUpdate, snap)
	return item, true
}

// RemoveItem drops the matching cart line from the active order; unknown
// cart ids are ignored. Removal and re-add is the only correction path for a
// wrong quantity.
func (s *OrderSession) RemoveItem(cartID string) {
	s.mu.Lock()
	s.updateActive(func(o *models.Order) {
		items := make([]models.CartItem, 0, len(o.Items))
		for _, item := range o.Items {
			if item.CartID != cartID {
				items = append(items, item)
			}
		}
		o.Items = items
	})
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(EventSessionUpdate, snap)
}

// AssignCustomer sets the active order's customer; nil clears it for a
// walk-in sale. The in-progress customer search is reset either way.
func (s *OrderSession) AssignCustomer(customer *models.Customer) {
	s.mu.Lock()
	s.updateActive(func(o *models.Order) {
		o.Customer = customer
	})
	s.customerSearch = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(EventSessionUpdate, snap)
}

// SetOrderType switches the fulfillment type. Dine-in clears the customer
// and defaults the table to "1" when none is set; take-away and delivery
// clear the table but keep the customer so it carries across a toggle.
func (s *OrderSession) SetOrderType(orderType models.OrderType) {
	if !orderType.Valid() {
		return
	}

	s.mu.Lock()
	s.updateActive(func(o *models.Order) {
		if orderType == models.OrderDineIn {
			o.Customer = nil
			if o.TableNum == "" {
				o.TableNum = "1"
			}
		} else {
			o.TableNum = ""
		}
		o.Type = orderType
	})
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(EventSessionUpdate, snap)
}

// SetTableNum sets the table designator verbatim. Only meaningful while the
// active order is dine-in; ignored otherwise.
func (s *OrderSession) SetTableNum(tableNum string) {
	s.mu.Lock()
	changed := false
	s.updateActive(func(o *models.Order) {
		if o.Type == models.OrderDineIn {
			o.TableNum = tableNum
			changed = true
		}
	})
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.notify(EventSessionUpdate, snap)
	}
}

// SetCustomerSearch tracks the in-progress customer search text so the core
// can clear it on order creation and customer assignment.
func (s *OrderSession) SetCustomerSearch(text string) {
	s.mu.Lock()
	s.customerSearch = text
	s.mu.Unlock()
}

// Checkout finalizes the active order into a Sale (total including tax),
// records it in the ledger newest-first and resolves the order slot exactly
// as CloseOrder does — except a slot reset in place receives a fresh id.
// Empty carts and unknown payment methods are no-ops.
func (s *OrderSession) Checkout(method models.PaymentMethod) (models.Sale, bool) {
	if !method.Valid() {
		return models.Sale{}, false
	}

	s.mu.Lock()
	active := s.activeLocked()
	if len(active.Items) == 0 {
		s.mu.Unlock()
		return models.Sale{}, false
	}

	items := make([]models.CartItem, len(active.Items))
	copy(items, active.Items)

	sale := models.Sale{
		ID:            uuid.NewString(),
		Date:          time.Now(),
		Items:         items,
		Total:         s.pricing.GrandTotal(CartSubtotal(items)),
		PaymentMethod: method,
		OrderType:     active.Type,
	}
	if active.Customer != nil {
		customerID := active.Customer.ID
		sale.CustomerID = &customerID
	}

	s.ledger.Record(sale)
	s.resolveSlotLocked(active.ID, true)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(EventSaleRecorded, sale)
	s.notify(EventSessionUpdate, snap)
	return sale, true
}

func (s *OrderSession) notify(event string, data interface{}) {
	if s.notifier != nil {
		s.notifier.Notify(event, data)
	}
}
