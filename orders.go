package restaurant

import (
	"iter"
	"time"

	"github.com/etnz/restaurant/date"
)

// OrderLedger is the list of placed orders, in placement order.
//
// Ids are assigned sequentially and never reused: after a reload the next id
// is one past the highest id in the ledger.
type OrderLedger struct {
	orders []*Order
	nextID int
}

// NewOrderLedger creates an empty ledger whose first order will get id 1.
func NewOrderLedger() *OrderLedger {
	return &OrderLedger{
		orders: make([]*Order, 0),
		nextID: 1,
	}
}

// Len returns the number of orders, cancelled ones included.
func (l *OrderLedger) Len() int { return len(l.orders) }

// NextID returns the id the next placed order will receive.
func (l *OrderLedger) NextID() int { return l.nextID }

// Orders returns all orders in placement order.
func (l *OrderLedger) Orders() []*Order { return l.orders }

// All iterates over orders accepted by the filter.
func (l *OrderLedger) All(accept func(*Order) bool) iter.Seq[*Order] {
	return func(yield func(*Order) bool) {
		for _, o := range l.orders {
			if accept != nil && !accept(o) {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// WithStatus returns a filter for All.
func WithStatus(s Status) func(*Order) bool {
	return func(o *Order) bool { return o.status == s }
}

// PlacedOn returns a filter for All keeping orders placed during that local day.
func PlacedOn(day date.Date) func(*Order) bool {
	return func(o *Order) bool { return day.Contains(o.placedAt) }
}

// AllOf returns a filter for All accepting orders accepted by every filter.
func AllOf(filters ...func(*Order) bool) func(*Order) bool {
	return func(o *Order) bool {
		for _, accept := range filters {
			if !accept(o) {
				return false
			}
		}
		return true
	}
}

// Place creates a new active order from the items and appends it.
func (l *OrderLedger) Place(items []MenuItem, at time.Time, currency string) *Order {
	o := newOrder(l.nextID, items, at, currency)
	l.nextID++
	l.orders = append(l.orders, o)
	return o
}

// Find returns the order with this id, or nil.
func (l *OrderLedger) Find(id int) *Order {
	for _, o := range l.orders {
		if o.id == id {
			return o
		}
	}
	return nil
}

// Cancel cancels the order with this id and reports whether it exists.
func (l *OrderLedger) Cancel(id int) (*Order, bool) {
	o := l.Find(id)
	if o == nil {
		return nil, false
	}
	o.Cancel()
	return o, true
}

// append adds already existing orders, as read from a snapshot, and reseeds the id counter.
func (l *OrderLedger) append(orders ...*Order) {
	for _, o := range orders {
		l.orders = append(l.orders, o)
		if o.id >= l.nextID {
			l.nextID = o.id + 1
		}
	}
}
