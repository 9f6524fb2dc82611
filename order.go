package restaurant

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an order.
type Status int

const (
	Active Status = iota
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Cancelled:
		return "Cancelled"
	default:
		return "unknown"
	}
}

// ParseStatus parses "active" or "cancelled", capitalized or not.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active", "Active":
		return Active, nil
	case "cancelled", "Cancelled":
		return Cancelled, nil
	default:
		return 0, fmt.Errorf("unknown order status: %q", s)
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if s != Active && s != Cancelled {
		return nil, fmt.Errorf("invalid order status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// OrderLine is a menu item as it was when the order was placed.
type OrderLine struct {
	MenuID int
	Name   string
	Price  Money
}

// Order is a placed order.
//
// Its total is computed once at creation. Only the status changes afterwards.
type Order struct {
	id       int
	lines    []OrderLine
	placedAt time.Time
	total    Money
	status   Status
}

// newOrder snapshots the items into lines and computes the total.
func newOrder(id int, items []MenuItem, at time.Time, currency string) *Order {
	lines := make([]OrderLine, 0, len(items))
	prices := make([]Money, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{MenuID: item.ID(), Name: item.Name(), Price: item.Price()})
		prices = append(prices, item.Price())
	}
	return &Order{
		id:       id,
		lines:    lines,
		placedAt: at,
		total:    Sum(currency, prices...),
		status:   Active,
	}
}

func (o *Order) ID() int             { return o.id }
func (o *Order) Lines() []OrderLine  { return o.lines }
func (o *Order) PlacedAt() time.Time { return o.placedAt }
func (o *Order) Total() Money        { return o.total }
func (o *Order) Status() Status      { return o.status }

// Cancel marks the order as cancelled. Cancelling twice is harmless.
func (o *Order) Cancel() { o.status = Cancelled }

// orderJSON is the persisted form of an order.
type orderJSON struct {
	ID       int             `json:"id"`
	PlacedAt time.Time       `json:"placedAt"`
	Status   Status          `json:"status"`
	Currency string          `json:"currency,omitempty"`
	Total    decimal.Decimal `json:"total"`
	Lines    []lineJSON      `json:"lines"`
}

type lineJSON struct {
	MenuID int             `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

func (o *Order) MarshalJSON() ([]byte, error) {
	lines := make([]lineJSON, 0, len(o.lines))
	for _, l := range o.lines {
		lines = append(lines, lineJSON{MenuID: l.MenuID, Name: l.Name, Price: l.Price.Amount()})
	}
	var w jsonObjectWriter
	w.Append("id", o.id)
	w.Append("placedAt", o.placedAt)
	w.Append("status", o.status)
	w.Optional("currency", o.total.Currency())
	w.Append("total", o.total.Amount())
	w.Append("lines", lines)
	return w.MarshalJSON()
}

func (o *Order) UnmarshalJSON(b []byte) error {
	var j orderJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if j.ID <= 0 {
		return fmt.Errorf("invalid order id %d", j.ID)
	}
	lines := make([]OrderLine, 0, len(j.Lines))
	for _, l := range j.Lines {
		lines = append(lines, OrderLine{MenuID: l.MenuID, Name: l.Name, Price: M(l.Price, j.Currency)})
	}
	*o = Order{
		id:       j.ID,
		lines:    lines,
		placedAt: j.PlacedAt,
		total:    M(j.Total, j.Currency),
		status:   j.Status,
	}
	return nil
}
