package restaurant

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/etnz/restaurant/date"
)

// CollectionReport is the revenue collected on a given day.
type CollectionReport struct {
	Date  date.Date
	Total Money
}

type reportJSON struct {
	Date date.Date `json:"date"`
	amountJSON
}

func (r CollectionReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("amount", r.Total.Amount())
	w.Optional("currency", r.Total.Currency())
	return w.MarshalJSON()
}

func (r *CollectionReport) UnmarshalJSON(b []byte) error {
	var j reportJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*r = CollectionReport{Date: j.Date, Total: j.Money()}
	return nil
}

// CollectionLedger holds daily collection reports.
//
// An interactive session only reads it, reports are produced by closing a day.
type CollectionLedger struct {
	reports []CollectionReport
}

// NewCollectionLedger creates an empty ledger.
func NewCollectionLedger(reports ...CollectionReport) *CollectionLedger {
	return &CollectionLedger{reports: reports}
}

// Reports returns all reports in ledger order.
func (l *CollectionLedger) Reports() []CollectionReport { return l.reports }

// Len returns the number of reports.
func (l *CollectionLedger) Len() int { return len(l.reports) }

// Lookup returns the first report for exactly that day.
func (l *CollectionLedger) Lookup(day date.Date) (CollectionReport, bool) {
	for _, r := range l.reports {
		if r.Date.Equal(day) {
			return r, true
		}
	}
	return CollectionReport{}, false
}

// Record stores the report, replacing any report for the same day, and keeps
// reports sorted by date.
func (l *CollectionLedger) Record(r CollectionReport) {
	i := slices.IndexFunc(l.reports, func(x CollectionReport) bool { return x.Date.Equal(r.Date) })
	if i >= 0 {
		l.reports[i] = r
		return
	}
	l.reports = append(l.reports, r)
	slices.SortStableFunc(l.reports, func(a, b CollectionReport) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}

// CloseDay computes the collection of a day: the sum of the totals of the
// active orders placed that day.
//
// Orders priced in another currency than currency make it fail with
// ErrCurrencyMismatch.
func CloseDay(day date.Date, orders *OrderLedger, currency string) (CollectionReport, error) {
	var totals []Money
	for o := range orders.All(AllOf(WithStatus(Active), PlacedOn(day))) {
		if c := o.total.Currency(); c != "" && c != currency {
			return CollectionReport{}, fmt.Errorf("%w: order #%d is in %s, not %s", ErrCurrencyMismatch, o.id, c, currency)
		}
		totals = append(totals, o.total)
	}
	return CollectionReport{Date: day, Total: Sum(currency, totals...)}, nil
}
