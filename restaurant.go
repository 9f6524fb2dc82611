package restaurant

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/restaurant/date"
)

var (
	// ErrInvalidInput is returned for user input that cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDateFormat is returned for a date not in the yyyy-MM-dd format.
	ErrDateFormat = errors.New("invalid date format")
	// ErrCurrencyMismatch is returned when amounts in different currencies are summed.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Options configures Open.
type Options struct {
	MenuFile   string           // path to the "id,name,price" menu file
	Store      Store            // where ledger snapshots live
	Currency   string           // currency of menu prices, DefaultCurrency if empty
	Unresolved UnresolvedPolicy // what to do with unknown item ids
}

// Restaurant owns the catalog and both ledgers for a session, and implements
// the operations on them.
type Restaurant struct {
	Catalog     *Catalog
	Orders      *OrderLedger
	Collections *CollectionLedger

	store      Store
	currency   string
	unresolved UnresolvedPolicy

	// Now is the clock used to timestamp orders.
	Now func() time.Time
}

// Open loads the catalog and both ledgers.
//
// Every loader runs and none of them can fail Open: missing or broken files
// are logged and leave the corresponding list empty (or partially loaded for
// the menu).
func Open(opts Options) *Restaurant {
	currency := opts.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	r := &Restaurant{
		store:      opts.Store,
		currency:   currency,
		unresolved: opts.Unresolved,
		Now:        time.Now,
	}

	catalog, err := LoadCatalog(opts.MenuFile, currency)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, menu file %q does not exist, the menu is empty", opts.MenuFile)
	} else if err != nil {
		log.Printf("warning, menu partially loaded (%d items): %v", catalog.Len(), err)
	}
	r.Catalog = catalog

	orders, err := LoadOrders(opts.Store)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no order snapshot, starting with an empty order ledger")
	} else if err != nil {
		log.Printf("warning, starting with an empty order ledger: %v", err)
	}
	r.Orders = orders

	collections, err := LoadCollections(opts.Store)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no collection snapshot, starting with an empty collection ledger")
	} else if err != nil {
		log.Printf("warning, starting with an empty collection ledger: %v", err)
	}
	r.Collections = collections

	return r
}

// PlaceOrder places an order for a comma separated list of menu ids, then
// saves the order ledger.
//
// Depending on the unresolved policy, unknown ids are dropped or make the
// order fail with ErrUnknownItem. An empty list gives an empty order.
func (r *Restaurant) PlaceOrder(input string) (*Order, error) {
	ids, err := ParseIDs(input)
	if err != nil {
		return nil, err
	}
	items, err := r.Catalog.Resolve(ids, r.unresolved)
	if err != nil {
		return nil, err
	}
	o := r.Orders.Place(items, r.Now(), r.currency)
	r.saveOrders()
	return o, nil
}

// CancelOrder cancels an order and saves the order ledger. It reports false,
// and saves nothing, when there is no such order.
func (r *Restaurant) CancelOrder(id int) (*Order, bool) {
	o, found := r.Orders.Cancel(id)
	if !found {
		return nil, false
	}
	r.saveOrders()
	return o, true
}

// ParseOrderID parses an order id typed by the user.
func ParseOrderID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an order id", ErrInvalidInput, strings.TrimSpace(s))
	}
	return id, nil
}

// CollectionReport looks up the report of a day given as yyyy-MM-dd. Only an
// exact date match is returned.
func (r *Restaurant) CollectionReport(input string) (CollectionReport, bool, error) {
	day, err := date.Parse(strings.TrimSpace(input))
	if err != nil {
		return CollectionReport{}, false, fmt.Errorf("%w: %w", ErrDateFormat, err)
	}
	report, found := r.Collections.Lookup(day)
	return report, found, nil
}

// CloseDay records the collection report of a day from its active orders and
// saves the collection ledger.
func (r *Restaurant) CloseDay(day date.Date) (CollectionReport, error) {
	report, err := CloseDay(day, r.Orders, r.currency)
	if err != nil {
		return CollectionReport{}, err
	}
	r.Collections.Record(report)
	if err := SaveCollections(r.store, r.Collections); err != nil {
		return report, fmt.Errorf("could not save collections: %w", err)
	}
	return report, nil
}

// Save writes both ledgers in full.
func (r *Restaurant) Save() error {
	return errors.Join(
		SaveOrders(r.store, r.Orders),
		SaveCollections(r.store, r.Collections),
	)
}

// saveOrders persists the order ledger after a change. A failure is logged,
// the change stays in memory and is saved again on the next checkpoint.
func (r *Restaurant) saveOrders() {
	if err := SaveOrders(r.store, r.Orders); err != nil {
		log.Printf("warning, could not save orders: %v", err)
	}
}
