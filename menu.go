package restaurant

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MenuItem is a purchasable item of the catalog. It is immutable once loaded.
type MenuItem struct {
	id    int
	name  string
	price Money
}

// NewMenuItem creates a menu item.
func NewMenuItem(id int, name string, price Money) MenuItem {
	return MenuItem{id: id, name: name, price: price}
}

func (m MenuItem) ID() int      { return m.id }
func (m MenuItem) Name() string { return m.name }
func (m MenuItem) Price() Money { return m.price }

// Catalog is the fixed list of menu items of a session, in file order.
type Catalog struct {
	items []MenuItem
}

// NewCatalog creates a catalog with the given items.
func NewCatalog(items ...MenuItem) *Catalog {
	return &Catalog{items: items}
}

// Items returns the catalog items in file order.
func (c *Catalog) Items() []MenuItem { return c.items }

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Item returns the first item with that id.
func (c *Catalog) Item(id int) (MenuItem, bool) {
	for _, item := range c.items {
		if item.id == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// UnresolvedPolicy decides what placement does with ids that are not in the catalog.
type UnresolvedPolicy int

const (
	// DropUnresolved silently ignores unknown ids.
	DropUnresolved UnresolvedPolicy = iota
	// RejectUnresolved fails the whole placement.
	RejectUnresolved
)

func (p UnresolvedPolicy) String() string {
	switch p {
	case DropUnresolved:
		return "drop"
	case RejectUnresolved:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseUnresolvedPolicy parses "drop" or "reject".
func ParseUnresolvedPolicy(s string) (UnresolvedPolicy, error) {
	switch s {
	case "drop":
		return DropUnresolved, nil
	case "reject":
		return RejectUnresolved, nil
	default:
		return 0, fmt.Errorf("unknown unresolved item policy: %q", s)
	}
}

// ErrUnknownItem is returned when an order names an id missing from the catalog.
var ErrUnknownItem = errors.New("unknown menu item")

// Resolve maps ids to catalog items, keeping order and duplicates.
func (c *Catalog) Resolve(ids []int, policy UnresolvedPolicy) ([]MenuItem, error) {
	items := make([]MenuItem, 0, len(ids))
	var missing []string
	for _, id := range ids {
		item, ok := c.Item(id)
		if !ok {
			missing = append(missing, strconv.Itoa(id))
			continue
		}
		items = append(items, item)
	}
	if len(missing) > 0 && policy == RejectUnresolved {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, strings.Join(missing, ","))
	}
	return items, nil
}

// DecodeCatalog reads "id,name,price" lines.
//
// A malformed line stops the decoding: the items read so far are returned
// along with the error.
func DecodeCatalog(r io.Reader, currency string) (*Catalog, error) {
	catalog := NewCatalog()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		item, err := decodeMenuItem(line, currency)
		if err != nil {
			return catalog, fmt.Errorf("line %d: %w", n, err)
		}
		catalog.items = append(catalog.items, item)
	}
	if err := scanner.Err(); err != nil {
		return catalog, fmt.Errorf("error reading menu: %w", err)
	}
	return catalog, nil
}

func decodeMenuItem(line, currency string) (MenuItem, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		return MenuItem{}, fmt.Errorf("malformed menu line %q: want id,name,price", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return MenuItem{}, fmt.Errorf("invalid menu id in %q: %w", line, err)
	}
	price, err := ParseMoney(parts[2], currency)
	if err != nil {
		return MenuItem{}, fmt.Errorf("invalid menu price in %q: %w", line, err)
	}
	return NewMenuItem(id, strings.TrimSpace(parts[1]), price), nil
}

// LoadCatalog reads the menu file. A missing file gives an empty catalog and
// an error wrapping fs.ErrNotExist.
func LoadCatalog(path, currency string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewCatalog(), fmt.Errorf("could not open menu file %q: %w", path, err)
	}
	defer f.Close()

	catalog, err := DecodeCatalog(f, currency)
	if err != nil {
		return catalog, fmt.Errorf("could not decode menu file %q: %w", path, err)
	}
	return catalog, nil
}

// ParseIDs parses a comma separated list of ids such as "1, 2,3".
// Empty entries are skipped.
func ParseIDs(s string) ([]int, error) {
	var ids []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an item id", ErrInvalidInput, field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
