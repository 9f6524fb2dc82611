package renderer

import (
	"fmt"

	"github.com/etnz/restaurant"
)

// MenuItem renders a menu item on a single line.
func MenuItem(item restaurant.MenuItem) string {
	return fmt.Sprintf("%3d. %s %s", item.ID(), item.Name(), item.Price())
}

// Order renders an order on a single line.
func Order(o *restaurant.Order) string {
	return fmt.Sprintf("Order #%d placed %s: %s, total %s (%s)",
		o.ID(), o.PlacedAt().Format(DatetimeFormat), Items(o.Lines()), o.Total(), o.Status())
}

// CollectionReport renders a collection report on a single line.
func CollectionReport(r restaurant.CollectionReport) string {
	return fmt.Sprintf("Collection of %s: %s", r.Date, r.Total)
}
