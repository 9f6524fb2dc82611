package restaurant

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// QueryOrders evaluates a JSONPath expression against orders, seen as a JSON
// array in their snapshot form, e.g.
//
//	$[?(@.status=="Cancelled")].id
func QueryOrders(orders []*Order, path string) (any, error) {
	data, err := json.Marshal(orders)
	if err != nil {
		return nil, fmt.Errorf("could not marshal orders: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("could not unmarshal orders: %w", err)
	}
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return v, nil
}
