// Package api defines the JSON request/response bodies exchanged with the
// table-ordering service, grounded on the original assignment's api
// module (Item/Order/NewOrder) and encoded with goccy/go-json through
// util/json instead of encoding/json.
package api

// Item is a single menu line belonging to an order.
type Item struct {
	Name             string `json:"name"`
	TimeToCompletion uint32 `json:"time_to_completion"`
	ID               uint32 `json:"id"`
}

// Order is every item currently on file for a table.
type Order struct {
	TableNumber uint32 `json:"table_number"`
	Items       []Item `json:"items"`
}

// NewOrder is the body of a create-order request: a table number and the
// names of the items to add to it.
type NewOrder struct {
	TableNumber uint32   `json:"table_number"`
	Items       []string `json:"items"`
}
