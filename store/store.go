// Package store defines the pluggable backend handlers use to read and
// write orders, generalizing the teacher's generic string-keyed map
// (Get/Set/Delete/Exists) into the domain-specific operations this
// service needs, with two implementations: an in-memory reference store
// and a Redis-backed one.
package store

import "github.com/paidy/tableorders/api"

// Store is the backend consumed by handlers. Every method is safe to call
// concurrently from any number of workers; how that's achieved is up to
// the implementation (MemStore uses one mutex, RedisStore leans on
// Redis's own single-threaded command execution).
type Store interface {
	// GetOrder returns every item on file for tableNumber, or
	// *apierr.NotFound if none exist.
	GetOrder(tableNumber uint32) (api.Order, error)

	// GetOrderItem returns one item by id for a table, or
	// *apierr.NotFound if it isn't on file.
	GetOrderItem(tableNumber, itemID uint32) (api.Item, error)

	// InsertOrders adds one item per name to tableNumber's order and
	// returns the inserted items, each stamped with a fresh id and a
	// randomized time_to_completion in [5,15).
	InsertOrders(tableNumber uint32, names []string) ([]api.Item, error)

	// DeleteItem removes one item by id from a table's order and
	// returns it, or *apierr.NotFound if it wasn't on file.
	DeleteItem(tableNumber, itemID uint32) (api.Item, error)
}
