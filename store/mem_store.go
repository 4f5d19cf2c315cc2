package store

import (
	"math/rand"
	"sync"

	"github.com/paidy/tableorders/api"
	"github.com/paidy/tableorders/apierr"
)

// row pairs one item with the table number it belongs to, mirroring the
// original reference store's flat (table_id, item) vector.
type row struct {
	tableNumber uint32
	item        api.Item
}

// MemStore is the in-memory reference Store: a single slice of rows
// guarded by one mutex, with a monotonically increasing id counter.
type MemStore struct {
	mu     sync.Mutex
	rows   []row
	nextID uint32
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) GetOrder(tableNumber uint32) (api.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []api.Item
	for _, r := range s.rows {
		if r.tableNumber == tableNumber {
			items = append(items, r.item)
		}
	}
	if len(items) == 0 {
		return api.Order{}, &apierr.NotFound{Reason: "no orders for table"}
	}
	return api.Order{TableNumber: tableNumber, Items: items}, nil
}

func (s *MemStore) GetOrderItem(tableNumber, itemID uint32) (api.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.tableNumber == tableNumber && r.item.ID == itemID {
			return r.item, nil
		}
	}
	return api.Item{}, &apierr.NotFound{Reason: "no such item for table"}
}

func (s *MemStore) InsertOrders(tableNumber uint32, names []string) ([]api.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.Item, 0, len(names))
	for _, name := range names {
		item := api.Item{
			Name:             name,
			TimeToCompletion: uint32(5 + rand.Intn(10)),
			ID:               s.nextID,
		}
		s.nextID++
		s.rows = append(s.rows, row{tableNumber: tableNumber, item: item})
		items = append(items, item)
	}
	return items, nil
}

func (s *MemStore) DeleteItem(tableNumber, itemID uint32) (api.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rows {
		if r.tableNumber == tableNumber && r.item.ID == itemID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return r.item, nil
		}
	}
	return api.Item{}, &apierr.NotFound{Reason: "no such item for table"}
}
