package store

import (
	"testing"

	"github.com/paidy/tableorders/apierr"
)

func TestMemStoreOrderLifecycle(t *testing.T) {
	s := NewMemStore()

	pizza, err := s.InsertOrders(1, []string{"Pizza"})
	if err != nil {
		t.Fatalf("InsertOrders: %v", err)
	}
	burger, err := s.InsertOrders(2, []string{"Burger"})
	if err != nil {
		t.Fatalf("InsertOrders: %v", err)
	}
	pasta, err := s.InsertOrders(1, []string{"Pasta"})
	if err != nil {
		t.Fatalf("InsertOrders: %v", err)
	}

	pizzaID := pizza[0].ID
	burgerID := burger[0].ID
	pastaID := pasta[0].ID

	order1, err := s.GetOrder(1)
	if err != nil {
		t.Fatalf("GetOrder(1): %v", err)
	}
	if len(order1.Items) != 2 {
		t.Fatalf("got %d items for table 1, want 2", len(order1.Items))
	}
	if order1.Items[0].Name != "Pizza" || order1.Items[0].ID != pizzaID {
		t.Errorf("got first item %+v", order1.Items[0])
	}
	if order1.Items[1].Name != "Pasta" || order1.Items[1].ID != pastaID {
		t.Errorf("got second item %+v", order1.Items[1])
	}

	order2, err := s.GetOrder(2)
	if err != nil {
		t.Fatalf("GetOrder(2): %v", err)
	}
	if len(order2.Items) != 1 || order2.Items[0].Name != "Burger" || order2.Items[0].ID != burgerID {
		t.Errorf("got order2 %+v", order2)
	}

	if _, err := s.GetOrder(3); err == nil {
		t.Error("GetOrder(3) on empty table should fail")
	} else if _, ok := err.(*apierr.NotFound); !ok {
		t.Errorf("got %T, want *apierr.NotFound", err)
	}

	for _, tc := range []struct {
		table, item uint32
		want        string
	}{
		{1, pizzaID, "Pizza"},
		{2, burgerID, "Burger"},
		{1, pastaID, "Pasta"},
	} {
		item, err := s.GetOrderItem(tc.table, tc.item)
		if err != nil {
			t.Fatalf("GetOrderItem(%d,%d): %v", tc.table, tc.item, err)
		}
		if item.Name != tc.want {
			t.Errorf("got item name %q, want %q", item.Name, tc.want)
		}
		if item.TimeToCompletion < 5 || item.TimeToCompletion >= 15 {
			t.Errorf("time_to_completion %d out of [5,15)", item.TimeToCompletion)
		}
	}

	if _, err := s.DeleteItem(1, pizzaID); err != nil {
		t.Fatalf("first delete of pizza should succeed: %v", err)
	}
	if _, err := s.DeleteItem(1, pizzaID); err == nil {
		t.Error("second delete of the same item should fail")
	}
	if _, err := s.DeleteItem(1, burgerID); err == nil {
		t.Error("deleting burger from table 1 (wrong table) should fail")
	}
	if _, err := s.DeleteItem(2, burgerID); err != nil {
		t.Errorf("delete of burger from table 2 should succeed: %v", err)
	}
}
