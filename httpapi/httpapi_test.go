package httpapi

import (
	"testing"

	"github.com/paidy/tableorders/apierr"
	"github.com/paidy/tableorders/router"
	"github.com/paidy/tableorders/store"
	"github.com/paidy/tableorders/wire"
)

func newTestRouter() *router.Router {
	r := router.New()
	Register(r)
	return r
}

func TestCreateOrderThenGetOrder(t *testing.T) {
	r := newTestRouter()
	db := store.NewMemStore()

	createReq := &wire.Request{
		Method: "POST",
		Path:   "/api/v1/orders",
		Body:   `{"table_number":1,"items":["Pizza","Burger"]}`,
	}
	resp, err := r.Route(createReq, db)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("create status = %d, want 200", resp.StatusCode)
	}

	getReq := &wire.Request{Method: "GET", Path: "/api/v1/orders/1"}
	resp, err = r.Route(getReq, db)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
}

func TestGetOrderOnEmptyStoreIsNotFound(t *testing.T) {
	r := newTestRouter()
	db := store.NewMemStore()

	_, err := r.Route(&wire.Request{Method: "GET", Path: "/api/v1/orders/999"}, db)
	if _, ok := err.(*apierr.NotFound); !ok {
		t.Fatalf("got %v, want *apierr.NotFound", err)
	}
}

func TestGetOrderNonNumericParamIsBadRequest(t *testing.T) {
	r := newTestRouter()
	db := store.NewMemStore()

	_, err := r.Route(&wire.Request{Method: "GET", Path: "/api/v1/orders/abc"}, db)
	if _, ok := err.(*apierr.BadRequest); !ok {
		t.Fatalf("got %v, want *apierr.BadRequest", err)
	}
}

func TestPostToOrderByIDIsNotFound(t *testing.T) {
	r := newTestRouter()
	db := store.NewMemStore()

	_, err := r.Route(&wire.Request{Method: "POST", Path: "/api/v1/orders/1"}, db)
	if _, ok := err.(*apierr.NotFound); !ok {
		t.Fatalf("got %v, want *apierr.NotFound", err)
	}
}

func TestDeleteItemTwiceSecondIsNotFound(t *testing.T) {
	r := newTestRouter()
	db := store.NewMemStore()

	createReq := &wire.Request{
		Method: "POST",
		Path:   "/api/v1/orders",
		Body:   `{"table_number":1,"items":["Pizza"]}`,
	}
	if _, err := r.Route(createReq, db); err != nil {
		t.Fatalf("create: %v", err)
	}

	deleteReq := &wire.Request{Method: "DELETE", Path: "/api/v1/orders/1/items/0"}
	resp, err := r.Route(deleteReq, db)
	if err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("first delete status = %d, want 200", resp.StatusCode)
	}

	_, err = r.Route(deleteReq, db)
	if _, ok := err.(*apierr.NotFound); !ok {
		t.Fatalf("got %v, want *apierr.NotFound on second delete", err)
	}
}
