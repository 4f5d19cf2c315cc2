// Package httpapi wires the four table-ordering routes into a router,
// grounded on the original assignment's endpoints module (parse a path
// parameter, call the store, marshal the result) generalized to all four
// operations the domain needs.
package httpapi

import (
	"strconv"

	"github.com/paidy/tableorders/apierr"
	"github.com/paidy/tableorders/router"
	"github.com/paidy/tableorders/store"
	"github.com/paidy/tableorders/wire"
	json "github.com/paidy/tableorders/util/json"

	"github.com/paidy/tableorders/api"
)

// Register adds the four table-ordering routes to r.
func Register(r *router.Router) {
	r.AddRoute("POST", "/api/v1/orders", CreateOrder)
	r.AddRoute("GET", "/api/v1/orders/{order_id}", GetOrder)
	r.AddRoute("GET", "/api/v1/orders/{order_id}/items/{item_id}", GetOrderItem)
	r.AddRoute("DELETE", "/api/v1/orders/{order_id}/items/{item_id}", DeleteOrderItem)
}

// parseParam extracts and parses a required uint32 path parameter,
// reporting a *apierr.BadRequest with the parameter's name on failure.
func parseParam(params router.Params, name string) (uint32, error) {
	raw, ok := params[name]
	if !ok {
		return 0, &apierr.BadRequest{Reason: "missing " + name}
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &apierr.BadRequest{Reason: "invalid " + name + ": " + raw}
	}
	return uint32(n), nil
}

func jsonResponse(status uint16, v interface{}) (*wire.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, &apierr.InternalServerError{Reason: err.Error()}
	}
	return &wire.Response{StatusCode: status, Body: string(body)}, nil
}

// CreateOrder handles POST /api/v1/orders: adds newOrder.Items to the
// table named by newOrder.TableNumber and returns that table number with
// the newly inserted items (not items already on file for the table).
func CreateOrder(req *wire.Request, params router.Params, db store.Store) (*wire.Response, error) {
	var newOrder api.NewOrder
	if err := json.Unmarshal([]byte(req.Body), &newOrder); err != nil {
		return nil, &apierr.BadRequest{Reason: "invalid JSON body: " + err.Error()}
	}

	items, err := db.InsertOrders(newOrder.TableNumber, newOrder.Items)
	if err != nil {
		return nil, err
	}

	return jsonResponse(200, api.Order{TableNumber: newOrder.TableNumber, Items: items})
}

// GetOrder handles GET /api/v1/orders/{order_id}: returns every item on
// file for the table.
func GetOrder(req *wire.Request, params router.Params, db store.Store) (*wire.Response, error) {
	tableNumber, err := parseParam(params, "order_id")
	if err != nil {
		return nil, err
	}

	order, err := db.GetOrder(tableNumber)
	if err != nil {
		return nil, err
	}
	return jsonResponse(200, order)
}

// GetOrderItem handles GET /api/v1/orders/{order_id}/items/{item_id}:
// returns one item.
func GetOrderItem(req *wire.Request, params router.Params, db store.Store) (*wire.Response, error) {
	tableNumber, err := parseParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseParam(params, "item_id")
	if err != nil {
		return nil, err
	}

	item, err := db.GetOrderItem(tableNumber, itemID)
	if err != nil {
		return nil, err
	}
	return jsonResponse(200, item)
}

// DeleteOrderItem handles DELETE /api/v1/orders/{order_id}/items/{item_id}:
// removes one item and returns it.
func DeleteOrderItem(req *wire.Request, params router.Params, db store.Store) (*wire.Response, error) {
	tableNumber, err := parseParam(params, "order_id")
	if err != nil {
		return nil, err
	}
	itemID, err := parseParam(params, "item_id")
	if err != nil {
		return nil, err
	}

	item, err := db.DeleteItem(tableNumber, itemID)
	if err != nil {
		return nil, err
	}
	return jsonResponse(200, item)
}
