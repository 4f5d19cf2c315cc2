// Command client is the table-ordering CLI: get, insert, or delete items
// against a running server, grounded on the original assignment's client
// binary (disambiguate an optional leading address argument, dispatch on
// an action keyword, pretty-print the JSON response).
package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paidy/tableorders/api"
	"github.com/paidy/tableorders/cliaddr"
	"github.com/paidy/tableorders/client"
	json "github.com/paidy/tableorders/util/json"
	"github.com/paidy/tableorders/wire"
)

const connectRetries = 10

type options struct {
	address string
	action  string
	table   uint32
	items   []string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	c, err := dial(opts.address)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(c, opts); err != nil {
		log.Fatal(err)
	}
}

// parseArgs disambiguates an optional leading address the same way the
// original CLI does: if the first argument validates as an address, it is
// consumed as one; otherwise the default address is used and the first
// argument is treated as the action.
func parseArgs(args []string) (options, error) {
	if len(args) == 0 {
		return options{}, fmt.Errorf("usage: client [address] <get|insert|delete> <table> [items...]")
	}

	address := cliaddr.DefaultAddress
	if cliaddr.Validate(args[0]) == nil {
		address = args[0]
		args = args[1:]
	}

	if len(args) == 0 {
		return options{}, fmt.Errorf("missing action: expected get, insert, or delete")
	}
	action := strings.ToLower(args[0])
	if action != "get" && action != "insert" && action != "delete" {
		return options{}, fmt.Errorf("unknown action %q: expected get, insert, or delete", action)
	}
	args = args[1:]

	opts := options{address: address, action: action}
	if len(args) == 0 {
		return opts, nil
	}

	table, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return options{}, fmt.Errorf("invalid table number %q: %w", args[0], err)
	}
	opts.table = uint32(table)
	opts.items = args[1:]
	return opts, nil
}

// dial confirms address is reachable with a bounded retry loop, solely to
// tolerate a server that is still starting up in integration tests, then
// returns a Client targeting it.
func dial(address string) (*client.Client, error) {
	var lastErr error
	for i := 0; i < connectRetries; i++ {
		conn, err := net.Dial("tcp", address)
		if err == nil {
			conn.Close()
			return client.New(address), nil
		}
		lastErr = err
		time.Sleep(100 * time.Millisecond)
	}
	return nil, fmt.Errorf("could not reach %s: %w", address, lastErr)
}

func run(c *client.Client, opts options) error {
	switch opts.action {
	case "get":
		return runGet(c, opts)
	case "insert":
		return runInsert(c, opts)
	case "delete":
		return runDelete(c, opts)
	default:
		return fmt.Errorf("unknown action %q", opts.action)
	}
}

func runGet(c *client.Client, opts options) error {
	if len(opts.items) == 0 {
		resp, err := c.Send("GET", fmt.Sprintf("/api/v1/orders/%d", opts.table), "")
		if err != nil {
			return err
		}
		return printResponse[api.Order](resp)
	}

	for _, raw := range opts.items {
		itemID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid item id %q: %w", raw, err)
		}
		resp, err := c.Send("GET", fmt.Sprintf("/api/v1/orders/%d/items/%d", opts.table, itemID), "")
		if err != nil {
			return err
		}
		if err := printResponse[api.Item](resp); err != nil {
			return err
		}
	}
	return nil
}

func runInsert(c *client.Client, opts options) error {
	body, err := json.Marshal(api.NewOrder{TableNumber: opts.table, Items: opts.items})
	if err != nil {
		return err
	}
	resp, err := c.Send("POST", "/api/v1/orders", string(body))
	if err != nil {
		return err
	}
	return printResponse[api.Order](resp)
}

func runDelete(c *client.Client, opts options) error {
	if len(opts.items) == 0 {
		return fmt.Errorf("missing parameter: item id")
	}
	for _, raw := range opts.items {
		itemID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid item id %q: %w", raw, err)
		}
		resp, err := c.Send("DELETE", fmt.Sprintf("/api/v1/orders/%d/items/%d", opts.table, itemID), "")
		if err != nil {
			return err
		}
		if err := printResponse[api.Item](resp); err != nil {
			return err
		}
	}
	return nil
}

func printResponse[Body any](resp *wire.Response) error {
	fmt.Printf("Response Status: %d\n", resp.StatusCode)
	if resp.Body == "" {
		return nil
	}
	var body Body
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		fmt.Printf("error parsing response body: %v\n%s\n", err, resp.Body)
		return nil
	}
	fmt.Printf("Response Body: %+v\n", body)
	return nil
}
