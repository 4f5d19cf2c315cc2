// Package client implements the table-ordering service's TCP client: one
// connection per call, grounded on the original assignment's HttpClient
// (connect once, write a request, read the one response, then the caller
// drops the connection -- no keep-alive).
package client

import (
	"net"

	"github.com/paidy/tableorders/apierr"
	"github.com/paidy/tableorders/wire"
)

// Client sends requests to a single server address, opening a fresh
// connection for every call.
type Client struct {
	addr string
}

// New returns a Client targeting addr. It does not dial until Send is
// called.
func New(addr string) *Client {
	return &Client{addr: addr}
}

// Send opens a connection, writes method/endpoint/body as a request, and
// returns the parsed response. If the connection closes before a
// complete response arrives, it returns *apierr.NoResponse rather than
// the lower-level connection-reset error, matching the client-visible
// contract: server misbehavior surfaces either a well-formed response or
// NoResponse, never a raw I/O error.
func (c *Client) Send(method, endpoint, body string) (*wire.Response, error) {
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		return nil, &apierr.InternalServerError{Reason: err.Error()}
	}
	defer conn.Close()

	if _, err := conn.Write(wire.EncodeRequest(method, endpoint, body)); err != nil {
		return nil, &apierr.NoResponse{}
	}

	resp, err := wire.ParseResponse(conn)
	if err != nil {
		return nil, &apierr.NoResponse{}
	}
	return resp, nil
}
