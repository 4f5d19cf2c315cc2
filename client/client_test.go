package client

import (
	"net"
	"testing"

	"github.com/paidy/tableorders/apierr"
	"github.com/paidy/tableorders/wire"
)

func TestSendRoundTrip(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		req, err := wire.ParseRequest(conn)
		if err != nil {
			return
		}
		resp := &wire.Response{StatusCode: 200, Body: "echo:" + req.Body}
		conn.Write(resp.Encode())
	}()

	c := New(ln.Addr().String())
	resp, err := c.Send("POST", "/orders", "hello")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.StatusCode != 200 || resp.Body != "echo:hello" {
		t.Errorf("got %+v", resp)
	}
}

func TestSendConnectionResetSurfacesAsNoResponse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Close() // close immediately, before any response is written
	}()

	c := New(ln.Addr().String())
	_, err = c.Send("GET", "/orders/1", "")
	if _, ok := err.(*apierr.NoResponse); !ok {
		t.Fatalf("got %v (%T), want *apierr.NoResponse", err, err)
	}
}
