// Package server implements the connection-accept loop: listen, hand
// each accepted connection to a fixed-size worker pool, parse one
// request, route it, write one response, close the connection. Grounded
// on the teacher's Server/Run/Serve/clean shape, with the teacher's
// goroutine-per-connection dispatch replaced by submission to a
// pool.Pool.
package server

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/paidy/tableorders/apierr"
	"github.com/paidy/tableorders/pool"
	"github.com/paidy/tableorders/router"
	"github.com/paidy/tableorders/store"
	"github.com/paidy/tableorders/wire"
)

// Server listens for connections and dispatches each one to its worker
// pool.
type Server struct {
	network string
	address string
	config  Config
	router  *router.Router
	db      store.Store
	pool    *pool.Pool
}

// New returns a Server ready to Run. router must be fully registered
// before Run is called -- registration is not safe to do concurrently
// with serving.
func New(network, address string, options *Config, r *router.Router, db store.Store) *Server {
	config := NewConfig(options)
	if network != "" {
		config.Network = network
	}
	if address != "" {
		config.Address = address
	}

	return &Server{
		network: config.Network,
		address: config.Address,
		config:  config,
		router:  r,
		db:      db,
		pool:    pool.New(config.PoolSize),
	}
}

// Run listens on the server's network/address and serves connections
// forever, submitting each accepted connection to the worker pool. There
// is no graceful shutdown path -- a known gap carried over unchanged.
func (s *Server) Run() error {
	listener, err := net.Listen(s.network, s.address)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	defer listener.Close()
	log.Println("server listening on " + s.address)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Println("server: accept error: " + err.Error())
			continue
		}
		s.pool.Execute(func() {
			handle(conn, s)
		})
	}
}

// ServeOnce accepts exactly one connection on the calling goroutine and
// handles it inline, with no worker pool involved, then returns -- a test
// convenience for exercising the connection-handling path without
// standing up the full accept loop.
func (s *Server) ServeOnce() error {
	listener, err := net.Listen(s.network, s.address)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	defer listener.Close()

	conn, err := listener.Accept()
	if err != nil {
		return fmt.Errorf("server: accept: %w", err)
	}
	handle(conn, s)
	return nil
}

// handle parses one request off conn, routes it, and writes back exactly
// one response before the connection is cleaned up.
func handle(conn net.Conn, s *Server) {
	defer clean(conn)

	correlationID := uuid.New().String()
	log.Println(correlationID + ": accepted connection from " + conn.RemoteAddr().String())

	if s.config.ConnTimeout != nil && *s.config.ConnTimeout > 0 {
		conn.SetDeadline(time.Now().Add(*s.config.ConnTimeout))
	}

	req, err := wire.ParseRequest(conn)
	if err != nil {
		if _, ok := err.(*apierr.ConnectionReset); ok {
			log.Println(correlationID + ": connection reset before a complete request")
			return
		}
		log.Println(correlationID + ": malformed request: " + err.Error())
		writeResponse(conn, correlationID, errorResponse(&apierr.BadRequest{Reason: "malformed request"}))
		return
	}

	resp, err := s.router.Route(req, s.db)
	if err != nil {
		log.Println(correlationID + ": handler error: " + err.Error())
		writeResponse(conn, correlationID, errorResponse(err))
		return
	}

	writeResponse(conn, correlationID, resp)
}

// errorResponse builds the canned, body-less response for a taxonomy
// error -- information about the failure never leaves the process in the
// response body.
func errorResponse(err error) *wire.Response {
	return &wire.Response{StatusCode: uint16(apierr.StatusCode(err))}
}

func writeResponse(conn net.Conn, correlationID string, resp *wire.Response) {
	if _, err := conn.Write(resp.Encode()); err != nil {
		log.Println(correlationID + ": write error: " + err.Error())
	}
}

// clean closes the connection and logs it, mirroring the teacher's own
// clean helper.
func clean(conn net.Conn) {
	address := conn.RemoteAddr().String()
	conn.Close()
	log.Println("closed connection to " + address)
}
