// Package apierr defines the closed set of error kinds this module's core
// ever produces, and the single place those kinds are mapped to HTTP
// status codes. Handlers, the router, and the wire codec return these
// values (the wire codec also passes non-EOF read errors through as-is);
// no other layer invents its own mapping to a status code.
package apierr

import "fmt"

// NotFound means no route, order, or item matched the request.
type NotFound struct {
	Reason string
}

func (e *NotFound) Error() string { return fmt.Sprintf("not found: %s", e.Reason) }

// BadRequest means the request was malformed: bad path parameters, bad
// JSON, or a wire-format grammar violation.
type BadRequest struct {
	Reason string
}

func (e *BadRequest) Error() string { return fmt.Sprintf("bad request: %s", e.Reason) }

// InternalServerError means the handler or store failed for reasons
// unrelated to the caller's input.
type InternalServerError struct {
	Reason string
}

func (e *InternalServerError) Error() string { return fmt.Sprintf("internal error: %s", e.Reason) }

// ConnectionReset means the peer closed the connection before a complete
// request (or, client-side, response) could be read.
type ConnectionReset struct{}

func (e *ConnectionReset) Error() string { return "connection reset before a complete message" }

// NoResponse is the client-side error for a connection that closed (or a
// request that could not be written) before a complete response was read.
// It has no status code mapping: StatusCode panics on it.
type NoResponse struct{}

func (e *NoResponse) Error() string { return "no response" }

// StatusCode maps the three response-bearing kinds above to an HTTP
// status code, and any other error to 500 -- an error that isn't part of
// this taxonomy is still an internal failure, not grounds to crash the
// worker handling it. It panics only for ConnectionReset and NoResponse,
// since both mean no status line is ever written for this request, and a
// caller asking StatusCode to map one is a bug in the caller.
func StatusCode(err error) int {
	switch err.(type) {
	case *NotFound:
		return 404
	case *BadRequest:
		return 400
	case *InternalServerError:
		return 500
	case *ConnectionReset, *NoResponse:
		panic(fmt.Sprintf("apierr: %T has no HTTP status mapping", err))
	default:
		return 500
	}
}
