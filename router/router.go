// Package router implements a trie-of-segments path matcher with named
// placeholder segments, generalizing the child-node-per-segment shape of
// a registry trie (literal segment keys, one map of children per node)
// with an extra kind of child that binds whatever segment value it sees
// to a parameter name instead of requiring an exact match.
package router

import (
	"strings"

	"github.com/paidy/tableorders/apierr"
	"github.com/paidy/tableorders/store"
	"github.com/paidy/tableorders/wire"
)

// Params holds the path parameters extracted while matching a request,
// keyed by the placeholder name (e.g. "order_id").
type Params map[string]string

// Handler answers one request, given its extracted path parameters and
// the store backing the domain data.
type Handler func(req *wire.Request, params Params, db store.Store) (*wire.Response, error)

// node is one segment of the trie. placeholder, if non-nil, is the child
// reached by any segment value that doesn't literally match one of
// children's keys; its name is the parameter key bound to that value.
type node struct {
	children       map[string]*node
	placeholder    *node
	placeholderKey string
	handlers       map[string]Handler // method -> handler, only set on a terminal node
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Router dispatches requests by path and method.
type Router struct {
	root *node
}

// New returns an empty router.
func New() *Router {
	return &Router{root: newNode()}
}

// AddRoute registers handler for method and pattern. pattern segments of
// the form "{name}" bind whatever value appears at that position to name.
// Registering the same method and pattern twice overwrites the earlier
// handler.
func (r *Router) AddRoute(method, pattern string, handler Handler) {
	n := r.root
	for _, segment := range splitPath(pattern) {
		if isPlaceholder(segment) {
			key := segment[1 : len(segment)-1]
			if n.placeholder == nil {
				n.placeholder = newNode()
			}
			n.placeholder.placeholderKey = key
			n = n.placeholder
			continue
		}
		child, ok := n.children[segment]
		if !ok {
			child = newNode()
			n.children[segment] = child
		}
		n = child
	}
	if n.handlers == nil {
		n.handlers = make(map[string]Handler)
	}
	n.handlers[method] = handler
}

// Route finds the handler registered for req's path and method and calls
// it. It returns *apierr.NotFound if no pattern matches the path, or if
// the pattern matches but has no handler for the method -- method
// mismatch is reported the same as an absent pattern, per the contract
// this module follows.
func (r *Router) Route(req *wire.Request, db store.Store) (*wire.Response, error) {
	n, params := r.match(splitPath(req.Path))
	if n == nil || n.handlers == nil {
		return nil, &apierr.NotFound{Reason: "no route for path " + req.Path}
	}
	handler, ok := n.handlers[req.Method]
	if !ok {
		return nil, &apierr.NotFound{Reason: "no handler for " + req.Method + " " + req.Path}
	}
	return handler(req, params, db)
}

// match walks the trie for segments, preferring a literal child over the
// placeholder child at every level.
func (r *Router) match(segments []string) (*node, Params) {
	n := r.root
	params := Params{}
	for _, segment := range segments {
		if child, ok := n.children[segment]; ok {
			n = child
			continue
		}
		if n.placeholder != nil {
			params[n.placeholder.placeholderKey] = segment
			n = n.placeholder
			continue
		}
		return nil, nil
	}
	return n, params
}

func isPlaceholder(segment string) bool {
	return len(segment) >= 2 && segment[0] == '{' && segment[len(segment)-1] == '}'
}

// splitPath splits a path into segments on "/", treating a trailing slash
// as a distinct, possibly-empty final segment rather than discarding it:
// "/orders" and "/orders/" must route independently, so they cannot
// collapse to the same segment list. Only the single leading slash (every
// path and pattern starts with one) is stripped; "/" itself splits to no
// segments at all, the root.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
