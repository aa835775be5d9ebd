package app

import (
	"fmt"
	"regexp"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the correct handler.
type Router struct {
	routes map[string]swap.Handler
}

var _ swap.Registry = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]swap.Handler),
	}
}

// Handle assigns given handler to handle processing of every message
// of provided type.
// Using a message with an invalid path or registering a handler for the
// same message type more than once is considered a programmer error and
// panics.
func (r *Router) Handle(m swap.Msg, h swap.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path %q for message %T", path, m))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this message path.
// If no path is found, returns a noSuchPathHandler.
func (r *Router) Handler(m swap.Msg) swap.Handler {
	path := m.Path()
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path: path}
	}
	return h
}

// Check dispatches to the proper handler based on the message path
func (r *Router) Check(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg)
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path
func (r *Router) Deliver(ctx swap.Context, db swap.KVStore, tx swap.Tx) (*swap.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h := r.Handler(msg)
	return h.Deliver(ctx, db, tx)
}

// noSuchPathHandler always returns ErrNotFound with the message path
type noSuchPathHandler struct {
	path string
}

var _ swap.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(swap.Context, swap.KVStore, swap.Tx) (*swap.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(swap.Context, swap.KVStore, swap.Tx) (*swap.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
