package ledger

import (
	"fmt"
	"strings"

	"github.com/iov-one/ledger/errors"
)

const (
	// KeyQueryMod looks up a single record by its key.
	KeyQueryMod = ""
	// PrefixQueryMod lists all records whose key starts with given bytes.
	PrefixQueryMod = "prefix"
)

// Model groups together key and value to return
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key-value pair
func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}

// QueryHandler is anything that can process ABCI queries
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister is a function that adds some handlers
// to this router
type QueryRegister func(QueryRouter)

// QueryRouter allows us to register many query handlers
// to different paths and then direct each query
// to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// RegisterAll registers a number of QueryRegister at once
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a new Handler for the given path.
// panics if another Handler was already registered
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// ParseQueryPath splits "/wallets?prefix" into the path and the mod.
func ParseQueryPath(raw string) (path, mod string, err error) {
	chunks := strings.SplitN(raw, "?", 2)
	path = chunks[0]
	if len(chunks) == 2 {
		mod = chunks[1]
	}
	switch mod {
	case KeyQueryMod, PrefixQueryMod:
		return path, mod, nil
	default:
		return "", "", errors.Wrapf(errors.ErrInput, "unknown query mod: %s", mod)
	}
}
