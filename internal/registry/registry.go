package registry

import (
	"fmt"
	"sort"
	"sync"
	"webserver/internal/http/response"
)

// Handler produces the response for one route.
type Handler func() (*response.Response, error)

// Registry maps exact request paths to handlers. Routes are registered during
// startup; after Freeze the table is read-only.
type Registry interface {
	Register(path string, handler Handler) error
	Resolve(path string) (handler Handler, ok bool)
	Freeze()
	Paths() []string
}

type registry struct {
	mu     sync.RWMutex
	routes map[string]Handler
	frozen bool
}

var (
	ErrRegistryFrozen = fmt.Errorf("registry is frozen")
	ErrNilHandler     = fmt.Errorf("handler is nil")
)

func New() Registry {
	return &registry{
		routes: make(map[string]Handler),
	}
}

// Register binds path to handler. A later registration for the same path
// replaces the earlier one.
func (r *registry) Register(path string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: cannot register %s", ErrRegistryFrozen, path)
	}
	r.routes[path] = handler
	return nil
}

func (r *registry) Resolve(path string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.routes[path]
	return handler, ok
}

func (r *registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

func (r *registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
