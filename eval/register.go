package eval

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps tags to handlers.  It is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	d  map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{d: map[string]Handler{}}
}

// DefaultRegistry returns a new registry holding the built in handlers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, h := range builtins() {
		r.Register(h)
	}
	return r
}

func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, present := r.d[h.String()]
	if present {
		return fmt.Errorf("%s: %w", h, ErrHandlerExists)
	}
	r.d[h.String()] = h
	return nil
}

func (r *Registry) Lookup(tag string) Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.d[tag]
}

// Handlers returns the registered handlers sorted by tag.
func (r *Registry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Handler, 0, len(r.d))
	for _, h := range r.d {
		res = append(res, h)
	}
	slices.SortFunc(res, func(a, b Handler) int {
		return strings.Compare(a.String(), b.String())
	})
	return res
}
