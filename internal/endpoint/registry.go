package endpoint

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a thread-safe set of endpoints keyed by name, with an index of
// which endpoints belong to which family.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]*Endpoint
	familyIdx map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		endpoints: make(map[string]*Endpoint),
		familyIdx: make(map[string][]string),
	}
}

// Register adds endpoints. Duplicate names overwrite the previous entry.
func (r *Registry) Register(eps ...Endpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range eps {
		ep := eps[i]
		if ep.Name == "" {
			return fmt.Errorf("endpoint name cannot be empty")
		}
		if ep.Path == "" {
			return fmt.Errorf("endpoint %q: path cannot be empty", ep.Name)
		}
		if ep.Version == "" {
			ep.Version = V3
		}

		if old, ok := r.endpoints[ep.Name]; ok {
			r.unindex(old)
		}
		r.endpoints[ep.Name] = &ep
		r.familyIdx[ep.Family] = append(r.familyIdx[ep.Family], ep.Name)
	}
	return nil
}

func (r *Registry) unindex(ep *Endpoint) {
	names := r.familyIdx[ep.Family]
	filtered := names[:0]
	for _, n := range names {
		if n != ep.Name {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == 0 {
		delete(r.familyIdx, ep.Family)
	} else {
		r.familyIdx[ep.Family] = filtered
	}
}

// Get returns a copy of the named endpoint.
func (r *Registry) Get(name string) (Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ep, ok := r.endpoints[name]
	if !ok {
		return Endpoint{}, &ErrEndpointNotFound{Name: name}
	}
	return *ep, nil
}

// List returns all endpoints sorted by name.
func (r *Registry) List() []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Endpoint, 0, len(r.endpoints))
	for _, ep := range r.endpoints {
		out = append(out, *ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Family returns the endpoints of one family sorted by name.
func (r *Registry) Family(family string) []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := append([]string(nil), r.familyIdx[family]...)
	sort.Strings(names)
	out := make([]Endpoint, 0, len(names))
	for _, n := range names {
		out = append(out, *r.endpoints[n])
	}
	return out
}

// Families returns the family names sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.familyIdx))
	for f := range r.familyIdx {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.endpoints)
}
