package source

import "github.com/rotisserie/eris"

// Registry maps adapter names to their implementations.
type Registry struct {
	adapters map[string]Adapter
	order    []string // insertion order for deterministic iteration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// NewDefaultRegistry registers the full built-in adapter set in the
// fixed query order: engines first, then people-search sites.
func NewDefaultRegistry(client *Client) *Registry {
	r := NewRegistry()
	r.Register(NewGoogle(client))
	r.Register(NewBing(client))
	r.Register(NewDuckDuckGo(client))
	r.Register(NewWhitepages(client))
	r.Register(NewTruePeopleSearch(client))
	r.Register(NewFastPeopleSearch(client))
	r.Register(NewSpokeo(client))
	r.Register(NewBeenVerified())
	return r
}

// Register adds an adapter to the registry.
func (r *Registry) Register(a Adapter) {
	name := a.Name()
	r.adapters[name] = a
	r.order = append(r.order, name)
}

// Get returns an adapter by name.
func (r *Registry) Get(name string) (Adapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, eris.Errorf("source: unknown adapter %q", name)
	}
	return a, nil
}

// ByCategory returns all adapters in the given category, in
// registration order.
func (r *Registry) ByCategory(cat Category) []Adapter {
	var result []Adapter
	for _, name := range r.order {
		if r.adapters[name].Category() == cat {
			result = append(result, r.adapters[name])
		}
	}
	return result
}

// AllNames returns all registered adapter names in registration order.
func (r *Registry) AllNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
