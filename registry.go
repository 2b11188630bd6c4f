package cask

import (
	"sort"
	"sync"
)

// binding associates a key with its factory and resolved scope reference.
// The mutex serializes the cache-check/construct/store sequence for this key,
// so a factory runs at most once per key under concurrent cold resolution.
type binding struct {
	key     string
	factory Factory
	scope   any // *scopeEntry or a caller-supplied Scope
	mu      sync.Mutex
}

// scopeName reports the name of the scope the binding lives in.
func (b *binding) scopeName() string {
	switch v := b.scope.(type) {
	case *scopeEntry:
		return v.name
	case Scope:
		return v.Name()
	default:
		return ""
	}
}

// cachedIn reports whether the binding's scope currently holds an instance
// for its key. Lazy scope entries that were never instantiated hold nothing.
func (b *binding) cachedIn() bool {
	var scope Scope

	switch v := b.scope.(type) {
	case *scopeEntry:
		scope = v.scope
	case Scope:
		scope = v
	}

	if scope == nil {
		return false
	}

	_, ok := scope.Get(b.key)

	return ok
}

// registry is the binding table: pure storage, no lifecycle logic. Scope
// references are validated eagerly through the owning ScopeRegistry, so an
// unknown scope name fails at registration time rather than at resolution.
type registry struct {
	scopes   *ScopeRegistry
	mu       sync.RWMutex
	bindings map[string]*binding
}

func newRegistry(scopes *ScopeRegistry) *registry {
	return &registry{
		scopes:   scopes,
		bindings: make(map[string]*binding),
	}
}

// add binds key to (factory, scope). Re-registration overwrites silently.
func (r *registry) add(key string, factory Factory, scopeRef any) error {
	resolved, err := r.scopes.resolve(scopeRef)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings[key] = &binding{key: key, factory: factory, scope: resolved}

	return nil
}

// addInstance binds key to a fixed value. The scope is forced to singleton
// for instances; a value that already exists has no other meaningful lifetime.
func (r *registry) addInstance(key string, value any) error {
	return r.add(key, func() (any, error) { return value, nil }, ScopeSingleton)
}

func (r *registry) get(key string) (*binding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bindings[key]
	if !ok {
		return nil, ErrKeyNotFound(key)
	}

	return b, nil
}

func (r *registry) has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.bindings[key]

	return ok
}

func (r *registry) keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.bindings))
	for key := range r.bindings {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
