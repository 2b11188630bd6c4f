package cask

import (
	"sync"
)

// scopeEntry is a registered scope slot. Constructor-backed entries defer
// allocation until the first Get; the constructor runs at most once and the
// resulting instance is reused for every later Get.
type scopeEntry struct {
	name  string
	ctor  func() Scope
	once  sync.Once
	scope Scope
}

func (e *scopeEntry) instance() Scope {
	e.once.Do(func() {
		if e.scope == nil {
			e.scope = e.ctor()
		}
	})

	return e.scope
}

// ScopeRegistry maps scope names to live scope instances. The built-in
// variants are installed at construction time from a static table;
// constructor-backed entries are instantiated lazily on first use.
type ScopeRegistry struct {
	mu      sync.RWMutex
	entries map[string]*scopeEntry
}

func newScopeRegistry() *ScopeRegistry {
	r := &ScopeRegistry{entries: make(map[string]*scopeEntry)}

	// The built-in variants. Goroutine storage in particular is only
	// allocated if a binding actually uses it.
	r.addLazy(ScopeSingleton, newSingletonScope)
	r.addLazy(ScopeProcess, newProcessScope)
	r.addLazy(ScopeGoroutine, newGoroutineScope)
	r.addLazy(ScopeTransient, newTransientScope)

	return r
}

func (r *ScopeRegistry) addLazy(name string, ctor func() Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = &scopeEntry{name: name, ctor: ctor}
}

// Add registers a live scope instance. An empty name falls back to the
// scope's own name. Re-registration under the same name overwrites.
func (r *ScopeRegistry) Add(scope Scope, name string) error {
	if scope == nil {
		return ErrInvalidScope
	}

	if name == "" {
		name = scope.Name()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = &scopeEntry{name: name, scope: scope}

	return nil
}

// Has checks whether a name is registered.
func (r *ScopeRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]

	return ok
}

// resolve maps a scope reference to something usable: a registered name is
// substituted with its entry, a Scope instance passes through unchanged.
// Anything else is an unknown scope. This is the eager validation step run
// at registration time, before any instantiation happens.
func (r *ScopeRegistry) resolve(ref any) (any, error) {
	switch v := ref.(type) {
	case string:
		r.mu.RLock()
		entry, ok := r.entries[v]
		r.mu.RUnlock()

		if !ok {
			return nil, ErrUnknownScope(v)
		}

		return entry, nil
	case *scopeEntry:
		return v, nil
	case Scope:
		return v, nil
	default:
		return nil, ErrUnknownScope(ref)
	}
}

// Get resolves a reference to a live scope instance, constructing
// lazy entries on first use. Repeated calls for the same entry return the
// same instance.
func (r *ScopeRegistry) Get(ref any) (Scope, error) {
	resolved, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}

	switch v := resolved.(type) {
	case *scopeEntry:
		return v.instance(), nil
	case Scope:
		return v, nil
	default:
		return nil, ErrUnknownScope(ref)
	}
}
