package cask

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// Scope is a lifetime policy for resolved instances: a key-value store the
// container checks before invoking a factory and writes after. Variants
// differ only in how they transform keys and whether writes are retained.
type Scope interface {
	// Name identifies the scope inside a ScopeRegistry.
	Name() string

	// Get returns the cached instance for key, if any.
	Get(key string) (any, bool)

	// Set caches an instance for key. Implementations may discard the write.
	Set(key string, value any)

	// Delete removes the cached instance for key.
	Delete(key string)

	// Len reports the number of cached instances.
	Len() int

	// Keys returns the stored keys, after transformation, in no
	// particular order.
	Keys() []string
}

// Names of the built-in scopes installed by New.
const (
	// ScopeSingleton caches one instance per key for the container's lifetime.
	ScopeSingleton = "singleton"

	// ScopeProcess partitions keys by OS process id, so a container inherited
	// across a fork does not expose the parent's cached instances.
	ScopeProcess = "process"

	// ScopeGoroutine partitions keys by goroutine id; each goroutine sees
	// only instances it created itself.
	ScopeGoroutine = "goroutine"

	// ScopeTransient discards writes, so every resolution invokes the factory.
	ScopeTransient = "transient"
)

// mapScope is the shared storage behind every built-in variant: a mutex-guarded
// map with a pluggable key transform. The transform must be pure; every
// operation routes its key through it before touching storage.
type mapScope struct {
	name      string
	transform func(string) string
	mu        sync.RWMutex
	instances map[string]any
}

func newMapScope(name string, transform func(string) string) *mapScope {
	return &mapScope{
		name:      name,
		transform: transform,
		instances: make(map[string]any),
	}
}

func (s *mapScope) key(key string) string {
	if s.transform == nil {
		return key
	}

	return s.transform(key)
}

func (s *mapScope) Name() string {
	return s.name
}

func (s *mapScope) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.instances[s.key(key)]

	return value, ok
}

func (s *mapScope) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.instances[s.key(key)] = value
}

func (s *mapScope) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.instances, s.key(key))
}

func (s *mapScope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.instances)
}

func (s *mapScope) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.instances))
	for key := range s.instances {
		keys = append(keys, key)
	}

	return keys
}

// newSingletonScope stores each key once for the container's lifetime.
func newSingletonScope() Scope {
	return newMapScope(ScopeSingleton, nil)
}

// newProcessScope prefixes every key with the current pid. The underlying map
// is shared, but each process only ever sees its own entries.
func newProcessScope() Scope {
	return newMapScope(ScopeProcess, func(key string) string {
		return strconv.Itoa(os.Getpid()) + "_" + key
	})
}

// newGoroutineScope prefixes every key with the calling goroutine's id.
// Entries are not reaped when a goroutine exits; long-lived programs should
// prefer a named scope they can discard.
func newGoroutineScope() Scope {
	return newMapScope(ScopeGoroutine, func(key string) string {
		return strconv.FormatUint(goroutineID(), 10) + "_" + key
	})
}

// transientScope discards writes, leaving reads untouched. The cache-hit path
// never succeeds, so every resolution reconstructs.
type transientScope struct {
	*mapScope
}

func newTransientScope() Scope {
	return &transientScope{mapScope: newMapScope(ScopeTransient, nil)}
}

func (s *transientScope) Set(key string, value any) {}

// NewNamedScope creates an ad hoc scope distinguished only by its name.
// Named scopes are not installed by New; callers hold on to them and pass
// them to InScope by reference.
func NewNamedScope(name string) Scope {
	return newMapScope(name, nil)
}

// goroutineID reads the current goroutine's id from the runtime.Stack header
// ("goroutine N [running]: ...").
func goroutineID() uint64 {
	var buf [64]byte

	n := runtime.Stack(buf[:], false)

	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(header, ' '); i >= 0 {
		header = header[:i]
	}

	id, err := strconv.ParseUint(header, 10, 64)
	if err != nil {
		return 0
	}

	return id
}
