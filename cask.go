// Package cask is a small dependency-injection container built around
// explicit keys and pluggable lifetime scopes.
//
// A binding maps an opaque string key to a zero-argument factory plus a
// scope. The scope decides how long a constructed instance lives: for the
// whole container (singleton), per OS process (process), per goroutine
// (goroutine), not at all (transient), or inside a caller-owned named scope.
//
// Basic usage:
//
//	c := cask.New()
//	_ = c.Register("db", func() (any, error) { return openDB() })
//	_ = c.DependsOn("repo", "db")
//	_ = c.Register("repo", newRepo)
//	repo, err := c.Resolve("repo")
package cask

// Factory creates one instance for a key. It takes no arguments; factories
// that need other bindings resolve them through a captured container.
type Factory func() (any, error)

// KeyedValue pairs a key with its resolved value, for ResolveKeyed.
type KeyedValue struct {
	Key   string
	Value any
}

// New creates a container with the built-in scopes installed and the
// container itself bound under the key "di" in the singleton scope.
func New(opts ...Option) *Container {
	return newContainer(opts...)
}
