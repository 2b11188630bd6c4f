package cask

import (
	"fmt"
	"sync"
)

// Lazy wraps a binding that is resolved on first access. This is the
// explicit replacement for attaching a resolved value to a type at class
// level: hold a Lazy field and call Get where the value is needed.
type Lazy[T any] struct {
	container *Container
	key       string
	once      sync.Once
	value     T
	err       error
	resolved  bool
}

// NewLazy creates a new lazy accessor for key.
func NewLazy[T any](container *Container, key string) *Lazy[T] {
	return &Lazy[T]{
		container: container,
		key:       key,
	}
}

// Get resolves the binding and returns it.
// The resolution happens only once; subsequent calls return the cached value.
func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		value, err := l.container.Resolve(l.key)
		if err != nil {
			l.err = err

			return
		}

		typed, ok := value.(T)
		if !ok {
			var zero T

			l.err = fmt.Errorf("lazy binding %s: expected type %T, got %T", l.key, zero, value)

			return
		}

		l.value = typed
		l.resolved = true
	})

	return l.value, l.err
}

// MustGet resolves the binding and returns it, panicking on error.
func (l *Lazy[T]) MustGet() T {
	value, err := l.Get()
	if err != nil {
		panic(fmt.Sprintf("lazy binding %s failed: %v", l.key, err))
	}

	return value
}

// IsResolved returns true if the binding has been resolved.
func (l *Lazy[T]) IsResolved() bool {
	return l.resolved
}

// Key returns the key of the binding.
func (l *Lazy[T]) Key() string {
	return l.key
}

// Provider wraps a binding that is resolved on every access. Pair it with a
// transient-scoped binding when a fresh instance is needed each time.
type Provider[T any] struct {
	container *Container
	key       string
}

// NewProvider creates a new provider for key.
func NewProvider[T any](container *Container, key string) *Provider[T] {
	return &Provider[T]{
		container: container,
		key:       key,
	}
}

// Provide resolves and returns the binding's value.
// Each call may return a different instance (if the binding is transient).
func (p *Provider[T]) Provide() (T, error) {
	value, err := p.container.Resolve(p.key)
	if err != nil {
		var zero T

		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T

		return zero, fmt.Errorf("provider %s: expected type %T, got %T", p.key, zero, value)
	}

	return typed, nil
}

// MustProvide resolves and returns the value, panicking on error.
func (p *Provider[T]) MustProvide() T {
	value, err := p.Provide()
	if err != nil {
		panic(fmt.Sprintf("provider %s failed: %v", p.key, err))
	}

	return value
}

// Key returns the key of the binding.
func (p *Provider[T]) Key() string {
	return p.key
}
