package cask

import (
	"fmt"

	logger "github.com/xraph/go-utils/log"
	"github.com/xraph/go-utils/metrics"
)

// Resolve with type safety.
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T

	value, err := c.Resolve(key)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, ErrTypeMismatch(key, value)
	}

	return typed, nil
}

// Must resolves or panics - use only during startup.
func Must[T any](c *Container, key string) T {
	value, err := Resolve[T](c, key)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", key, err))
	}

	return value
}

// RegisterSingleton is a convenience wrapper for singleton bindings.
func RegisterSingleton[T any](c *Container, key string, factory func() (T, error)) error {
	return c.Register(key, func() (any, error) {
		return factory()
	})
}

// RegisterTransient is a convenience wrapper for transient bindings:
// every resolution invokes the factory.
func RegisterTransient[T any](c *Container, key string, factory func() (T, error)) error {
	return c.Register(key, func() (any, error) {
		return factory()
	}, InScope(ScopeTransient))
}

// RegisterValue registers a pre-built instance (always singleton).
func RegisterValue[T any](c *Container, key string, value T) error {
	return c.RegisterInstance(key, value)
}

// GetLogger resolves the logger from the container.
// This is a convenience function for the conventional "logger" binding.
func GetLogger(c *Container) (logger.Logger, error) {
	l, err := c.Resolve("logger")
	if err != nil {
		return nil, err
	}

	log, ok := l.(logger.Logger)
	if !ok {
		return nil, fmt.Errorf("resolved instance is not Logger, got %T", l)
	}

	return log, nil
}

// GetMetrics resolves the metrics sink from the container.
// This is a convenience function for the conventional "metrics" binding.
func GetMetrics(c *Container) (metrics.Metrics, error) {
	m, err := c.Resolve("metrics")
	if err != nil {
		return nil, err
	}

	sink, ok := m.(metrics.Metrics)
	if !ok {
		return nil, fmt.Errorf("resolved instance is not Metrics, got %T", m)
	}

	return sink, nil
}
