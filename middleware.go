package cask

import (
	"context"

	logger "github.com/xraph/go-utils/log"
)

// Middleware provides hooks for intercepting resolution.
// Middleware can be used for logging, metrics, testing, etc.
type Middleware interface {
	// BeforeResolve is called before resolving a key.
	// Return error to abort resolution.
	BeforeResolve(ctx context.Context, key string) error

	// AfterResolve is called after resolving a key.
	// Called even if resolution failed (value and err may both be set).
	AfterResolve(ctx context.Context, key string, value any, err error) error
}

// middlewareChain manages multiple middleware.
type middlewareChain struct {
	middleware []Middleware
}

func newMiddlewareChain() *middlewareChain {
	return &middlewareChain{
		middleware: make([]Middleware, 0),
	}
}

func (m *middlewareChain) add(middleware Middleware) {
	m.middleware = append(m.middleware, middleware)
}

func (m *middlewareChain) beforeResolve(ctx context.Context, key string) error {
	for _, mw := range m.middleware {
		if err := mw.BeforeResolve(ctx, key); err != nil {
			return err
		}
	}

	return nil
}

func (m *middlewareChain) afterResolve(ctx context.Context, key string, value any, err error) error {
	for _, mw := range m.middleware {
		if mwErr := mw.AfterResolve(ctx, key, value, err); mwErr != nil {
			return mwErr
		}
	}

	return nil
}

// FuncMiddleware wraps functions as Middleware.
type FuncMiddleware struct {
	BeforeResolveFunc func(ctx context.Context, key string) error
	AfterResolveFunc  func(ctx context.Context, key string, value any, err error) error
}

// BeforeResolve implements Middleware.
func (f *FuncMiddleware) BeforeResolve(ctx context.Context, key string) error {
	if f.BeforeResolveFunc != nil {
		return f.BeforeResolveFunc(ctx, key)
	}

	return nil
}

// AfterResolve implements Middleware.
func (f *FuncMiddleware) AfterResolve(ctx context.Context, key string, value any, err error) error {
	if f.AfterResolveFunc != nil {
		return f.AfterResolveFunc(ctx, key, value, err)
	}

	return nil
}

// LoggingMiddleware logs every resolution through the given logger.
func LoggingMiddleware(log logger.Logger) Middleware {
	return &FuncMiddleware{
		AfterResolveFunc: func(ctx context.Context, key string, value any, err error) error {
			if err != nil {
				log.Error("resolution failed",
					logger.String("key", key),
					logger.String("error", err.Error()),
				)

				return nil
			}

			log.Debug("resolved",
				logger.String("key", key),
			)

			return nil
		},
	}
}
