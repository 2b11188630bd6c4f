package cask

import (
	"context"
	"fmt"

	logger "github.com/xraph/go-utils/log"
)

// Container ties the three registries together: scopes, bindings, and
// declared dependencies. All methods are safe for concurrent use, though
// registration is best treated as a setup-phase operation.
type Container struct {
	scopes *ScopeRegistry
	reg    *registry
	deps   *dependencyRegistry
	chain  *middlewareChain
	log    logger.Logger
}

// Option configures a container at construction time.
type Option func(*Container)

// WithLogger sets the diagnostic logger. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Container) {
		c.log = log
	}
}

// WithScope installs a custom scope under its own name.
func WithScope(scope Scope) Option {
	return func(c *Container) {
		_ = c.scopes.Add(scope, "")
	}
}

// WithMiddleware adds resolution middleware.
func WithMiddleware(middleware Middleware) Option {
	return func(c *Container) {
		c.chain.add(middleware)
	}
}

func newContainer(opts ...Option) *Container {
	c := &Container{
		scopes: newScopeRegistry(),
		deps:   newDependencyRegistry(),
		chain:  newMiddlewareChain(),
	}
	c.reg = newRegistry(c.scopes)

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logger.NewNoopLogger()
	}

	// The container resolves itself: Resolve("di") yields c.
	_ = c.RegisterInstance("di", c)

	return c
}

// BindOption configures a single registration.
type BindOption func(*bindConfig)

type bindConfig struct {
	scope any
}

// InScope places the binding in the referenced scope: a registered scope
// name, or a Scope instance held by the caller (typically a named scope).
func InScope(ref any) BindOption {
	return func(cfg *bindConfig) {
		cfg.scope = ref
	}
}

// Register binds key to factory. The scope defaults to singleton; an unknown
// scope reference fails here, not at resolution time. Re-registration
// overwrites the previous binding.
func (c *Container) Register(key string, factory Factory, opts ...BindOption) error {
	if key == "" {
		return fmt.Errorf("binding key cannot be empty")
	}

	if factory == nil {
		return ErrInvalidFactory
	}

	cfg := bindConfig{scope: ScopeSingleton}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := c.reg.add(key, factory, cfg.scope); err != nil {
		return err
	}

	b, _ := c.reg.get(key)

	c.log.Debug("binding registered",
		logger.String("key", key),
		logger.String("scope", b.scopeName()),
	)

	return nil
}

// Bind is the two-step form of Register: key and scope now, factory later.
// The end state in the registry is identical to the one-call form.
//
//	bind := c.Bind("db", cask.InScope(cask.ScopeTransient))
//	...
//	err := bind(openDB)
func (c *Container) Bind(key string, opts ...BindOption) func(Factory) error {
	return func(factory Factory) error {
		return c.Register(key, factory, opts...)
	}
}

// RegisterInstance binds key to a fixed value, always in the singleton scope.
func (c *Container) RegisterInstance(key string, value any) error {
	if key == "" {
		return fmt.Errorf("binding key cannot be empty")
	}

	if err := c.reg.addInstance(key, value); err != nil {
		return err
	}

	c.log.Debug("instance registered", logger.String("key", key))

	return nil
}

// AddScope registers a scope instance so bindings can reference it by name.
// An empty name falls back to the scope's own name.
func (c *Container) AddScope(scope Scope, name string) error {
	return c.scopes.Add(scope, name)
}

// DependsOn declares that obj requires the given keys to be bound before it
// can be resolved. Declarations union and deduplicate across calls.
func (c *Container) DependsOn(obj string, keys ...string) {
	c.deps.add(obj, keys...)
}

// Deps returns obj's declared dependencies, or nil when none were declared.
func (c *Container) Deps(obj string) []string {
	return c.deps.get(obj)
}

// Missing returns the declared dependencies of obj that have no binding yet,
// or nil when obj never had dependencies declared.
func (c *Container) Missing(obj string) []string {
	return c.deps.missing(obj, c.reg.has)
}

// Has checks if a key is bound.
func (c *Container) Has(key string) bool {
	return c.reg.has(key)
}

// Keys returns all bound keys, sorted.
func (c *Container) Keys() []string {
	return c.reg.keys()
}

// Use adds middleware to the container.
// Middleware is called in the order they are added.
func (c *Container) Use(middleware Middleware) {
	c.chain.add(middleware)
}

// Resolve produces the instance for key, caching it in the binding's scope.
func (c *Container) Resolve(key string) (any, error) {
	ctx := context.Background()

	if err := c.chain.beforeResolve(ctx, key); err != nil {
		return nil, err
	}

	value, err := c.resolveOne(key)

	if mwErr := c.chain.afterResolve(ctx, key, value, err); mwErr != nil {
		return nil, mwErr
	}

	return value, err
}

// ResolveAll resolves each key independently and returns the values in
// request order. Duplicate keys are allowed; cached scopes serve repeats
// without reconstructing.
func (c *Container) ResolveAll(keys ...string) ([]any, error) {
	values := make([]any, 0, len(keys))

	for _, key := range keys {
		value, err := c.Resolve(key)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

// ResolveKeyed resolves each key and pairs it with its value, in request order.
func (c *Container) ResolveKeyed(keys ...string) ([]KeyedValue, error) {
	values, err := c.ResolveAll(keys...)
	if err != nil {
		return nil, err
	}

	keyed := make([]KeyedValue, len(keys))
	for i, key := range keys {
		keyed[i] = KeyedValue{Key: key, Value: values[i]}
	}

	return keyed, nil
}

// ResolveDeps resolves exactly the dependency set previously declared for
// obj. Nothing declared resolves to nothing.
func (c *Container) ResolveDeps(obj string) ([]any, error) {
	deps := c.deps.get(obj)
	if deps == nil {
		return nil, nil
	}

	return c.ResolveAll(deps...)
}

// resolveOne runs the resolution sequence for a single key: lookup, shallow
// completeness check, declared-cycle check, scope acquisition, cache check,
// construct and cache.
func (c *Container) resolveOne(key string) (any, error) {
	b, err := c.reg.get(key)
	if err != nil {
		return nil, err
	}

	// Shallow: each declared dependency must have some binding. Whether the
	// dependency itself resolves only surfaces when a factory recurses.
	if missing := c.deps.missing(key, c.reg.has); len(missing) > 0 {
		return nil, ErrUnresolvable(key, missing)
	}

	if cycle := c.deps.cycleFrom(key); cycle != nil {
		return nil, ErrCircularDependency(cycle)
	}

	scope, err := c.scopes.Get(b.scope)
	if err != nil {
		return nil, err
	}

	// Fast path: cache hit without the binding lock.
	if value, ok := scope.Get(key); ok {
		return value, nil
	}

	// Slow path: serialize construct/store per binding, so concurrent cold
	// resolutions invoke the factory once for shared-map scopes. Factories
	// that resolve other keys take other bindings' locks, not this one.
	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring the lock.
	if value, ok := scope.Get(key); ok {
		return value, nil
	}

	value, err := b.factory()
	if err != nil {
		// Factory errors propagate unchanged; nothing is cached.
		return nil, err
	}

	scope.Set(key, value)

	c.log.Debug("instance constructed",
		logger.String("key", key),
		logger.String("scope", scope.Name()),
	)

	return value, nil
}
