package cask

// Binding holds configuration for a key to be registered.
type Binding struct {
	Key     string
	Factory Factory
	Options []BindOption
}

// Entry creates a Binding for batch registration.
//
// Example:
//
//	err := cask.RegisterBindings(c,
//	    cask.Entry("db", openDB),
//	    cask.Entry("session", newSession, cask.InScope(cask.ScopeGoroutine)),
//	)
func Entry(key string, factory Factory, opts ...BindOption) Binding {
	return Binding{
		Key:     key,
		Factory: factory,
		Options: opts,
	}
}

// RegisterBindings registers multiple bindings in a single call.
// Returns on the first registration that fails; earlier bindings stay.
func RegisterBindings(c *Container, bindings ...Binding) error {
	for _, b := range bindings {
		if err := c.Register(b.Key, b.Factory, b.Options...); err != nil {
			return err
		}
	}

	return nil
}

// TypedBinding holds configuration for a typed key to be registered.
type TypedBinding[T any] struct {
	Key     Key[T]
	Factory func() (T, error)
	Options []BindOption
}

// TypedEntry creates a TypedBinding for batch registration with typed keys.
func TypedEntry[T any](key Key[T], factory func() (T, error), opts ...BindOption) TypedBinding[T] {
	return TypedBinding[T]{
		Key:     key,
		Factory: factory,
		Options: opts,
	}
}

// RegisterTypedBindings registers multiple typed bindings in a single call.
func RegisterTypedBindings[T any](c *Container, bindings ...TypedBinding[T]) error {
	for _, b := range bindings {
		if err := RegisterKey(c, b.Key, b.Factory, b.Options...); err != nil {
			return err
		}
	}

	return nil
}
