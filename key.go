package cask

// Key provides type-safe binding identification.
// Use NewKey to create typed keys for your bindings.
type Key[T any] struct {
	name string
}

// NewKey creates a new typed key.
// The type parameter T ensures type safety when registering and resolving.
//
// Example:
//
//	var DatabaseKey = cask.NewKey[*Database]("database")
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the string name of the key.
func (k Key[T]) Name() string {
	return k.name
}

// RegisterKey registers a binding using a typed key.
//
// Example:
//
//	err := cask.RegisterKey(c, DatabaseKey, func() (*Database, error) {
//	    return openDatabase()
//	}, cask.InScope(cask.ScopeProcess))
func RegisterKey[T any](c *Container, key Key[T], factory func() (T, error), opts ...BindOption) error {
	return c.Register(key.name, func() (any, error) {
		return factory()
	}, opts...)
}

// RegisterKeyInstance binds a typed key to a fixed value (always singleton).
func RegisterKeyInstance[T any](c *Container, key Key[T], value T) error {
	return c.RegisterInstance(key.name, value)
}

// ResolveKey resolves a binding using a typed key.
func ResolveKey[T any](c *Container, key Key[T]) (T, error) {
	return Resolve[T](c, key.name)
}

// MustKey resolves a binding using a typed key and panics on error.
func MustKey[T any](c *Container, key Key[T]) T {
	return Must[T](c, key.name)
}

// HasKey checks if a binding exists for a typed key.
func HasKey[T any](c *Container, key Key[T]) bool {
	return c.Has(key.name)
}
