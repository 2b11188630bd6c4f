package cask

// Higher-order wrappers that resolve bindings and forward them as leading
// arguments of ordinary functions. No signature introspection: the caller
// names the keys, the wrapper resolves them at call time, so a key resolved
// from a transient binding is fresh on every call.

// Partial returns a function that resolves key and forwards it as the
// leading argument of fn.
//
//	send := cask.Partial(c, func(m *Mailer, to string) string {
//	    return m.Send(to)
//	}, "mailer")
//	receipt, err := send("ops@example.com")
func Partial[A, B, R any](c *Container, fn func(A, B) R, key string) func(B) (R, error) {
	return func(b B) (R, error) {
		var zero R

		a, err := Resolve[A](c, key)
		if err != nil {
			return zero, err
		}

		return fn(a, b), nil
	}
}

// Partial2 resolves two keys as the two leading arguments of fn.
func Partial2[A, B, C, R any](c *Container, fn func(A, B, C) R, keyA, keyB string) func(C) (R, error) {
	return func(rest C) (R, error) {
		var zero R

		a, err := Resolve[A](c, keyA)
		if err != nil {
			return zero, err
		}

		b, err := Resolve[B](c, keyB)
		if err != nil {
			return zero, err
		}

		return fn(a, b, rest), nil
	}
}

// Apply resolves key and calls fn with it immediately, returning fn's result.
// Useful when the injected call happens exactly once at wiring time.
func Apply[A, R any](c *Container, fn func(A) R, key string) (R, error) {
	var zero R

	a, err := Resolve[A](c, key)
	if err != nil {
		return zero, err
	}

	return fn(a), nil
}

// Apply2 resolves two keys and calls fn with them immediately.
func Apply2[A, B, R any](c *Container, fn func(A, B) R, keyA, keyB string) (R, error) {
	var zero R

	a, err := Resolve[A](c, keyA)
	if err != nil {
		return zero, err
	}

	b, err := Resolve[B](c, keyB)
	if err != nil {
		return zero, err
	}

	return fn(a, b), nil
}
