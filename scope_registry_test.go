package cask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeRegistry_Builtins(t *testing.T) {
	r := newScopeRegistry()

	for _, name := range []string{ScopeSingleton, ScopeProcess, ScopeGoroutine, ScopeTransient} {
		assert.True(t, r.Has(name), name)
	}

	assert.False(t, r.Has("bogus"))
}

func TestScopeRegistry_LazyIdempotent(t *testing.T) {
	r := newScopeRegistry()

	// Lazy entries hold no instance until first Get.
	entry, err := r.resolve(ScopeGoroutine)
	require.NoError(t, err)
	assert.Nil(t, entry.(*scopeEntry).scope)

	s1, err := r.Get(ScopeGoroutine)
	require.NoError(t, err)
	require.NotNil(t, s1)

	// Repeated Get returns the same instance.
	s2, err := r.Get(ScopeGoroutine)
	require.NoError(t, err)
	assert.Same(t, s1, s2)
}

func TestScopeRegistry_AddInstance(t *testing.T) {
	r := newScopeRegistry()
	s := NewNamedScope("request")

	err := r.Add(s, "")
	require.NoError(t, err)

	// Empty name falls back to the scope's own name.
	got, err := r.Get("request")
	require.NoError(t, err)
	assert.Same(t, s, got)

	err = r.Add(s, "alias")
	require.NoError(t, err)

	got, err = r.Get("alias")
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestScopeRegistry_AddNil(t *testing.T) {
	r := newScopeRegistry()

	err := r.Add(nil, "broken")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestScopeRegistry_Unknown(t *testing.T) {
	r := newScopeRegistry()

	_, err := r.Get("bogus")
	assert.ErrorIs(t, err, ErrUnknownScopeSentinel)

	_, err = r.Get(42)
	assert.ErrorIs(t, err, ErrUnknownScopeSentinel)
}

func TestScopeRegistry_InstancePassthrough(t *testing.T) {
	r := newScopeRegistry()
	s := NewNamedScope("adhoc")

	// A scope instance resolves to itself without being registered.
	got, err := r.Get(s)
	require.NoError(t, err)
	assert.Same(t, s, got)
}
