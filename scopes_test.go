package cask

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapScope_Basics(t *testing.T) {
	s := newMapScope("test", nil)

	assert.Equal(t, "test", s.Name())
	assert.Equal(t, 0, s.Len())

	_, ok := s.Get("a")
	assert.False(t, ok)

	s.Set("a", 1)
	s.Set("b", 2)

	val, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	assert.Equal(t, 2, s.Len())

	s.Set("a", 10)
	val, _ = s.Get("a")
	assert.Equal(t, 10, val)
	assert.Equal(t, 2, s.Len())

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"b"}, s.Keys())
}

func TestProcessScope_KeyTransform(t *testing.T) {
	s := newProcessScope().(*mapScope)

	s.Set("db", "conn")

	val, ok := s.Get("db")
	assert.True(t, ok)
	assert.Equal(t, "conn", val)

	// Stored keys carry the pid prefix, so a forked child reading the same
	// map would miss the parent's entries.
	prefix := strconv.Itoa(os.Getpid()) + "_"

	_, ok = s.instances["db"]
	assert.False(t, ok)
	_, ok = s.instances[prefix+"db"]
	assert.True(t, ok)
}

func TestTransientScope_DiscardsWrites(t *testing.T) {
	s := newTransientScope()

	s.Set("a", 1)

	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestGoroutineScope_Isolation(t *testing.T) {
	c := New()
	calls := 0

	err := c.Register("buf", func() (any, error) {
		calls++

		return &widget{name: "buf"}, nil
	}, InScope(ScopeGoroutine))
	require.NoError(t, err)

	// Same goroutine: repeats hit the cache.
	val1, err := c.Resolve("buf")
	require.NoError(t, err)

	val2, err := c.Resolve("buf")
	require.NoError(t, err)
	assert.Same(t, val1, val2)
	assert.Equal(t, 1, calls)

	// Another goroutine sees only instances it created itself.
	var wg sync.WaitGroup

	var other any

	wg.Add(1)

	go func() {
		defer wg.Done()

		val, err := c.Resolve("buf")
		assert.NoError(t, err)
		other = val
	}()

	wg.Wait()

	assert.NotSame(t, val1, other)
	assert.Equal(t, 2, calls)
}

func TestNamedScope(t *testing.T) {
	s := NewNamedScope("sessions")

	assert.Equal(t, "sessions", s.Name())

	s.Set("a", 1)

	val, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	assert.NotZero(t, id)

	// Stable within a goroutine.
	assert.Equal(t, id, goroutineID())

	// Distinct across goroutines.
	var wg sync.WaitGroup

	var otherID uint64

	wg.Add(1)

	go func() {
		defer wg.Done()

		otherID = goroutineID()
	}()

	wg.Wait()

	assert.NotZero(t, otherID)
	assert.NotEqual(t, id, otherID)
}

func TestGoroutineScope_KeyPrefix(t *testing.T) {
	s := newGoroutineScope().(*mapScope)

	s.Set("a", 1)

	for key := range s.instances {
		assert.True(t, strings.HasSuffix(key, "_a"))
	}
}
