package cask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	logger "github.com/xraph/go-utils/log"
)

func TestResolveTyped(t *testing.T) {
	c := New()

	err := c.Register("test", func() (any, error) {
		return &widget{name: "test"}, nil
	})
	require.NoError(t, err)

	val, err := Resolve[*widget](c, "test")
	require.NoError(t, err)
	assert.Equal(t, "test", val.name)
}

func TestResolveTyped_Mismatch(t *testing.T) {
	c := New()

	err := c.Register("test", func() (any, error) {
		return "a string", nil
	})
	require.NoError(t, err)

	_, err = Resolve[*widget](c, "test")
	assert.ErrorIs(t, err, ErrTypeMismatchSentinel)
}

func TestResolveTyped_NotBound(t *testing.T) {
	c := New()

	_, err := Resolve[string](c, "nope")
	assert.ErrorIs(t, err, ErrKeyNotFoundSentinel)
}

func TestMust(t *testing.T) {
	c := New()

	err := c.RegisterInstance("test", &widget{name: "test"})
	require.NoError(t, err)

	val := Must[*widget](c, "test")
	assert.Equal(t, "test", val.name)

	assert.Panics(t, func() {
		Must[*widget](c, "nonexistent")
	})
}

func TestRegisterSingletonHelper(t *testing.T) {
	c := New()
	calls := 0

	err := RegisterSingleton(c, "test", func() (*widget, error) {
		calls++

		return &widget{name: "test"}, nil
	})
	require.NoError(t, err)

	val1 := Must[*widget](c, "test")
	val2 := Must[*widget](c, "test")

	assert.Same(t, val1, val2)
	assert.Equal(t, 1, calls)
}

func TestRegisterTransientHelper(t *testing.T) {
	c := New()
	calls := 0

	err := RegisterTransient(c, "test", func() (*widget, error) {
		calls++

		return &widget{name: "test"}, nil
	})
	require.NoError(t, err)

	val1 := Must[*widget](c, "test")
	val2 := Must[*widget](c, "test")

	assert.NotSame(t, val1, val2)
	assert.Equal(t, 2, calls)
}

func TestRegisterValueHelper(t *testing.T) {
	c := New()
	obj := &widget{name: "fixed"}

	err := RegisterValue(c, "test", obj)
	require.NoError(t, err)

	assert.Same(t, obj, Must[*widget](c, "test"))
}

func TestGetLogger(t *testing.T) {
	c := New()

	_, err := GetLogger(c)
	assert.Error(t, err)

	err = c.RegisterInstance("logger", logger.NewNoopLogger())
	require.NoError(t, err)

	log, err := GetLogger(c)
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestGetMetrics_NotBound(t *testing.T) {
	c := New()

	_, err := GetMetrics(c)
	assert.ErrorIs(t, err, ErrKeyNotFoundSentinel)
}
