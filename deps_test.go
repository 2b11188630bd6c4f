package cask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyRegistry_GetNilVsDeclared(t *testing.T) {
	d := newDependencyRegistry()

	assert.Nil(t, d.get("svc"))

	d.add("svc", "a")
	assert.Equal(t, []string{"a"}, d.get("svc"))

	// Declaring zero keys records nothing.
	d.add("other")
	assert.Nil(t, d.get("other"))
}

func TestDependencyRegistry_Union(t *testing.T) {
	d := newDependencyRegistry()

	d.add("svc", "b", "a")
	d.add("svc", "a", "c")

	assert.Equal(t, []string{"a", "b", "c"}, d.get("svc"))
}

func TestDependencyRegistry_Missing(t *testing.T) {
	d := newDependencyRegistry()
	bound := map[string]bool{"a": true}
	has := func(key string) bool { return bound[key] }

	// Never declared: nil, not empty.
	assert.Nil(t, d.missing("svc", has))

	d.add("svc", "a", "b", "c")
	assert.Equal(t, []string{"b", "c"}, d.missing("svc", has))

	bound["b"] = true
	bound["c"] = true
	assert.Empty(t, d.missing("svc", has))
}

func TestDependencyRegistry_CycleFrom(t *testing.T) {
	d := newDependencyRegistry()

	d.add("a", "b")
	d.add("b", "c")
	assert.Nil(t, d.cycleFrom("a"))

	d.add("c", "a")
	cycle := d.cycleFrom("a")
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycle)

	// The cycle is reported from wherever the walk enters it.
	assert.NotNil(t, d.cycleFrom("b"))
}

func TestDependencyRegistry_SelfCycle(t *testing.T) {
	d := newDependencyRegistry()

	d.add("a", "a")
	assert.Equal(t, []string{"a", "a"}, d.cycleFrom("a"))
}

func TestDependencyRegistry_DiamondIsNotACycle(t *testing.T) {
	d := newDependencyRegistry()

	d.add("top", "left", "right")
	d.add("left", "base")
	d.add("right", "base")

	assert.Nil(t, d.cycleFrom("top"))
}
