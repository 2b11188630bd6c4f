package cask

import (
	"sort"
	"sync"
)

// dependencyRegistry tracks declared dependency edges: dependent key -> set
// of keys it requires. Absence of an entry means "nothing declared", which
// callers must distinguish from "declared empty".
type dependencyRegistry struct {
	mu    sync.RWMutex
	edges map[string]map[string]struct{}
}

func newDependencyRegistry() *dependencyRegistry {
	return &dependencyRegistry{edges: make(map[string]map[string]struct{})}
}

// add unions keys into obj's declared set. Duplicates collapse; declaring
// zero keys records nothing.
func (d *dependencyRegistry) add(obj string, keys ...string) {
	if len(keys) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	set, ok := d.edges[obj]
	if !ok {
		set = make(map[string]struct{})
		d.edges[obj] = set
	}

	for _, key := range keys {
		set[key] = struct{}{}
	}
}

// get returns obj's declared dependencies, sorted, or nil when obj never had
// dependencies declared.
func (d *dependencyRegistry) get(obj string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	set, ok := d.edges[obj]
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// missing returns the declared dependencies of obj for which bound reports
// no binding. Nil when obj never had dependencies declared. The check is
// shallow: it verifies each key has some binding, not that the key itself is
// recursively resolvable.
func (d *dependencyRegistry) missing(obj string, bound func(string) bool) []string {
	deps := d.get(obj)
	if deps == nil {
		return nil
	}

	var missing []string

	for _, key := range deps {
		if !bound(key) {
			missing = append(missing, key)
		}
	}

	return missing
}

// cycleFrom walks the declared edges from key and returns the first cycle
// found as a key path, or nil. DFS with a visiting set; keys with no entry
// terminate the walk.
func (d *dependencyRegistry) cycleFrom(key string) []string {
	visited := make(map[string]bool)
	visiting := make(map[string]bool)

	var path []string

	if cycle := d.visit(key, visited, visiting, &path); cycle != nil {
		return cycle
	}

	return nil
}

func (d *dependencyRegistry) visit(key string, visited, visiting map[string]bool, path *[]string) []string {
	if visited[key] {
		return nil
	}

	if visiting[key] {
		// Trim the path to the segment that forms the cycle.
		cycle := append([]string{}, *path...)
		for i, k := range cycle {
			if k == key {
				cycle = cycle[i:]

				break
			}
		}

		return append(cycle, key)
	}

	visiting[key] = true
	*path = append(*path, key)

	for _, dep := range d.get(key) {
		if cycle := d.visit(dep, visited, visiting, path); cycle != nil {
			return cycle
		}
	}

	*path = (*path)[:len(*path)-1]
	visiting[key] = false
	visited[key] = true

	return nil
}
