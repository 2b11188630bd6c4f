package cask

// BindingInfo contains diagnostic information about a binding.
type BindingInfo struct {
	// Key is the binding's key.
	Key string

	// Bound reports whether the key has a binding at all.
	Bound bool

	// Scope is the name of the scope the binding lives in.
	Scope string

	// DependsOn lists the declared dependency keys, sorted.
	DependsOn []string

	// Missing lists declared dependencies with no binding, sorted.
	Missing []string

	// Cached reports whether the binding's scope currently holds an
	// instance for the key. Inspecting never instantiates a lazy scope.
	Cached bool
}

// Inspect returns diagnostic information about a key.
func (c *Container) Inspect(key string) BindingInfo {
	info := BindingInfo{
		Key:       key,
		DependsOn: c.deps.get(key),
		Missing:   c.deps.missing(key, c.reg.has),
	}

	b, err := c.reg.get(key)
	if err != nil {
		return info
	}

	info.Bound = true
	info.Scope = b.scopeName()
	info.Cached = b.cachedIn()

	return info
}

// BindingQuery defines criteria for querying bindings.
type BindingQuery struct {
	// Scope filters by scope name. Empty string matches all scopes.
	Scope string

	// DependsOn filters to bindings that declare a dependency on this key.
	// Empty string matches all bindings.
	DependsOn string

	// Cached filters by whether an instance is currently cached.
	// nil matches all bindings.
	Cached *bool
}

// Query returns information about bindings matching the query criteria.
//
// Example:
//
//	// All transient bindings that depend on the database
//	infos := c.Query(cask.BindingQuery{
//	    Scope:     cask.ScopeTransient,
//	    DependsOn: "db",
//	})
func (c *Container) Query(query BindingQuery) []BindingInfo {
	var results []BindingInfo

	for _, key := range c.Keys() {
		info := c.Inspect(key)

		if query.Scope != "" && info.Scope != query.Scope {
			continue
		}

		if query.DependsOn != "" {
			found := false

			for _, dep := range info.DependsOn {
				if dep == query.DependsOn {
					found = true

					break
				}
			}

			if !found {
				continue
			}
		}

		if query.Cached != nil && info.Cached != *query.Cached {
			continue
		}

		results = append(results, info)
	}

	return results
}

// QueryKeys returns the keys of bindings matching the query criteria.
func (c *Container) QueryKeys(query BindingQuery) []string {
	results := c.Query(query)

	keys := make([]string, len(results))
	for i, info := range results {
		keys[i] = info.Key
	}

	return keys
}
