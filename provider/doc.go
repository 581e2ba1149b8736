// Package provider aggregates configuration fragments contributed by
// independently packaged providers into one merged configuration.
//
// A Directory lists provider identifiers in order. Each identifier is resolved
// through a Resolver (usually a Registry) into a Factory; the Provider it builds
// returns a Fragment. Identifiers that cannot be resolved are skipped.
//
// Fragments are merged with the recursive concatenating rules of the merge
// package, except for the dependencies key: it is rebuilt by replaying the
// fragments in order, where a plain binding is overwritten by later ones and a
// PriorityBinding absorbs later priority bindings through MergeWith.
//
// Config memoizes the aggregated result until Clear is called:
//
//	registry := provider.NewRegistry()
//	_ = registry.Register("cache", func() provider.Provider {
//	    return provider.ProviderFunc(func() (provider.Fragment, error) {
//	        return provider.Fragment{
//	            provider.KeyDependencies: map[string]any{"cache.Interface": "cache.Redis"},
//	        }, nil
//	    })
//	})
//
//	cfg := provider.New(provider.StaticDirectory{"cache"}, registry)
//	merged, err := cfg.Load()
package provider
