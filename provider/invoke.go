package provider

import "fmt"

// Invoke builds and calls every resolvable provider in ids, in order.
//
// Identifiers the resolver does not know, or whose factory yields no provider,
// are skipped. The first provider error aborts the whole run; the returned
// error wraps both ErrProviderFailed and the provider's own error.
func Invoke(ids []string, resolver Resolver) ([]Fragment, error) {
	fragments := make([]Fragment, 0, len(ids))

	for _, id := range ids {
		prov := instantiate(resolver, id)
		if prov == nil {
			continue
		}

		fragment, err := prov.Config()
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrProviderFailed, id, err)
		}

		if fragment == nil {
			fragment = Fragment{}
		}

		fragments = append(fragments, fragment)
	}

	return fragments, nil
}

func instantiate(resolver Resolver, id string) Provider {
	if resolver == nil || id == "" {
		return nil
	}

	factory, ok := resolver.Resolve(id)
	if !ok || factory == nil {
		return nil
	}

	return factory()
}
