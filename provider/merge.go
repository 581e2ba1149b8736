package provider

import (
	"fmt"
	"reflect"

	"github.com/0xalexb/hjarta-config/merge"
)

// Merge combines fragments, in order, into one aggregated fragment.
//
// Every key but KeyDependencies follows merge.Maps. Dependencies are replayed
// fragment by fragment: a plain binding overwrites whatever is not a
// PriorityBinding, a PriorityBinding absorbs later priority bindings through
// MergeWith and ignores later plain ones.
//
// The result does not share containers with the inputs. Zero fragments yield
// an empty fragment.
func Merge(fragments ...Fragment) (Fragment, error) {
	generic := make([]map[string]any, 0, len(fragments))
	hasDependencies := false

	for _, fragment := range fragments {
		rest := make(map[string]any, len(fragment))

		for key, value := range fragment {
			if key == KeyDependencies {
				hasDependencies = true

				continue
			}

			rest[key] = value
		}

		generic = append(generic, rest)
	}

	result := Fragment(merge.Maps(generic...))

	if !hasDependencies {
		return result, nil
	}

	deps, err := resolveDependencies(fragments)
	if err != nil {
		return nil, err
	}

	result[KeyDependencies] = deps

	return result, nil
}

func resolveDependencies(fragments []Fragment) (map[string]any, error) {
	resolved := make(map[string]any)

	for index, fragment := range fragments {
		raw := fragment[KeyDependencies]
		if raw == nil {
			continue
		}

		bindings, err := bindingsOf(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: fragment %d: %w", ErrMalformedFragment, index, err)
		}

		for abstract, binding := range bindings {
			current, isPriority := resolved[abstract].(PriorityBinding)
			incoming, incomingIsPriority := binding.(PriorityBinding)

			switch {
			case !isPriority && incomingIsPriority:
				resolved[abstract] = incoming
			case !isPriority:
				resolved[abstract] = merge.Normalize(binding)
			case incomingIsPriority:
				resolved[abstract] = current.MergeWith(incoming)
			}
		}
	}

	return resolved, nil
}

// bindingsOf returns a shallow view of a string-keyed map of any type.
func bindingsOf(raw any) (map[string]any, error) {
	if bindings, ok := raw.(map[string]any); ok {
		return bindings, nil
	}

	if merge.KindOf(raw) != merge.KindMapping {
		return nil, fmt.Errorf("%q is a %s, want mapping", KeyDependencies, merge.KindOf(raw))
	}

	rv := reflect.ValueOf(raw)
	bindings := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		bindings[iter.Key().String()] = iter.Value().Interface()
	}

	return bindings, nil
}
