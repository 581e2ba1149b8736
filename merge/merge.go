package merge

import (
	"reflect"
	"slices"
	"strconv"
)

// Kind classifies a nested value.
type Kind int

const (
	// KindScalar is any value that is neither a sequence nor a mapping.
	KindScalar Kind = iota
	// KindSequence is a slice or array.
	KindSequence
	// KindMapping is a map keyed by strings.
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "scalar"
	}
}

// KindOf reports the kind of value.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil, []byte:
		return KindScalar
	case []any:
		return KindSequence
	case map[string]any:
		return KindMapping
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // only container kinds matter
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindScalar
		}

		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
	}

	return KindScalar
}

// Normalize returns a deep copy of value's container structure in which every
// sequence is a []any and every mapping is a map[string]any.
// Scalars are returned as they are.
func Normalize(value any) any {
	switch KindOf(value) {
	case KindSequence:
		return sequence(value)
	case KindMapping:
		return mapping(value)
	default:
		return value
	}
}

// Maps merges the given mappings in order into a new map.
// The inputs are not modified. Zero inputs yield an empty map.
func Maps(maps ...map[string]any) map[string]any {
	result := make(map[string]any)

	for _, m := range maps {
		mergeMappings(result, mapping(m))
	}

	return result
}

// Values merges incoming into existing as if both were found at the same key.
// Neither input is modified.
func Values(existing, incoming any) any {
	return collide(Normalize(existing), Normalize(incoming))
}

func sequence(value any) []any {
	if items, ok := value.([]any); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Normalize(item)
		}

		return out
	}

	rv := reflect.ValueOf(value)
	out := make([]any, rv.Len())

	for i := range rv.Len() {
		out[i] = Normalize(rv.Index(i).Interface())
	}

	return out
}

func mapping(value any) map[string]any {
	if entries, ok := value.(map[string]any); ok {
		out := make(map[string]any, len(entries))
		for key, item := range entries {
			out[key] = Normalize(item)
		}

		return out
	}

	rv := reflect.ValueOf(value)
	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = Normalize(iter.Value().Interface())
	}

	return out
}

// mergeMappings merges src into dst. Both must be owned, normalized values.
// Integer keys of src are appended to dst in ascending order; other keys
// are merged by name.
func mergeMappings(dst, src map[string]any) map[string]any {
	indices := make([]int, 0, len(src))

	for key, value := range src {
		if n, ok := index(key); ok {
			indices = append(indices, n)

			continue
		}

		existing, ok := dst[key]
		if !ok {
			dst[key] = value

			continue
		}

		dst[key] = collide(existing, value)
	}

	slices.Sort(indices)

	next := nextIndex(dst)
	for _, n := range indices {
		dst[strconv.Itoa(next)] = src[strconv.Itoa(n)]
		next++
	}

	return dst
}

func collide(existing, incoming any) any {
	target := promote(existing)

	if KindOf(incoming) == KindScalar {
		return appendItem(target, incoming)
	}

	return combine(target, incoming)
}

// promote turns a scalar into a one-element sequence.
func promote(value any) any {
	switch value.(type) {
	case []any, map[string]any:
		return value
	default:
		return []any{value}
	}
}

func combine(dst, src any) any {
	switch target := dst.(type) {
	case []any:
		switch incoming := src.(type) {
		case []any:
			return append(target, incoming...)
		case map[string]any:
			return mergeMappings(indexed(target), incoming)
		}
	case map[string]any:
		switch incoming := src.(type) {
		case []any:
			next := nextIndex(target)
			for _, item := range incoming {
				target[strconv.Itoa(next)] = item
				next++
			}

			return target
		case map[string]any:
			return mergeMappings(target, incoming)
		}
	}

	return dst
}

func appendItem(container, item any) any {
	switch target := container.(type) {
	case []any:
		return append(target, item)
	case map[string]any:
		target[strconv.Itoa(nextIndex(target))] = item

		return target
	default:
		return container
	}
}

func indexed(items []any) map[string]any {
	out := make(map[string]any, len(items))
	for i, item := range items {
		out[strconv.Itoa(i)] = item
	}

	return out
}

// nextIndex returns one past the largest canonical non-negative integer key.
func nextIndex(m map[string]any) int {
	next := 0

	for key := range m {
		if n, ok := index(key); ok && n >= next {
			next = n + 1
		}
	}

	return next
}

// index reports whether key is a canonical non-negative integer.
func index(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 || strconv.Itoa(n) != key {
		return 0, false
	}

	return n, true
}
