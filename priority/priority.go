// Package priority provides a dependency binding that resolves conflicts by
// priority.
//
// A Definition collects candidate concrete implementations with a priority
// each. Merging two definitions unions their candidates; the later definition
// wins when both name the same concrete. The resolved concrete is the candidate
// with the highest priority, ties going to the candidate added last.
//
//	provider.Fragment{
//	    provider.KeyDependencies: map[string]any{
//	        "cache.Interface": priority.New("cache.Redis", 10),
//	    },
//	}
package priority

import (
	"slices"

	"github.com/0xalexb/hjarta-config/provider"
)

type candidate struct {
	concrete string
	priority int
}

// Definition is an immutable set of prioritized candidates.
type Definition struct {
	candidates []candidate
}

var _ provider.PriorityBinding = (*Definition)(nil)

// New creates a Definition with a single candidate.
func New(concrete string, priority int) *Definition {
	return &Definition{
		candidates: []candidate{{concrete: concrete, priority: priority}},
	}
}

// MergeWith returns a new Definition holding the candidates of both.
// Bindings of other types are ignored and d is returned unchanged.
// A nil d yields other.
//
//nolint:ireturn // the interface is the contract of provider.PriorityBinding
func (d *Definition) MergeWith(other provider.PriorityBinding) provider.PriorityBinding {
	if d == nil {
		return other
	}

	incoming, ok := other.(*Definition)
	if !ok || incoming == nil {
		return d
	}

	merged := &Definition{candidates: slices.Clone(d.candidates)}

	for _, next := range incoming.candidates {
		merged.candidates = slices.DeleteFunc(merged.candidates, func(c candidate) bool {
			return c.concrete == next.concrete
		})
		merged.candidates = append(merged.candidates, next)
	}

	return merged
}

// Concrete returns the winning concrete implementation.
func (d *Definition) Concrete() string {
	winner, _ := d.winner()

	return winner.concrete
}

// Priority returns the priority of the winning candidate.
func (d *Definition) Priority() int {
	winner, _ := d.winner()

	return winner.priority
}

// Candidates returns every concrete with its priority.
func (d *Definition) Candidates() map[string]int {
	out := make(map[string]int, len(d.candidates))
	for _, c := range d.candidates {
		out[c.concrete] = c.priority
	}

	return out
}

// MarshalYAML renders the resolved binding.
func (d *Definition) MarshalYAML() (any, error) {
	return map[string]any{
		"concrete": d.Concrete(),
		"priority": d.Priority(),
	}, nil
}

func (d *Definition) winner() (candidate, bool) {
	if d == nil || len(d.candidates) == 0 {
		return candidate{concrete: "", priority: 0}, false
	}

	best := d.candidates[0]

	for _, c := range d.candidates[1:] {
		if c.priority >= best.priority {
			best = c
		}
	}

	return best, true
}
