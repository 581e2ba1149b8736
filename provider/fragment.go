package provider

import "github.com/0xalexb/hjarta-config/merge"

// Well-known top-level fragment keys. Fragments may carry any other key;
// unknown keys are merged and preserved like the known ones.
const (
	// KeyDependencies maps abstract identifiers to bindings.
	KeyDependencies = "dependencies"
	// KeyListeners lists event listeners.
	KeyListeners = "listeners"
	// KeyAnnotations holds annotation scanning metadata.
	KeyAnnotations = "annotations"
	// KeyAspects lists cross-cutting interceptors.
	KeyAspects = "aspects"
	// KeyPublish lists publishable asset manifests.
	KeyPublish = "publish"
)

// Fragment is one provider's slice of configuration, keyed by category.
type Fragment map[string]any

// Clone returns a deep copy of the fragment's container structure.
// Scalars, including bindings, are shared.
func (f Fragment) Clone() Fragment {
	if f == nil {
		return Fragment{}
	}

	copied, _ := merge.Normalize(map[string]any(f)).(map[string]any)

	return Fragment(copied)
}

// Dependencies returns the resolved dependency bindings of the fragment.
// The map is nil when the key is absent or is not a mapping.
func (f Fragment) Dependencies() map[string]any {
	deps, _ := merge.Normalize(f[KeyDependencies]).(map[string]any)

	return deps
}
