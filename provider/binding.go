package provider

// PriorityBinding is a dependency binding that carries its own conflict rule.
//
// When two providers bind the same abstract identifier with priority bindings,
// the one seen first is asked to merge the later one and the returned binding
// replaces it. The package never inspects a binding beyond this call.
type PriorityBinding interface {
	MergeWith(other PriorityBinding) PriorityBinding
}
