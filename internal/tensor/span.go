package tensor

// Span is an ordered, read-only view over borrowed tensors.
//
// A Span never owns its tensors: the caller keeps ownership and must keep
// them alive for the lifetime of the view. Remapping input tensors produces
// a new Span over the same underlying tensors in a different order.
type Span struct {
	tensors []*RawTensor
}

// NewSpan creates a Span borrowing the given tensors.
// The slice is not copied; callers must not mutate it afterwards.
func NewSpan(tensors []*RawTensor) Span {
	return Span{tensors: tensors}
}

// Len returns the number of tensors in the view.
func (s Span) Len() int {
	return len(s.tensors)
}

// At returns the borrowed tensor at position i.
func (s Span) At(i int) *RawTensor {
	return s.tensors[i]
}

// Tensors returns the underlying slice. The returned slice is still borrowed;
// callers must not retain it past the tensors' lifetime.
func (s Span) Tensors() []*RawTensor {
	return s.tensors
}
