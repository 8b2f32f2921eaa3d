package tensor

import "testing"

func TestSpanBorrowsTensors(t *testing.T) {
	a, _ := NewNamedRaw("a", Shape{1}, Float32)
	b, _ := NewNamedRaw("b", Shape{1}, Float32)

	span := NewSpan([]*RawTensor{a, b})

	if span.Len() != 2 {
		t.Fatalf("Len = %d, want 2", span.Len())
	}
	if span.At(0) != a || span.At(1) != b {
		t.Error("At should return the borrowed tensors in order")
	}

	// Borrowing must not bump reference counts.
	if !a.IsUnique() {
		t.Error("Span must borrow, not share ownership")
	}
}

func TestEmptySpan(t *testing.T) {
	span := NewSpan(nil)
	if span.Len() != 0 {
		t.Errorf("Len = %d, want 0", span.Len())
	}
	if span.Tensors() != nil {
		t.Error("Tensors of an empty span should be nil")
	}
}
