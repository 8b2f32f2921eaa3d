package tensor

import (
	"testing"
)

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	data := raw.AsFloat32()
	if len(data) != 6 {
		t.Errorf("AsFloat32 length = %d, want 6", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float32); err == nil {
		t.Error("NewRaw with negative dimension should fail")
	}
}

func TestNewNamedRaw(t *testing.T) {
	raw, err := NewNamedRaw("serving_default_input:0", Shape{1, 4}, Int64)
	if err != nil {
		t.Fatalf("NewNamedRaw failed: %v", err)
	}
	if raw.Name() != "serving_default_input:0" {
		t.Errorf("Name() = %q, want %q", raw.Name(), "serving_default_input:0")
	}
}

func TestRawTensorAsInt64ZeroCopy(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 2}, Int64)
	data := raw.AsInt64()

	if len(data) != 6 {
		t.Errorf("AsInt64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsInt64()[0] != 42 {
		t.Error("AsInt64 should return zero-copy slice")
	}
}

func TestRawTensorAsUint8(t *testing.T) {
	raw, _ := NewRaw(Shape{4, 4}, Uint8)
	data := raw.AsUint8()

	if len(data) != 16 {
		t.Errorf("AsUint8 length = %d, want 16", len(data))
	}

	data[0] = 255
	if raw.AsUint8()[0] != 255 {
		t.Error("AsUint8 should return zero-copy slice")
	}
}

func TestRawTensorWrongDTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on an int32 tensor should panic")
		}
	}()
	raw, _ := NewRaw(Shape{2}, Int32)
	raw.AsFloat32()
}

func TestRawTensorCloneSharesBuffer(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32)
	clone := raw.Clone()

	if raw.IsUnique() {
		t.Error("original should not be unique after Clone")
	}

	raw.AsFloat32()[0] = 1.5
	if clone.AsFloat32()[0] != 1.5 {
		t.Error("Clone should share the underlying buffer")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("original should be unique again after clone release")
	}
}

func TestRawTensorByteSize(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float64)
	if raw.ByteSize() != 48 {
		t.Errorf("ByteSize = %d, want 48", raw.ByteSize())
	}
}
