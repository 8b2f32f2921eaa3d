// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor buffer API for liteinfer.
//
// The package defines the types tensor remapping operates on:
//   - RawTensor: a reference-counted buffer with shape and type metadata
//   - Span: an ordered, borrowed view over tensors
//   - Shape, DataType: core type definitions
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{1, 4}, tensor.Float32)
//	span := tensor.NewSpan([]*tensor.RawTensor{raw})
package tensor

import (
	"github.com/born-ml/liteinfer/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Buffer sharing via Clone() and reference counting
type RawTensor = tensor.RawTensor

// Span is an ordered, read-only view over borrowed tensors.
type Span = tensor.Span

// NewRaw creates a new RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// NewNamedRaw creates a RawTensor carrying a model-declared tensor name.
func NewNamedRaw(name string, shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewNamedRaw(name, shape, dtype)
}

// NewSpan creates a Span borrowing the given tensors.
func NewSpan(tensors []*RawTensor) Span {
	return tensor.NewSpan(tensors)
}
