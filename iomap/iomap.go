// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package iomap provides the public API for inference tensor I/O remapping.
//
// A Mapper translates between a caller-chosen logical tensor order and the
// model's physical slot order. The mapping is configured once per setup via
// UpdateIoMap, from either explicit index lists or signature tensor names,
// and applied on every inference call:
//
//	mapper := iomap.New()
//	names := iomap.GetInputOutputTensorNamesFromModel(model, resolver)
//	err := mapper.UpdateIoMap(iomap.InputOutputConfig{
//	    OutputTensorNamesMap: &iomap.TensorNamesMap{
//	        TensorNames: []string{"logits", "hidden_state"},
//	    },
//	}, names)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Per inference call:
//	inputs, err := mapper.RemapInputTensors(tensor.NewSpan(batch))
//	...
//	outputs, err := mapper.RemapOutputTensors(rawOutputs)
//
// Inputs are scattered into model order; outputs are gathered back into
// caller order. See the Mapper method docs for the two index conventions.
package iomap

import (
	"github.com/born-ml/liteinfer/internal/iomap"
	"github.com/born-ml/liteinfer/internal/litert"
)

// Mapper remaps tensor batches between logical and physical order.
// Configure with UpdateIoMap between inference calls; the remap methods are
// read-only and the zero mapping is the identity.
type Mapper = iomap.Mapper

// InputOutputConfig configures tensor I/O remapping.
type InputOutputConfig = iomap.InputOutputConfig

// TensorIndicesMap is an explicit ordered list of model tensor indices.
type TensorIndicesMap = iomap.TensorIndicesMap

// TensorNamesMap is an ordered list of tensor names resolved against the
// model's single signature.
type TensorNamesMap = iomap.TensorNamesMap

// TensorNames holds the ordered input and output tensor names of one signature.
type TensorNames = iomap.TensorNames

// InputOutputTensorNames maps signature keys to their ordered tensor names.
type InputOutputTensorNames = iomap.InputOutputTensorNames

// Mapping errors, matched with errors.Is.
var (
	ErrDuplicateIndex         = iomap.ErrDuplicateIndex
	ErrDuplicateSignatureName = iomap.ErrDuplicateSignatureName
	ErrUnknownTensorName      = iomap.ErrUnknownTensorName
	ErrUnsupportedModel       = iomap.ErrUnsupportedModel
	ErrSizeMismatch           = iomap.ErrSizeMismatch
	ErrIndexOutOfRange        = iomap.ErrIndexOutOfRange
)

// New creates a Mapper with no mapping configured.
func New() *Mapper {
	return iomap.New()
}

// GetInputOutputTensorNamesFromInterpreter extracts per-signature tensor
// names from an interpreter. It never fails hard: models without signature
// metadata yield an empty mapping (name-based mapping unavailable).
func GetInputOutputTensorNamesFromInterpreter(interp *litert.Interpreter) InputOutputTensorNames {
	return iomap.GetInputOutputTensorNamesFromInterpreter(interp)
}

// GetInputOutputTensorNamesFromModel builds an interpreter for the model and
// extracts per-signature tensor names from it. It never fails hard:
// interpreter construction failure yields an empty mapping.
func GetInputOutputTensorNamesFromModel(model *litert.Model, resolver *litert.OpResolver) InputOutputTensorNames {
	return iomap.GetInputOutputTensorNamesFromModel(model, resolver)
}
