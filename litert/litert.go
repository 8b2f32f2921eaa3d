// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package litert provides the public API for the liteinfer model container
// and interpreter.
//
// A model container declares tensor slots, shape-level ops, and optional
// SignatureDef entries binding stable tensor names to slot indices. An
// Interpreter is built from a model plus an OpResolver and exposes the
// allocated tensors and the signature metadata used for name-based I/O
// mapping.
//
// Example:
//
//	model, err := litert.LoadModelFromFile("model.pb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	interp, err := litert.NewInterpreterBuilder(model, litert.NewBuiltinResolver()).Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Signatures:", interp.SignatureKeys())
package litert

import (
	"github.com/born-ml/liteinfer/internal/litert"
)

// Model represents a loaded, validated model container.
type Model = litert.Model

// Interpreter holds a model's allocated tensor slots and runs its ops.
type Interpreter = litert.Interpreter

// InterpreterBuilder constructs an Interpreter from a model and an op resolver.
type InterpreterBuilder = litert.InterpreterBuilder

// OpResolver maps op types to kernels.
type OpResolver = litert.OpResolver

// Kernel executes a single op over resolved input and output tensors.
type Kernel = litert.Kernel

// TensorNames holds the ordered input and output tensor names of one signature.
type TensorNames = litert.TensorNames

// ErrNoSignatures is returned by SignatureTensorNames when the model carries
// no SignatureDef metadata.
var ErrNoSignatures = litert.ErrNoSignatures

// LoadModelFromFile parses and validates a model container from a file path.
func LoadModelFromFile(path string) (*Model, error) {
	return litert.LoadModelFromFile(path)
}

// LoadModelFromBytes parses and validates a model container from raw bytes.
//
// This is useful when the model is embedded in the binary or loaded from a
// network source.
func LoadModelFromBytes(data []byte) (*Model, error) {
	return litert.LoadModelFromBytes(data)
}

// NewOpResolver creates an empty op resolver.
func NewOpResolver() *OpResolver {
	return litert.NewOpResolver()
}

// NewBuiltinResolver creates a resolver pre-registered with the builtin ops.
func NewBuiltinResolver() *OpResolver {
	return litert.NewBuiltinResolver()
}

// NewInterpreterBuilder creates a builder for the given model and resolver.
func NewInterpreterBuilder(model *Model, resolver *OpResolver) InterpreterBuilder {
	return litert.NewInterpreterBuilder(model, resolver)
}

// SignatureTensorNames extracts the ordered per-signature tensor names from
// an interpreter's model. Returns ErrNoSignatures when the model declares
// none; callers that can fall back to index-based mapping should treat that
// as a soft condition (see the iomap package helpers).
func SignatureTensorNames(interp *Interpreter) (map[string]TensorNames, error) {
	return litert.SignatureTensorNames(interp)
}
