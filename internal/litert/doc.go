// Package litert implements the model container and interpreter liteinfer
// remaps tensors for.
//
// The container is a protobuf-encoded description of a model's tensor slots,
// ops, and optional SignatureDef entries. This package implements a
// hand-written protobuf parser for it without external dependencies.
//
// Key components:
//   - ModelProto: top-level container with subgraphs, signatures, and metadata
//   - SubgraphProto: tensor slot declarations plus ops in execution order
//   - SignatureDefProto: ordered name -> tensor index bindings per entry point
//   - Model: validated wrapper around a parsed ModelProto
//   - OpResolver / InterpreterBuilder / Interpreter: kernel registry, build
//     step, and the allocated runtime view of the primary subgraph
//   - SignatureTensorNames: ordered per-signature tensor name introspection
//
// Kernels here are shape-level (validate and move bytes); element arithmetic
// is the embedding application's concern.
package litert
