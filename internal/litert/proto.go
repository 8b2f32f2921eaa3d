package litert

// Model container protobuf data structures (hand-written).
//
// The container carries per-subgraph tensor declarations plus optional
// SignatureDef entries mapping stable tensor names to slot indices, in the
// shape TFLite-style runtimes use.

// ModelProto is the top-level model container.
type ModelProto struct {
	Version       int64               // Container schema version
	Description   string              // Free-form model description
	Subgraphs     []SubgraphProto     // Computation subgraphs; the first is primary
	SignatureDefs []SignatureDefProto // Optional named entry points
	Metadata      []StringStringEntry // Key-value metadata
}

// SubgraphProto declares the tensors and ops of one subgraph.
type SubgraphProto struct {
	Name    string            // Subgraph name (optional)
	Tensors []TensorInfoProto // All tensor slots, position = tensor index
	Inputs  []int32           // Indices of subgraph input tensors
	Outputs []int32           // Indices of subgraph output tensors
	Ops     []OpProto         // Operations in execution order
}

// TensorInfoProto describes a single tensor slot.
type TensorInfoProto struct {
	Name     string  // Tensor name (may be empty)
	DataType int32   // Element data type (see tensorDataType)
	Dims     []int64 // Static tensor shape
}

// OpProto is a single operation referencing tensor slots by index.
type OpProto struct {
	OpType  string  // Operation type (e.g., "IDENTITY")
	Inputs  []int32 // Input tensor indices
	Outputs []int32 // Output tensor indices
}

// SignatureDefProto is a named entry point with ordered tensor name bindings.
type SignatureDefProto struct {
	Key     string           // Signature key (e.g., "serving_default")
	Inputs  []TensorMapProto // Ordered input name -> tensor index bindings
	Outputs []TensorMapProto // Ordered output name -> tensor index bindings
}

// TensorMapProto binds a signature-visible name to a tensor slot.
type TensorMapProto struct {
	Name        string // Signature-visible tensor name
	TensorIndex int32  // Tensor slot in the subgraph
}

// StringStringEntry is a key-value metadata pair.
type StringStringEntry struct {
	Key   string
	Value string
}
