package litert

import (
	"fmt"

	"github.com/born-ml/liteinfer/internal/tensor"
)

// Kernel executes a single op over resolved input and output tensors.
//
// Kernels in this runtime are shape-level: they validate and move bytes but
// perform no arithmetic. Embedding applications register their own kernels
// for real compute.
type Kernel func(inputs, outputs []*tensor.RawTensor) error

// OpResolver maps op types to kernels, in the role an op resolver plays
// when building an interpreter from a model.
type OpResolver struct {
	kernels map[string]Kernel
}

// NewOpResolver creates an empty resolver.
func NewOpResolver() *OpResolver {
	return &OpResolver{kernels: make(map[string]Kernel)}
}

// NewBuiltinResolver creates a resolver pre-registered with the builtin ops.
func NewBuiltinResolver() *OpResolver {
	r := NewOpResolver()
	r.Register("IDENTITY", identityKernel)
	r.Register("RESHAPE", identityKernel)
	return r
}

// Register adds or replaces the kernel for an op type.
func (r *OpResolver) Register(opType string, k Kernel) {
	r.kernels[opType] = k
}

// Find returns the kernel registered for an op type.
func (r *OpResolver) Find(opType string) (Kernel, bool) {
	k, ok := r.kernels[opType]
	return k, ok
}

// identityKernel copies each input's bytes into the corresponding output.
func identityKernel(inputs, outputs []*tensor.RawTensor) error {
	if len(inputs) != len(outputs) {
		return fmt.Errorf("identity op has %d inputs but %d outputs", len(inputs), len(outputs))
	}
	for i := range inputs {
		if inputs[i].ByteSize() != outputs[i].ByteSize() {
			return fmt.Errorf("identity op size mismatch: input %d bytes vs output %d bytes",
				inputs[i].ByteSize(), outputs[i].ByteSize())
		}
		copy(outputs[i].Data(), inputs[i].Data())
	}
	return nil
}

// boundOp is an op with its kernel and tensor slots resolved.
type boundOp struct {
	opType  string
	kernel  Kernel
	inputs  []int
	outputs []int
}

// InterpreterBuilder constructs an Interpreter from a model and an op resolver.
type InterpreterBuilder struct {
	model    *Model
	resolver *OpResolver
}

// NewInterpreterBuilder creates a builder for the given model and resolver.
func NewInterpreterBuilder(model *Model, resolver *OpResolver) InterpreterBuilder {
	return InterpreterBuilder{model: model, resolver: resolver}
}

// Build validates the model against the resolver, allocates one tensor per
// declared slot, and returns a runnable interpreter.
func (b InterpreterBuilder) Build() (*Interpreter, error) {
	if b.model == nil {
		return nil, fmt.Errorf("interpreter builder has no model")
	}
	if b.resolver == nil {
		return nil, fmt.Errorf("interpreter builder has no op resolver")
	}

	sg := b.model.Primary()

	tensors := make([]*tensor.RawTensor, len(sg.Tensors))
	for i := range sg.Tensors {
		info := &sg.Tensors[i]
		dtype, err := tensorDataType(info.DataType)
		if err != nil {
			return nil, fmt.Errorf("tensor %d (%q): %w", i, info.Name, err)
		}
		shape := make(tensor.Shape, len(info.Dims))
		for d, dim := range info.Dims {
			shape[d] = int(dim)
		}
		t, err := tensor.NewNamedRaw(info.Name, shape, dtype)
		if err != nil {
			return nil, fmt.Errorf("tensor %d (%q): %w", i, info.Name, err)
		}
		tensors[i] = t
	}

	ops := make([]boundOp, 0, len(sg.Ops))
	for i := range sg.Ops {
		op := &sg.Ops[i]
		kernel, ok := b.resolver.Find(op.OpType)
		if !ok {
			return nil, fmt.Errorf("op %d: no kernel registered for op type %q", i, op.OpType)
		}
		in, err := resolveSlots(op.Inputs, len(tensors))
		if err != nil {
			return nil, fmt.Errorf("op %d (%s) inputs: %w", i, op.OpType, err)
		}
		out, err := resolveSlots(op.Outputs, len(tensors))
		if err != nil {
			return nil, fmt.Errorf("op %d (%s) outputs: %w", i, op.OpType, err)
		}
		ops = append(ops, boundOp{opType: op.OpType, kernel: kernel, inputs: in, outputs: out})
	}

	return &Interpreter{
		model:   b.model,
		tensors: tensors,
		inputs:  toIntSlice(sg.Inputs),
		outputs: toIntSlice(sg.Outputs),
		ops:     ops,
	}, nil
}

// resolveSlots converts wire tensor indices to ints, range-checking each.
func resolveSlots(indices []int32, numTensors int) ([]int, error) {
	result := make([]int, len(indices))
	for i, idx := range indices {
		if int(idx) < 0 || int(idx) >= numTensors {
			return nil, fmt.Errorf("tensor index %d out of range [0, %d)", idx, numTensors)
		}
		result[i] = int(idx)
	}
	return result, nil
}

func toIntSlice(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// Interpreter holds the allocated tensor slots of a model's primary subgraph
// and runs its ops in declared order.
type Interpreter struct {
	model   *Model
	tensors []*tensor.RawTensor
	inputs  []int
	outputs []int
	ops     []boundOp
}

// Inputs returns the tensor indices of the subgraph inputs, in model order.
func (it *Interpreter) Inputs() []int {
	return it.inputs
}

// Outputs returns the tensor indices of the subgraph outputs, in model order.
func (it *Interpreter) Outputs() []int {
	return it.outputs
}

// NumTensors returns the number of allocated tensor slots.
func (it *Interpreter) NumTensors() int {
	return len(it.tensors)
}

// Tensor returns the tensor at slot idx.
func (it *Interpreter) Tensor(idx int) (*tensor.RawTensor, error) {
	if idx < 0 || idx >= len(it.tensors) {
		return nil, fmt.Errorf("tensor index %d out of range [0, %d)", idx, len(it.tensors))
	}
	return it.tensors[idx], nil
}

// InputTensor returns the i-th subgraph input tensor.
func (it *Interpreter) InputTensor(i int) (*tensor.RawTensor, error) {
	if i < 0 || i >= len(it.inputs) {
		return nil, fmt.Errorf("input %d out of range [0, %d)", i, len(it.inputs))
	}
	return it.tensors[it.inputs[i]], nil
}

// OutputTensor returns the i-th subgraph output tensor.
func (it *Interpreter) OutputTensor(i int) (*tensor.RawTensor, error) {
	if i < 0 || i >= len(it.outputs) {
		return nil, fmt.Errorf("output %d out of range [0, %d)", i, len(it.outputs))
	}
	return it.tensors[it.outputs[i]], nil
}

// SignatureKeys returns the model's signature keys in declaration order.
func (it *Interpreter) SignatureKeys() []string {
	defs := it.model.SignatureDefs()
	keys := make([]string, len(defs))
	for i := range defs {
		keys[i] = defs[i].Key
	}
	return keys
}

// SignatureDefs returns the model's signature definitions.
func (it *Interpreter) SignatureDefs() []SignatureDefProto {
	return it.model.SignatureDefs()
}

// Invoke runs all ops in declared order.
func (it *Interpreter) Invoke() error {
	for i := range it.ops {
		op := &it.ops[i]
		inputs := make([]*tensor.RawTensor, len(op.inputs))
		for j, idx := range op.inputs {
			inputs[j] = it.tensors[idx]
		}
		outputs := make([]*tensor.RawTensor, len(op.outputs))
		for j, idx := range op.outputs {
			outputs[j] = it.tensors[idx]
		}
		if err := op.kernel(inputs, outputs); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.opType, err)
		}
	}
	return nil
}
