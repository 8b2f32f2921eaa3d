package litert

import (
	"fmt"

	"github.com/born-ml/liteinfer/internal/tensor"
)

// Model represents a loaded model container ready for interpreter construction.
type Model struct {
	proto *ModelProto
}

// LoadModelFromFile parses and validates a model container from file.
func LoadModelFromFile(path string) (*Model, error) {
	proto, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return NewModel(proto)
}

// LoadModelFromBytes parses and validates a model container from bytes.
func LoadModelFromBytes(data []byte) (*Model, error) {
	proto, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return NewModel(proto)
}

// NewModel validates a parsed ModelProto and wraps it.
func NewModel(proto *ModelProto) (*Model, error) {
	if proto == nil {
		return nil, fmt.Errorf("model proto is nil")
	}
	if len(proto.Subgraphs) == 0 {
		return nil, fmt.Errorf("model has no subgraphs")
	}

	primary := &proto.Subgraphs[0]
	numTensors := int32(len(primary.Tensors)) //nolint:gosec // G115: tensor count fits in int32.

	for _, idx := range primary.Inputs {
		if idx < 0 || idx >= numTensors {
			return nil, fmt.Errorf("subgraph input index %d out of range [0, %d)", idx, numTensors)
		}
	}
	for _, idx := range primary.Outputs {
		if idx < 0 || idx >= numTensors {
			return nil, fmt.Errorf("subgraph output index %d out of range [0, %d)", idx, numTensors)
		}
	}

	for i := range proto.SignatureDefs {
		sig := &proto.SignatureDefs[i]
		if err := validateBindings(sig.Key, sig.Inputs, numTensors); err != nil {
			return nil, err
		}
		if err := validateBindings(sig.Key, sig.Outputs, numTensors); err != nil {
			return nil, err
		}
	}

	return &Model{proto: proto}, nil
}

// validateBindings range-checks a signature's tensor bindings.
func validateBindings(key string, bindings []TensorMapProto, numTensors int32) error {
	for _, tm := range bindings {
		if tm.TensorIndex < 0 || tm.TensorIndex >= numTensors {
			return fmt.Errorf("signature %q maps %q to tensor %d, out of range [0, %d)",
				key, tm.Name, tm.TensorIndex, numTensors)
		}
	}
	return nil
}

// Version returns the container schema version.
func (m *Model) Version() int64 {
	return m.proto.Version
}

// Description returns the model description string.
func (m *Model) Description() string {
	return m.proto.Description
}

// Metadata returns model metadata as key-value pairs.
func (m *Model) Metadata() map[string]string {
	meta := make(map[string]string, len(m.proto.Metadata))
	for _, prop := range m.proto.Metadata {
		meta[prop.Key] = prop.Value
	}
	return meta
}

// Primary returns the primary (first) subgraph.
func (m *Model) Primary() *SubgraphProto {
	return &m.proto.Subgraphs[0]
}

// SignatureDefs returns the model's declared signatures, in declaration order.
func (m *Model) SignatureDefs() []SignatureDefProto {
	return m.proto.SignatureDefs
}

// tensorDataType converts a wire-format data type to a tensor.DataType.
func tensorDataType(dt int32) (tensor.DataType, error) {
	switch dt {
	case 0:
		return tensor.Float32, nil
	case 1:
		return tensor.Float64, nil
	case 2:
		return tensor.Int32, nil
	case 3:
		return tensor.Int64, nil
	case 4:
		return tensor.Uint8, nil
	case 5:
		return tensor.Bool, nil
	default:
		return 0, fmt.Errorf("unsupported tensor data type: %d", dt)
	}
}
