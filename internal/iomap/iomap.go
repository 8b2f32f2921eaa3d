package iomap

import (
	"fmt"
	"strings"

	"github.com/born-ml/liteinfer/internal/tensor"
)

// ioMapping is an immutable snapshot of the two resolved index lists.
// UpdateIoMap builds a fresh snapshot and installs it wholesale; the remap
// methods only ever read the installed one.
type ioMapping struct {
	inputs  []int
	outputs []int
}

// Mapper remaps tensor batches between a caller-facing logical order and the
// model's physical slot order.
//
// UpdateIoMap replaces the stored mapping wholesale; the remap methods only
// read it. The Mapper does no internal locking: reconfigure only between
// inference calls.
type Mapper struct {
	mapping ioMapping
}

// New creates a Mapper with no mapping configured. Both remap operations are
// the identity until UpdateIoMap installs one.
func New() *Mapper {
	return &Mapper{}
}

// validateTensorIndices checks a configured index list for duplicates and
// returns it as-is. Range is deliberately not checked here: the true tensor
// count is only known when a batch arrives at remap time.
func validateTensorIndices(m *TensorIndicesMap) ([]int, error) {
	seen := make(map[int]struct{}, len(m.ModelTensorIndices))
	result := make([]int, 0, len(m.ModelTensorIndices))
	for _, index := range m.ModelTensorIndices {
		if _, ok := seen[index]; ok {
			return nil, fmt.Errorf("%w: indices in tensor indices map are not unique: %v",
				ErrDuplicateIndex, m.ModelTensorIndices)
		}
		seen[index] = struct{}{}
		result = append(result, index)
	}
	return result, nil
}

// nameToIndexMap builds a name -> position table from a signature's ordered
// tensor names.
func nameToIndexMap(names []string) (map[string]int, error) {
	table := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := table[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSignatureName, strings.Join(names, ", "))
		}
		table[name] = i
	}
	return table, nil
}

// mapTensorNamesToIndices resolves configured tensor names against a
// signature's ordered name list, preserving the configured order.
func mapTensorNamesToIndices(signatureNames []string, m *TensorNamesMap) ([]int, error) {
	table, err := nameToIndexMap(signatureNames)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, len(m.TensorNames))
	seen := make(map[int]struct{}, len(m.TensorNames))
	for _, name := range m.TensorNames {
		index, ok := table[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (model tensor names: %s)",
				ErrUnknownTensorName, name, strings.Join(signatureNames, ", "))
		}
		if _, ok := seen[index]; ok {
			return nil, fmt.Errorf("%w: duplicate tensor names in tensor names map: %s",
				ErrDuplicateIndex, strings.Join(m.TensorNames, ", "))
		}
		seen[index] = struct{}{}
		result = append(result, index)
	}
	return result, nil
}

// UpdateIoMap replaces the stored input/output index lists from config.
//
// Index-based maps are validated for duplicates only; name-based maps are
// resolved against the model's signature and require names to hold exactly
// one signature. On error the stored mapping is left cleared; the caller
// must treat the configuration as rejected and not run inference.
func (m *Mapper) UpdateIoMap(config InputOutputConfig, names InputOutputTensorNames) error {
	// Clear first: after a failed update the previous mapping must not
	// silently stay in effect.
	m.mapping = ioMapping{}

	var next ioMapping

	if config.InputTensorIndicesMap != nil {
		indices, err := validateTensorIndices(config.InputTensorIndicesMap)
		if err != nil {
			return err
		}
		next.inputs = indices
	}

	if config.OutputTensorIndicesMap != nil {
		indices, err := validateTensorIndices(config.OutputTensorIndicesMap)
		if err != nil {
			return err
		}
		next.outputs = indices
	}

	if !config.hasNamesMap() {
		// No tensor name mapping is provided.
		m.mapping = next
		return nil
	}

	if len(names) == 0 {
		return fmt.Errorf("%w: tensor name-based mapping requires a model with one signature",
			ErrUnsupportedModel)
	}
	if len(names) > 1 {
		return fmt.Errorf("%w: tensor name-based mapping is not supported with multi-signature models",
			ErrUnsupportedModel)
	}

	// Use tensor names of the default (single) signature.
	var signature TensorNames
	for _, tn := range names {
		signature = tn
	}

	if config.InputTensorNamesMap != nil {
		indices, err := mapTensorNamesToIndices(signature.Input, config.InputTensorNamesMap)
		if err != nil {
			return err
		}
		next.inputs = indices
	}

	if config.OutputTensorNamesMap != nil {
		indices, err := mapTensorNamesToIndices(signature.Output, config.OutputTensorNamesMap)
		if err != nil {
			return err
		}
		next.outputs = indices
	}

	m.mapping = next
	return nil
}

// RemapInputTensors scatters a borrowed batch into model order: the tensor
// at logical position i is placed at the physical position the stored input
// list names for i. With no input mapping configured it returns the span
// unchanged.
func (m *Mapper) RemapInputTensors(unmapped tensor.Span) (tensor.Span, error) {
	indices := m.mapping.inputs
	if len(indices) == 0 {
		return unmapped, nil
	}
	if unmapped.Len() != len(indices) {
		return tensor.Span{}, fmt.Errorf(
			"%w: number of input tensors (%d) does not match number of indices in the provided mapping (%d)",
			ErrSizeMismatch, unmapped.Len(), len(indices))
	}

	mapped := make([]*tensor.RawTensor, unmapped.Len())
	for i := 0; i < unmapped.Len(); i++ {
		index := indices[i]
		if index < 0 || index >= unmapped.Len() {
			return tensor.Span{}, fmt.Errorf("%w: index %d out of range [0, %d)",
				ErrIndexOutOfRange, index, unmapped.Len())
		}
		mapped[index] = unmapped.At(i)
	}
	return tensor.NewSpan(mapped), nil
}

// RemapOutputTensors gathers an owned batch back into caller order: logical
// position i takes the tensor at the physical position the stored output
// list names for i. Ownership of the tensors moves into the returned slice;
// moved-from slots in the input slice are nilled out. With no output mapping
// configured it returns the batch unchanged.
func (m *Mapper) RemapOutputTensors(unmapped []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	indices := m.mapping.outputs
	if len(indices) == 0 {
		return unmapped, nil
	}
	if len(unmapped) != len(indices) {
		return nil, fmt.Errorf(
			"%w: number of output tensors (%d) does not match number of indices in the provided mapping (%d)",
			ErrSizeMismatch, len(unmapped), len(indices))
	}

	mapped := make([]*tensor.RawTensor, 0, len(unmapped))
	for i := range unmapped {
		index := indices[i]
		if index < 0 || index >= len(unmapped) {
			return nil, fmt.Errorf("%w: index %d out of range [0, %d)",
				ErrIndexOutOfRange, index, len(unmapped))
		}
		mapped = append(mapped, unmapped[index])
		unmapped[index] = nil
	}
	return mapped, nil
}
