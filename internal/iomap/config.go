package iomap

// TensorIndicesMap is an explicit ordered list of model tensor indices.
// Position i holds the model tensor index for logical slot i.
type TensorIndicesMap struct {
	ModelTensorIndices []int
}

// TensorNamesMap is an ordered list of tensor names to be resolved against
// the model's (single) signature.
type TensorNamesMap struct {
	TensorNames []string
}

// InputOutputConfig configures tensor I/O remapping. All four fields are
// optional; nil means "no mapping requested" for that shape. For one side,
// the indices map and the names map are mutually exclusive in practice.
type InputOutputConfig struct {
	InputTensorIndicesMap  *TensorIndicesMap
	OutputTensorIndicesMap *TensorIndicesMap
	InputTensorNamesMap    *TensorNamesMap
	OutputTensorNamesMap   *TensorNamesMap
}

// hasNamesMap reports whether any name-based mapping is requested.
func (c InputOutputConfig) hasNamesMap() bool {
	return c.InputTensorNamesMap != nil || c.OutputTensorNamesMap != nil
}
