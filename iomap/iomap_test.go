package iomap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/liteinfer/iomap"
	"github.com/born-ml/liteinfer/litert"
	"github.com/born-ml/liteinfer/tensor"
)

func namedBatch(t *testing.T, names ...string) []*tensor.RawTensor {
	t.Helper()
	batch := make([]*tensor.RawTensor, len(names))
	for i, name := range names {
		raw, err := tensor.NewNamedRaw(name, tensor.Shape{1}, tensor.Float32)
		require.NoError(t, err)
		batch[i] = raw
	}
	return batch
}

// Drives the whole public surface: model -> interpreter -> signature names ->
// UpdateIoMap -> both remap directions.
func TestNameBasedRemappingEndToEnd(t *testing.T) {
	model := twoInputModel(t)
	interp, err := litert.NewInterpreterBuilder(model, litert.NewBuiltinResolver()).Build()
	require.NoError(t, err)

	names := iomap.GetInputOutputTensorNamesFromInterpreter(interp)
	require.Len(t, names, 1)

	mapper := iomap.New()
	// The caller feeds (mask, ids) but the model wants (ids, mask).
	err = mapper.UpdateIoMap(iomap.InputOutputConfig{
		InputTensorNamesMap: &iomap.TensorNamesMap{
			TensorNames: []string{"mask", "ids"},
		},
	}, names)
	require.NoError(t, err)

	mapped, err := mapper.RemapInputTensors(tensor.NewSpan(namedBatch(t, "mask-data", "ids-data")))
	require.NoError(t, err)
	// "mask" is signature input 1, so mask-data scatters to physical slot 1.
	assert.Equal(t, "ids-data", mapped.At(0).Name())
	assert.Equal(t, "mask-data", mapped.At(1).Name())
}

func TestOutputGatherEndToEnd(t *testing.T) {
	mapper := iomap.New()
	err := mapper.UpdateIoMap(iomap.InputOutputConfig{
		OutputTensorIndicesMap: &iomap.TensorIndicesMap{ModelTensorIndices: []int{2, 0, 1}},
	}, nil)
	require.NoError(t, err)

	gathered, err := mapper.RemapOutputTensors(namedBatch(t, "A", "B", "C"))
	require.NoError(t, err)
	require.Len(t, gathered, 3)
	assert.Equal(t, "C", gathered[0].Name())
	assert.Equal(t, "A", gathered[1].Name())
	assert.Equal(t, "B", gathered[2].Name())
}

func TestErrorClassification(t *testing.T) {
	mapper := iomap.New()
	err := mapper.UpdateIoMap(iomap.InputOutputConfig{
		InputTensorNamesMap: &iomap.TensorNamesMap{TensorNames: []string{"x"}},
	}, iomap.InputOutputTensorNames{})
	require.ErrorIs(t, err, iomap.ErrUnsupportedModel)

	err = mapper.UpdateIoMap(iomap.InputOutputConfig{
		InputTensorIndicesMap: &iomap.TensorIndicesMap{ModelTensorIndices: []int{0, 0}},
	}, nil)
	require.ErrorIs(t, err, iomap.ErrDuplicateIndex)
}

func twoInputModel(t *testing.T) *litert.Model {
	t.Helper()
	model, err := litert.LoadModelFromBytes(twoInputModelBytes())
	require.NoError(t, err)
	return model
}

// wireBuilder is a minimal protobuf wire format encoder for test models.
type wireBuilder struct {
	data []byte
}

func (b *wireBuilder) varint(v int) {
	u := uint64(v) //nolint:gosec // G115: test values are non-negative.
	for u >= 0x80 {
		b.data = append(b.data, byte(u)|0x80)
		u >>= 7
	}
	b.data = append(b.data, byte(u))
}

func (b *wireBuilder) varintField(field, v int) {
	b.varint(field << 3)
	b.varint(v)
}

func (b *wireBuilder) bytesField(field int, payload []byte) {
	b.varint(field<<3 | 2)
	b.varint(len(payload))
	b.data = append(b.data, payload...)
}

func (b *wireBuilder) stringField(field int, s string) {
	b.bytesField(field, []byte(s))
}

func (b *wireBuilder) packedField(field int, values ...int) {
	packed := &wireBuilder{}
	for _, v := range values {
		packed.varint(v)
	}
	b.bytesField(field, packed.data)
}

func wireTensorInfo(name string) []byte {
	info := &wireBuilder{}
	info.stringField(1, name)
	info.varintField(2, 0) // float32
	info.packedField(3, 1)
	return info.data
}

func wireTensorMap(name string, index int) []byte {
	tm := &wireBuilder{}
	tm.stringField(1, name)
	tm.varintField(2, index)
	return tm.data
}

// twoInputModelBytes encodes a minimal container with tensors (ids, mask,
// logits) and one serving_default signature.
func twoInputModelBytes() []byte {
	buf := &wireBuilder{}
	buf.varintField(1, 1) // version

	sg := &wireBuilder{}
	sg.bytesField(2, wireTensorInfo("ids:0"))
	sg.bytesField(2, wireTensorInfo("mask:0"))
	sg.bytesField(2, wireTensorInfo("logits:0"))
	sg.packedField(3, 0, 1) // inputs
	sg.packedField(4, 2)    // outputs
	buf.bytesField(3, sg.data)

	sig := &wireBuilder{}
	sig.stringField(1, "serving_default")
	sig.bytesField(2, wireTensorMap("ids", 0))
	sig.bytesField(2, wireTensorMap("mask", 1))
	sig.bytesField(3, wireTensorMap("logits", 2))
	buf.bytesField(4, sig.data)

	return buf.data
}
