package litert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/liteinfer/internal/tensor"
)

func testModelProto() *ModelProto {
	return &ModelProto{
		Version: 1,
		Subgraphs: []SubgraphProto{{
			Name: "main",
			Tensors: []TensorInfoProto{
				{Name: "in:0", DataType: 0, Dims: []int64{1, 4}},
				{Name: "out:0", DataType: 0, Dims: []int64{1, 4}},
			},
			Inputs:  []int32{0},
			Outputs: []int32{1},
			Ops:     []OpProto{{OpType: "IDENTITY", Inputs: []int32{0}, Outputs: []int32{1}}},
		}},
		SignatureDefs: []SignatureDefProto{{
			Key:     "serving_default",
			Inputs:  []TensorMapProto{{Name: "x", TensorIndex: 0}},
			Outputs: []TensorMapProto{{Name: "y", TensorIndex: 1}},
		}},
	}
}

func TestNewModelValidates(t *testing.T) {
	_, err := NewModel(nil)
	assert.Error(t, err)

	_, err = NewModel(&ModelProto{})
	assert.Error(t, err, "model without subgraphs must be rejected")

	proto := testModelProto()
	proto.Subgraphs[0].Inputs = []int32{7}
	_, err = NewModel(proto)
	assert.Error(t, err, "out-of-range subgraph input must be rejected")

	proto = testModelProto()
	proto.SignatureDefs[0].Outputs[0].TensorIndex = 9
	_, err = NewModel(proto)
	assert.Error(t, err, "out-of-range signature binding must be rejected")
}

func TestModelAccessors(t *testing.T) {
	proto := testModelProto()
	proto.Description = "unit"
	proto.Metadata = []StringStringEntry{{Key: "k", Value: "v"}}

	model, err := NewModel(proto)
	require.NoError(t, err)
	assert.Equal(t, int64(1), model.Version())
	assert.Equal(t, "unit", model.Description())
	assert.Equal(t, map[string]string{"k": "v"}, model.Metadata())
	assert.Len(t, model.SignatureDefs(), 1)
}

func TestLoadModelFromBytes(t *testing.T) {
	model, err := LoadModelFromBytes(buildSignatureModel())
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, model.Primary().Inputs)
	assert.Len(t, model.SignatureDefs(), 1)
}

func TestInterpreterBuild(t *testing.T) {
	model, err := NewModel(testModelProto())
	require.NoError(t, err)

	interp, err := NewInterpreterBuilder(model, NewBuiltinResolver()).Build()
	require.NoError(t, err)

	assert.Equal(t, []int{0}, interp.Inputs())
	assert.Equal(t, []int{1}, interp.Outputs())
	assert.Equal(t, 2, interp.NumTensors())

	in, err := interp.InputTensor(0)
	require.NoError(t, err)
	assert.Equal(t, "in:0", in.Name())
	assert.True(t, in.Shape().Equal(tensor.Shape{1, 4}))

	_, err = interp.InputTensor(1)
	assert.Error(t, err)
}

func TestInterpreterBuildUnknownOp(t *testing.T) {
	proto := testModelProto()
	proto.Subgraphs[0].Ops[0].OpType = "CONV_2D"
	model, err := NewModel(proto)
	require.NoError(t, err)

	_, err = NewInterpreterBuilder(model, NewBuiltinResolver()).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONV_2D")
}

func TestInterpreterBuildCustomOp(t *testing.T) {
	proto := testModelProto()
	proto.Subgraphs[0].Ops[0].OpType = "MY_OP"
	model, err := NewModel(proto)
	require.NoError(t, err)

	resolver := NewBuiltinResolver()
	called := false
	resolver.Register("MY_OP", func(inputs, outputs []*tensor.RawTensor) error {
		called = true
		return nil
	})

	interp, err := NewInterpreterBuilder(model, resolver).Build()
	require.NoError(t, err)
	require.NoError(t, interp.Invoke())
	assert.True(t, called, "registered kernel should run on Invoke")
}

func TestInterpreterInvokeIdentity(t *testing.T) {
	model, err := NewModel(testModelProto())
	require.NoError(t, err)
	interp, err := NewInterpreterBuilder(model, NewBuiltinResolver()).Build()
	require.NoError(t, err)

	in, err := interp.InputTensor(0)
	require.NoError(t, err)
	copy(in.AsFloat32(), []float32{1, 2, 3, 4})

	require.NoError(t, interp.Invoke())

	out, err := interp.OutputTensor(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, out.AsFloat32())
}

func TestSignatureTensorNames(t *testing.T) {
	model, err := NewModel(testModelProto())
	require.NoError(t, err)
	interp, err := NewInterpreterBuilder(model, NewBuiltinResolver()).Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"serving_default"}, interp.SignatureKeys())

	names, err := SignatureTensorNames(interp)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, []string{"x"}, names["serving_default"].Input)
	assert.Equal(t, []string{"y"}, names["serving_default"].Output)
}

func TestSignatureTensorNamesMissing(t *testing.T) {
	proto := testModelProto()
	proto.SignatureDefs = nil
	model, err := NewModel(proto)
	require.NoError(t, err)
	interp, err := NewInterpreterBuilder(model, NewBuiltinResolver()).Build()
	require.NoError(t, err)

	_, err = SignatureTensorNames(interp)
	require.ErrorIs(t, err, ErrNoSignatures)
}
