package iomap

import (
	"log"
	"sync"

	"github.com/born-ml/liteinfer/internal/litert"
)

// TensorNames holds the ordered input and output tensor names of one signature.
type TensorNames = litert.TensorNames

// InputOutputTensorNames maps signature keys to their ordered tensor names.
// An empty map means name-based mapping is unavailable for the model.
type InputOutputTensorNames = map[string]TensorNames

var (
	warnSignatureOnce   sync.Once
	warnInterpreterOnce sync.Once
)

// GetInputOutputTensorNamesFromInterpreter extracts the per-signature tensor
// names from an interpreter's model. It never fails hard: models without
// signature metadata yield an empty mapping and a one-time warning, since
// index-based mapping must keep working for them.
func GetInputOutputTensorNamesFromInterpreter(interp *litert.Interpreter) InputOutputTensorNames {
	names, err := litert.SignatureTensorNames(interp)
	if err != nil {
		warnSignatureOnce.Do(func() {
			log.Printf("warning: unable to extract the model's tensor names from its signatures: %v. "+
				"Disabling tensor name-based I/O mapping.", err)
		})
		return InputOutputTensorNames{}
	}
	return names
}

// GetInputOutputTensorNamesFromModel builds an interpreter for the model and
// extracts the per-signature tensor names from it. Interpreter construction
// failure is not fatal: it yields an empty mapping and a one-time warning.
func GetInputOutputTensorNamesFromModel(model *litert.Model, resolver *litert.OpResolver) InputOutputTensorNames {
	interp, err := litert.NewInterpreterBuilder(model, resolver).Build()
	if err != nil {
		warnInterpreterOnce.Do(func() {
			log.Printf("warning: extracting tensor names from model signatures failed: "+
				"unable to prepare interpreter: %v. Ignoring tensor name-based I/O mapping.", err)
		})
		return InputOutputTensorNames{}
	}
	return GetInputOutputTensorNamesFromInterpreter(interp)
}
