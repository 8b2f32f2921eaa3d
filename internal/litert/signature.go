package litert

import "errors"

// ErrNoSignatures is returned when signature introspection is requested on a
// model that carries no SignatureDef metadata. Many models simply omit it;
// callers that can fall back to index-based addressing should treat this as
// a soft condition.
var ErrNoSignatures = errors.New("model declares no signatures")

// TensorNames holds the ordered input and output tensor names of one signature.
type TensorNames struct {
	Input  []string
	Output []string
}

// SignatureTensorNames extracts, for every signature the interpreter's model
// declares, the ordered input and output tensor names. Order follows each
// SignatureDef's declared binding order.
func SignatureTensorNames(interp *Interpreter) (map[string]TensorNames, error) {
	defs := interp.SignatureDefs()
	if len(defs) == 0 {
		return nil, ErrNoSignatures
	}

	names := make(map[string]TensorNames, len(defs))
	for i := range defs {
		def := &defs[i]
		tn := TensorNames{
			Input:  make([]string, len(def.Inputs)),
			Output: make([]string, len(def.Outputs)),
		}
		for j := range def.Inputs {
			tn.Input[j] = def.Inputs[j].Name
		}
		for j := range def.Outputs {
			tn.Output[j] = def.Outputs[j].Name
		}
		names[def.Key] = tn
	}
	return names, nil
}
