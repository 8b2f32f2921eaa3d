package iomap

import "errors"

// Mapping error taxonomy. All are recoverable: they are returned to the
// caller and never terminate the process. Callers classify with errors.Is.
var (
	// ErrDuplicateIndex reports a repeated position in a configured index
	// list or in the result of name resolution.
	ErrDuplicateIndex = errors.New("duplicate tensor index")

	// ErrDuplicateSignatureName reports a model signature declaring the same
	// tensor name twice. Signatures are expected to have unique names;
	// repetition indicates a malformed model.
	ErrDuplicateSignatureName = errors.New("duplicate tensor name in model signature")

	// ErrUnknownTensorName reports a configured name absent from the active
	// signature's name list.
	ErrUnknownTensorName = errors.New("tensor name not found in model signature")

	// ErrUnsupportedModel reports a name-based mapping request against a
	// model with zero or more than one signature.
	ErrUnsupportedModel = errors.New("unsupported model for tensor name-based mapping")

	// ErrSizeMismatch reports a tensor batch whose length differs from the
	// stored index list at remap time.
	ErrSizeMismatch = errors.New("tensor count does not match mapping size")

	// ErrIndexOutOfRange reports a stored index outside the incoming batch's
	// bounds at remap time.
	ErrIndexOutOfRange = errors.New("tensor index out of range")
)
