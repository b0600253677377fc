package oracle

import "errors"

// positional error texts, index-aligned with the inputs array.
var inputSlotErrors = [4]error{
	errors.New("First input must be an array"),
	errors.New("Second input must be an array"),
	errors.New("Third input must be an array"),
	errors.New("Fourth input must be an array"),
}

// extractInputs validates the shape of a claim request's parameter object:
// an "inputs" member holding exactly four arrays of wire scalars. The four
// arrays are returned in fixed order (key, track, range-a, range-b);
// nothing is decoded here.
func extractInputs(obj map[string]any) (key, track, rangeA, rangeB []any, err error) {
	raw, ok := obj["inputs"]
	if !ok {
		return nil, nil, nil, nil, ErrMissingInputs
	}
	inputs, ok := raw.([]any)
	if !ok {
		return nil, nil, nil, nil, ErrMissingInputs
	}
	if len(inputs) != 4 {
		return nil, nil, nil, nil, ErrInputArity
	}

	arrays := make([][]any, 4)
	for i, in := range inputs {
		arr, ok := in.([]any)
		if !ok {
			return nil, nil, nil, nil, inputSlotErrors[i]
		}
		arrays[i] = arr
	}
	return arrays[0], arrays[1], arrays[2], arrays[3], nil
}
