package oracle

import "errors"

// Fixed error texts surfaced through the JSON-RPC invalid-params channel.
// The spellings are part of the wire contract with the calling circuit.
var (
	ErrNotSingleItemArray = errors.New("Invalid params; expected a single-item array")
	ErrNotObject          = errors.New("Invalid params; expected an object")
	ErrMissingFunction    = errors.New("Missing 'function' field")
	ErrInvalidMethod      = errors.New("Invalid method")

	ErrMissingInputs = errors.New("Missing or invalid 'inputs'")
	ErrInputArity    = errors.New("Invalid input; requires 4 distinct inputs")
	ErrEmptyRanges   = errors.New("Time range or list range is empty")

	ErrEmptyIDOrToken = errors.New("ID or token cannot be empty")
)
