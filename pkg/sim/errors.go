package sim

import "errors"

// Failure classes of a single field extraction. All of them are handled
// locally inside the decoder that hit them: the field stays absent and the
// remaining decoders still run.
var (
	// ErrSelectionFailed indicates that neither the legacy nor the
	// path-based selection reached the file.
	ErrSelectionFailed = errors.New("sim: file selection failed")

	// ErrReadFailed indicates a non-success status after the one-shot
	// length correction, or a malformed read response.
	ErrReadFailed = errors.New("sim: binary read failed")

	// ErrDecodeSkipped indicates a well-formed read whose byte pattern
	// does not satisfy the decoder's structural precondition (e.g. a
	// zero-length dialing number).
	ErrDecodeSkipped = errors.New("sim: data does not match expected layout")
)
