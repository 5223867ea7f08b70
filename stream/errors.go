package stream

import "errors"

var (
	// ErrStop is returned by a handler to end a stream early without
	// signalling a failure of its own.
	ErrStop = errors.New("stopped by handler")

	ErrDepth          = errors.New("negative depth")
	ErrKeyNotInObject = errors.New("key not in object")
	ErrKeyAfterKey    = errors.New("key after key")
	ErrMissingKey     = errors.New("value where key expected")
	ErrKeyNoValue     = errors.New("key without value")
	ErrMismatch       = errors.New("mismatched end")
	ErrRootNotSingle  = errors.New("root not singular")
)

// Error represents a stream error at a path.
type Error struct {
	Err  error
	Path string
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " at " + e.Path
}
