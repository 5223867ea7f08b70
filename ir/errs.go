package ir

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrMissingKey   = errors.New("missing key")
	ErrUnsupported  = errors.New("unsupported go value")
)

// TypeMismatchError is the panic value of an accessor or mutator applied
// to a Value of the wrong kind.
type TypeMismatchError struct {
	Op   string
	Want []Kind
	Got  Kind
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	ws := make([]string, len(e.Want))
	for i, k := range e.Want {
		ws[i] = k.String()
	}
	return fmt.Sprintf("%s: %s wants %s, got %s", ErrTypeMismatch, e.Op, strings.Join(ws, "|"), e.Got)
}

// MissingKeyError is the panic value of Get on an object without the key.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Unwrap() error {
	return ErrMissingKey
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s %q", ErrMissingKey, e.Key)
}
