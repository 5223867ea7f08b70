package token

import (
	"errors"
	"fmt"
)

var (
	ErrAssert    = errors.New("unexpected character")
	ErrBadHex    = errors.New("bad hex digit")
	ErrSurrogate = errors.New("bad surrogate")
)

// AssertError is the panic value of AssertNext on a mismatch.
type AssertError struct {
	Want, Got byte
	Offset    int
}

func (e *AssertError) Unwrap() error {
	return ErrAssert
}

func (e *AssertError) Error() string {
	return fmt.Sprintf("%s: expected %q got %q at offset %d", ErrAssert, e.Want, e.Got, e.Offset)
}
