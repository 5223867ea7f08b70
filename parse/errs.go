package parse

import (
	"errors"
	"fmt"
)

// Code identifies a parse failure. The set is closed.
type Code int

const (
	OK Code = iota
	RootNotSingular
	BadValue
	ExpectValue
	NumberTooBig
	BadStringChar
	BadStringEscape
	BadUnicodeHex
	BadUnicodeSurrogate
	MissingQuotationMark
	MissingCommaOrSquareBracket
	MissingKey
	MissingColon
	MissingCommaOrCurlyBracket
	UserStopped
)

var messages = [...]string{
	OK:                          "ok",
	RootNotSingular:             "root not singular",
	BadValue:                    "bad value",
	ExpectValue:                 "expect value",
	NumberTooBig:                "number too big",
	BadStringChar:               "bad character",
	BadStringEscape:             "bad escape",
	BadUnicodeHex:               "bad unicode hex",
	BadUnicodeSurrogate:         "bad unicode surrogate",
	MissingQuotationMark:        "miss quotation mark",
	MissingCommaOrSquareBracket: "miss comma or square bracket",
	MissingKey:                  "miss key",
	MissingColon:                "miss colon",
	MissingCommaOrCurlyBracket:  "miss comma or curly bracket",
	UserStopped:                 "user stopped parse",
}

// String returns the fixed message of c.
func (c Code) String() string {
	if c < 0 || int(c) >= len(messages) {
		return fmt.Sprintf("<unknown parse error %d>", int(c))
	}
	return messages[c]
}

var (
	ErrParse = errors.New("parse error")

	ErrRootNotSingular             = errors.New(RootNotSingular.String())
	ErrBadValue                    = errors.New(BadValue.String())
	ErrExpectValue                 = errors.New(ExpectValue.String())
	ErrNumberTooBig                = errors.New(NumberTooBig.String())
	ErrBadStringChar               = errors.New(BadStringChar.String())
	ErrBadStringEscape             = errors.New(BadStringEscape.String())
	ErrBadUnicodeHex               = errors.New(BadUnicodeHex.String())
	ErrBadUnicodeSurrogate         = errors.New(BadUnicodeSurrogate.String())
	ErrMissingQuotationMark        = errors.New(MissingQuotationMark.String())
	ErrMissingCommaOrSquareBracket = errors.New(MissingCommaOrSquareBracket.String())
	ErrMissingKey                  = errors.New(MissingKey.String())
	ErrMissingColon                = errors.New(MissingColon.String())
	ErrMissingCommaOrCurlyBracket  = errors.New(MissingCommaOrCurlyBracket.String())
	ErrUserStopped                 = errors.New(UserStopped.String())
)

// Err returns the sentinel matching c under errors.Is, or nil for OK.
func (c Code) Err() error {
	switch c {
	case RootNotSingular:
		return ErrRootNotSingular
	case BadValue:
		return ErrBadValue
	case ExpectValue:
		return ErrExpectValue
	case NumberTooBig:
		return ErrNumberTooBig
	case BadStringChar:
		return ErrBadStringChar
	case BadStringEscape:
		return ErrBadStringEscape
	case BadUnicodeHex:
		return ErrBadUnicodeHex
	case BadUnicodeSurrogate:
		return ErrBadUnicodeSurrogate
	case MissingQuotationMark:
		return ErrMissingQuotationMark
	case MissingCommaOrSquareBracket:
		return ErrMissingCommaOrSquareBracket
	case MissingKey:
		return ErrMissingKey
	case MissingColon:
		return ErrMissingColon
	case MissingCommaOrCurlyBracket:
		return ErrMissingCommaOrCurlyBracket
	case UserStopped:
		return ErrUserStopped
	default:
		return nil
	}
}

// Error is the error returned by a failed parse.
//
// Offset is the byte offset of the failure. Line and Col are one based
// and are zero when the source cannot report positions. For UserStopped,
// Err is the error returned by the handler.
type Error struct {
	Code   Code
	Offset int
	Line   int
	Col    int
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s at offset %d", ErrParse, e.Code, e.Offset)
	if e.Line != 0 {
		msg += fmt.Sprintf(" (line=%d, col=%d)", e.Line, e.Col)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrParse and the sentinel of e's code.
func (e *Error) Is(target error) bool {
	return target == ErrParse || target == e.Code.Err()
}

// CodeOf returns the code of a parse error, OK for nil, and false for
// errors not produced by a parse.
func CodeOf(err error) (Code, bool) {
	if err == nil {
		return OK, true
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return OK, false
}
