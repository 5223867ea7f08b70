// Package parse implements the reader: a single pass grammar engine over
// a token.Source which delivers the events of exactly one value to a
// stream.Handler.
//
// The accepted text is JSON extended with
//
//   - NaN, Infinity and -Infinity, read as doubles
//   - the integer suffixes i32 and i64, pinning the width of an integer
//
// Integers without a suffix are Int32 when they fit 32 bits and Int64
// otherwise. Numbers with a fraction or exponent are Double.
//
// The [Standard] option turns the extensions off.
//
// Nested arrays and objects are tracked on an explicit stack, so the
// nesting depth is bounded by memory, not the goroutine stack.
//
// # Errors
//
// A failed parse returns an [*Error] carrying one [Code] from a closed
// set, with the byte offset of the failure. Each code has a sentinel
// (ErrBadValue, ErrMissingColon, ...) for use with errors.Is. When a
// handler method returns an error the parse stops with UserStopped and
// the handler's error is available through errors.Unwrap.
package parse
