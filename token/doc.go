// Package token provides the character level layer underneath the reader
// and the writers.
//
// # Sources
//
// A [Source] is a cursor over input characters. The reader only ever
// needs four operations from it:
//
//   - HasNext reports whether any input remains
//   - Peek returns the current byte without consuming it
//   - Next consumes and returns the current byte
//   - AssertNext consumes a byte that the caller already knows is there
//
// Peek and Next return 0 once input is exhausted, so a grammar can
// dispatch on the lookahead without checking HasNext first.
//
// [BytesSource] is the in-memory implementation. It also implements
// [Positioner], which lets the reader attach offsets and line/column
// positions to errors.
//
// # Escapes
//
// [AppendQuote] renders a string as a quoted JSON token using the inverse
// of the reader's escape table. [AppendUTF8] encodes a decoded \u code
// point, including lone surrogates, and [HexValue] decodes one hex digit.
package token
