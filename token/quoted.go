package token

import (
	"unicode/utf16"
)

const hexDigits = "0123456789ABCDEF"

// AppendQuote appends s to dst as a quoted JSON string.
//
// Quote, backslash and the named control characters use their short
// escapes, any other byte below 0x20 becomes \u00XX, and every other byte
// is copied verbatim. Non-ASCII text is not re-escaped, so valid UTF-8
// stays raw in the output.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}

// Quote returns s as a quoted JSON string.
func Quote(s string) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s))
}

// Unescape returns the byte that a single character escape such as \n
// stands for. ok is false for 'u' and for anything unrecognized.
func Unescape(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	default:
		return 0, false
	}
}

// HexValue decodes one hexadecimal digit.
func HexValue(c byte) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	default:
		return 0, false
	}
}

// Hex4 consumes four hex digits from src and returns the UTF-16 code unit
// they spell.
func Hex4(src Source) (rune, error) {
	var u rune
	for range 4 {
		v, ok := HexValue(src.Next())
		if !ok {
			return 0, ErrBadHex
		}
		u = u<<4 | v
	}
	return u, nil
}

// IsHighSurrogate reports whether u opens a UTF-16 surrogate pair.
func IsHighSurrogate(u rune) bool {
	return u >= 0xD800 && u <= 0xDBFF
}

// IsLowSurrogate reports whether u closes a UTF-16 surrogate pair.
func IsLowSurrogate(u rune) bool {
	return u >= 0xDC00 && u <= 0xDFFF
}

// CombineSurrogates joins a high and low surrogate into one code point.
func CombineSurrogates(hi, lo rune) (rune, error) {
	if !IsHighSurrogate(hi) || !IsLowSurrogate(lo) {
		return 0, ErrSurrogate
	}
	return utf16.DecodeRune(hi, lo), nil
}

// AppendUTF8 appends the UTF-8 encoding of u to dst. Unlike
// utf8.AppendRune, a lone surrogate is encoded as its three byte form
// rather than replaced, so \uDC00 survives a decode.
func AppendUTF8(dst []byte, u rune) []byte {
	switch {
	case u < 0:
		return dst
	case u <= 0x7F:
		return append(dst, byte(u))
	case u <= 0x7FF:
		return append(dst, byte(0xC0|u>>6), byte(0x80|u&0x3F))
	case u <= 0xFFFF:
		return append(dst, byte(0xE0|u>>12), byte(0x80|(u>>6)&0x3F), byte(0x80|u&0x3F))
	case u <= 0x10FFFF:
		return append(dst, byte(0xF0|u>>18), byte(0x80|(u>>12)&0x3F), byte(0x80|(u>>6)&0x3F), byte(0x80|u&0x3F))
	default:
		return dst
	}
}
