package token

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// IsDigit19 reports whether c is a nonzero ASCII decimal digit.
func IsDigit19(c byte) bool {
	return c != '0' && IsDigit(c)
}

// IsSpace reports whether c is JSON insignificant whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// AllDigits reports whether d looks like an integer literal: an optional
// sign followed only by digits. Writers use it to decide when a rendered
// double needs a ".0" so it is not read back as an integer.
func AllDigits(d []byte) bool {
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	if len(d) == 0 {
		return false
	}
	for _, c := range d {
		if !IsDigit(c) {
			return false
		}
	}
	return true
}
