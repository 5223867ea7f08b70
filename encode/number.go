package encode

import (
	"math"
	"strconv"

	"github.com/signadot/tinyjson/token"
)

// AppendDouble appends the shortest text which reads back as f.
//
// Infinities and NaN are written as Infinity, -Infinity and NaN. Output
// which would read back as an integer gets a ".0" suffix.
func AppendDouble(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(f, -1):
		return append(dst, "-Infinity"...)
	}
	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	if token.AllDigits(dst[start:]) {
		dst = append(dst, '.', '0')
	}
	return dst
}
