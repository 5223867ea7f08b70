package ir

import "math"

// Equal reports whether a and b are structurally equal: same kinds,
// same payloads, same members in the same order. NaN equals NaN.
func Equal(a, b Value) bool {
	return equal(&a, &b)
}

func equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.b == b.b
	case Int32Kind:
		return a.i32 == b.i32
	case Int64Kind:
		return a.i64 == b.i64
	case DoubleKind:
		if math.IsNaN(a.f) {
			return math.IsNaN(b.f)
		}
		return a.f == b.f
	case StringKind:
		return a.st.str == b.st.str
	}
	if a.st == b.st {
		return true
	}
	switch a.kind {
	case ArrayKind:
		if len(a.st.elems) != len(b.st.elems) {
			return false
		}
		for i := range a.st.elems {
			if !equal(&a.st.elems[i], &b.st.elems[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(a.st.pairs) != len(b.st.pairs) {
			return false
		}
		for i := range a.st.pairs {
			ap, bp := &a.st.pairs[i], &b.st.pairs[i]
			if ap.Key != bp.Key || !equal(&ap.Value, &bp.Value) {
				return false
			}
		}
		return true
	}
	return false
}
