package ir

import "github.com/signadot/tinyjson/stream"

type cursor struct {
	v *Value
	i int
}

// WriteTo emits the events which rebuild v to h, in pre-order, stopping
// at the first error h returns.
func (v *Value) WriteTo(h stream.Handler) error {
	var stack []cursor
	cur := v
	for {
		if cur != nil {
			if err := emit(cur, h); err != nil {
				return err
			}
			if !cur.kind.IsLeaf() {
				stack = append(stack, cursor{v: cur})
			}
			cur = nil
		}
		n := len(stack)
		if n == 0 {
			return nil
		}
		top := &stack[n-1]
		st := top.v.st
		switch top.v.kind {
		case ArrayKind:
			if top.i < len(st.elems) {
				cur = &st.elems[top.i]
				top.i++
				continue
			}
			if err := h.EndArray(); err != nil {
				return err
			}
		case ObjectKind:
			if top.i < len(st.pairs) {
				p := &st.pairs[top.i]
				top.i++
				if err := h.Key(p.Key); err != nil {
					return err
				}
				cur = &p.Value
				continue
			}
			if err := h.EndObject(); err != nil {
				return err
			}
		}
		stack = stack[:n-1]
	}
}

// emit emits a leaf or the start of a compound.
func emit(v *Value, h stream.Handler) error {
	switch v.kind {
	case NullKind:
		return h.Null()
	case BoolKind:
		return h.Bool(v.b)
	case Int32Kind:
		return h.Int32(v.i32)
	case Int64Kind:
		return h.Int64(v.i64)
	case DoubleKind:
		return h.Double(v.f)
	case StringKind:
		return h.String(v.st.str)
	case ArrayKind:
		return h.StartArray()
	case ObjectKind:
		return h.StartObject()
	}
	panic("impossible")
}
