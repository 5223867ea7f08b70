package ir

import (
	"go.uber.org/atomic"
)

// Value is a JSON value: one of the eight kinds, holding a primitive
// payload inline or a pointer to shared storage for strings, arrays and
// objects.
//
// The zero Value is Null.
//
// Shared storage is reference counted. Assigning a Value with = borrows:
// both copies see the same storage but only one reference is counted.
// Use Clone to add an owner, Take to move ownership and Release to drop
// it. Storage whose count drops to zero is cleared, releasing its
// children in turn.
type Value struct {
	kind Kind
	b    bool
	i32  int32
	i64  int64
	f    float64
	st   *storage
}

// Pair is a member of an object.
type Pair struct {
	Key   string
	Value Value
}

type storage struct {
	refs  atomic.Int32
	str   string
	elems []Value
	pairs []Pair
}

func newStorage() *storage {
	st := &storage{}
	st.refs.Store(1)
	return st
}

func Null() Value {
	return Value{}
}

func FromBool(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

func FromInt32(i int32) Value {
	return Value{kind: Int32Kind, i32: i}
}

func FromInt64(i int64) Value {
	return Value{kind: Int64Kind, i64: i}
}

func FromDouble(f float64) Value {
	return Value{kind: DoubleKind, f: f}
}

func FromString(s string) Value {
	st := newStorage()
	st.str = s
	return Value{kind: StringKind, st: st}
}

// FromBytes returns a String value holding a copy of d.
func FromBytes(d []byte) Value {
	return FromString(string(d))
}

func EmptyString() Value {
	return FromString("")
}

func EmptyArray() Value {
	return Value{kind: ArrayKind, st: newStorage()}
}

func EmptyObject() Value {
	return Value{kind: ObjectKind, st: newStorage()}
}

// FromSlice returns an array owning vs.
func FromSlice(vs ...Value) Value {
	res := EmptyArray()
	res.st.elems = vs
	return res
}

// FromPairs returns an object owning ps, in order.
func FromPairs(ps ...Pair) Value {
	res := EmptyObject()
	res.st.pairs = ps
	return res
}

// Clone returns another owner of v's storage.
func (v *Value) Clone() Value {
	if v.st != nil {
		v.st.refs.Inc()
	}
	return *v
}

// Take moves v out, leaving Null in its place.
func (v *Value) Take() Value {
	res := *v
	*v = Value{}
	return res
}

// Release drops v's reference and sets v to Null.
func (v *Value) Release() {
	st := v.st
	*v = Value{}
	work := []*storage{st}
	for len(work) > 0 {
		n := len(work) - 1
		st, work = work[n], work[:n]
		if st == nil || st.refs.Dec() > 0 {
			continue
		}
		for i := range st.elems {
			work = append(work, st.elems[i].st)
		}
		for i := range st.pairs {
			work = append(work, st.pairs[i].Value.st)
		}
		st.str = ""
		st.elems = nil
		st.pairs = nil
	}
}

// Refs returns the number of owners of v's storage, or 0 for kinds
// without storage.
func (v *Value) Refs() int {
	if v.st == nil {
		return 0
	}
	return int(v.st.refs.Load())
}

// Copy returns a deep copy of v sharing nothing with it.
func (v *Value) Copy() Value {
	switch v.kind {
	case StringKind:
		return FromString(v.st.str)
	case ArrayKind:
		elems := make([]Value, len(v.st.elems))
		for i := range v.st.elems {
			elems[i] = v.st.elems[i].Copy()
		}
		return FromSlice(elems...)
	case ObjectKind:
		pairs := make([]Pair, len(v.st.pairs))
		for i := range v.st.pairs {
			p := &v.st.pairs[i]
			pairs[i] = Pair{Key: p.Key, Value: p.Value.Copy()}
		}
		return FromPairs(pairs...)
	default:
		return *v
	}
}

func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) IsNull() bool {
	return v.kind == NullKind
}

func (v *Value) IsNumber() bool {
	return v.kind.IsNumber()
}

func (v *Value) mustBe(op string, k Kind) {
	if v.kind != k {
		panic(&TypeMismatchError{Op: op, Want: []Kind{k}, Got: v.kind})
	}
}

func (v *Value) Bool() bool {
	v.mustBe("Bool", BoolKind)
	return v.b
}

func (v *Value) Int32() int32 {
	v.mustBe("Int32", Int32Kind)
	return v.i32
}

func (v *Value) Int64() int64 {
	v.mustBe("Int64", Int64Kind)
	return v.i64
}

func (v *Value) Double() float64 {
	v.mustBe("Double", DoubleKind)
	return v.f
}

func (v *Value) Str() string {
	v.mustBe("Str", StringKind)
	return v.st.str
}

// Elems returns the elements of an array. The slice aliases the storage.
func (v *Value) Elems() []Value {
	v.mustBe("Elems", ArrayKind)
	return v.st.elems
}

// Pairs returns the members of an object. The slice aliases the storage.
func (v *Value) Pairs() []Pair {
	v.mustBe("Pairs", ObjectKind)
	return v.st.pairs
}

// Append adds e to the end of an array, taking ownership of it.
func (v *Value) Append(e Value) {
	v.mustBe("Append", ArrayKind)
	v.st.elems = append(v.st.elems, e)
}

// AddPair adds a member to an object, taking ownership of e. Existing
// members with the same key are kept.
func (v *Value) AddPair(key string, e Value) {
	v.mustBe("AddPair", ObjectKind)
	v.st.pairs = append(v.st.pairs, Pair{Key: key, Value: e})
}

// Index returns the slot of element i of an array. The slot is valid
// until the array grows.
func (v *Value) Index(i int) *Value {
	v.mustBe("Index", ArrayKind)
	return &v.st.elems[i]
}

// Lookup returns the slot of the first member of an object with the key.
func (v *Value) Lookup(key string) (*Value, bool) {
	v.mustBe("Lookup", ObjectKind)
	for i := range v.st.pairs {
		if v.st.pairs[i].Key == key {
			return &v.st.pairs[i].Value, true
		}
	}
	return nil, false
}

// Get is Lookup asserting that the key is present.
func (v *Value) Get(key string) *Value {
	res, ok := v.Lookup(key)
	if !ok {
		panic(&MissingKeyError{Key: key})
	}
	return res
}

// Len returns the number of elements, members or string bytes.
func (v *Value) Len() int {
	switch v.kind {
	case StringKind:
		return len(v.st.str)
	case ArrayKind:
		return len(v.st.elems)
	case ObjectKind:
		return len(v.st.pairs)
	default:
		panic(&TypeMismatchError{Op: "Len", Want: []Kind{StringKind, ArrayKind, ObjectKind}, Got: v.kind})
	}
}

// Assign releases v and moves o into it.
func (v *Value) Assign(o Value) {
	v.Release()
	*v = o
}

func (v *Value) SetNull()            { v.Assign(Null()) }
func (v *Value) SetBool(b bool)      { v.Assign(FromBool(b)) }
func (v *Value) SetInt32(i int32)    { v.Assign(FromInt32(i)) }
func (v *Value) SetInt64(i int64)    { v.Assign(FromInt64(i)) }
func (v *Value) SetDouble(f float64) { v.Assign(FromDouble(f)) }
func (v *Value) SetString(s string)  { v.Assign(FromString(s)) }
