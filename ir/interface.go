package ir

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// Interface converts v to plain Go values: nil, bool, int32, int64,
// float64, string, []any and map[string]any. Only the first of duplicate
// object keys is kept.
func (v *Value) Interface() any {
	switch v.kind {
	case NullKind:
		return nil
	case BoolKind:
		return v.b
	case Int32Kind:
		return v.i32
	case Int64Kind:
		return v.i64
	case DoubleKind:
		return v.f
	case StringKind:
		return v.st.str
	case ArrayKind:
		res := make([]any, len(v.st.elems))
		for i := range v.st.elems {
			res[i] = v.st.elems[i].Interface()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.st.pairs))
		for i := range v.st.pairs {
			p := &v.st.pairs[i]
			if _, present := res[p.Key]; present {
				continue
			}
			res[p.Key] = p.Value.Interface()
		}
		return res
	}
	panic("impossible")
}

// FromInterface converts plain Go values to a Value. int32 and int64 keep
// their width; other integers become Int32 when they fit and Int64
// otherwise. Maps must have string keys and are converted in sorted key
// order.
func FromInterface(x any) (Value, error) {
	switch y := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return y.Clone(), nil
	case *Value:
		if y == nil {
			return Null(), nil
		}
		return y.Clone(), nil
	case bool:
		return FromBool(y), nil
	case string:
		return FromString(y), nil
	case []byte:
		return FromBytes(y), nil
	case float32:
		return FromDouble(float64(y)), nil
	case float64:
		return FromDouble(y), nil
	case int32:
		return FromInt32(y), nil
	case int64:
		return FromInt64(y), nil
	case int:
		return fromInt(int64(y)), nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromInt(i int64) Value {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return FromInt32(int32(i))
	}
	return FromInt64(i)
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromInterface(rv.Elem().Interface())
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Null(), fmt.Errorf("%w: %d overflows int64", ErrUnsupported, u)
		}
		return fromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FromDouble(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		res := EmptyArray()
		for i := 0; i < rv.Len(); i++ {
			e, err := FromInterface(rv.Index(i).Interface())
			if err != nil {
				res.Release()
				return Null(), err
			}
			res.Append(e)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Null(), fmt.Errorf("%w: map key type %s", ErrUnsupported, rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := EmptyObject()
		for _, k := range keys {
			e, err := FromInterface(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				res.Release()
				return Null(), err
			}
			res.AddPair(k, e)
		}
		return res, nil
	}
	return Null(), fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}
