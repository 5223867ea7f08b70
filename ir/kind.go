package ir

import "fmt"

// Kind is the discriminant of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	Int32Kind
	Int64Kind
	DoubleKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		Int32Kind:  "Int32",
		Int64Kind:  "Int64",
		DoubleKind: "Double",
		StringKind: "String",
		ArrayKind:  "Array",
		ObjectKind: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Bool":   BoolKind,
		"Int32":  Int32Kind,
		"Int64":  Int64Kind,
		"Double": DoubleKind,
		"String": StringKind,
		"Array":  ArrayKind,
		"Object": ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		Int32Kind,
		Int64Kind,
		DoubleKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

// IsLeaf is true for every kind except arrays and objects.
func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}

func (k Kind) IsNumber() bool {
	switch k {
	case Int32Kind, Int64Kind, DoubleKind:
		return true
	default:
		return false
	}
}

// shared reports whether values of kind k hold reference counted storage.
func (k Kind) shared() bool {
	switch k {
	case StringKind, ArrayKind, ObjectKind:
		return true
	default:
		return false
	}
}
