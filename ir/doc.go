// Package ir provides the in-memory representation of JSON values.
//
// # Values
//
// A [Value] is a closed tagged union over eight kinds:
//
//   - NullKind: null, and the zero Value
//   - BoolKind: true/false
//   - Int32Kind, Int64Kind: integers of pinned width
//   - DoubleKind: float64, including NaN and the infinities
//   - StringKind: UTF-8 text
//   - ArrayKind: ordered list of values
//   - ObjectKind: ordered list of key/value pairs
//
// Object members keep insertion order and keys are not required to be
// unique. Lookup and Get return the first member with a matching key.
//
// # Ownership
//
// Strings, arrays and objects keep their payload in storage shared
// through a reference count:
//
//	a := ir.EmptyArray()
//	b := a.Clone()   // a and b alias; Refs() == 2
//	b.Append(ir.FromInt32(1))
//	a.Len()          // 1
//	c := b.Take()    // b is Null, c owns its reference
//	c.Release()      // Refs() == 1
//
// Append, AddPair and Assign take ownership of their argument. Copy
// returns a deep copy sharing nothing.
//
// # Contract violations
//
// Accessors and mutators applied to the wrong kind panic with a
// [*TypeMismatchError]. Get on an object without the key panics with a
// [*MissingKeyError]. These indicate a programming error, not bad input.
//
// # Events
//
// [Value.WriteTo] replays a value as the stream.Handler events that
// rebuild it, without recursion.
package ir
