// Package stream defines the push style event protocol shared by every
// producer and consumer of JSON values.
//
// A [Handler] receives one method call per syntactic element of a value:
//
//	[1, {"a": "x"}]
//
// is delivered as
//
//	StartArray
//	Int32(1)
//	StartObject
//	Key("a")
//	String("x")
//	EndObject
//	EndArray
//
// The reader in package parse and the walk in ir.Value.WriteTo are
// producers. The document builder in package dom and the writers in
// package encode are consumers. Anything else implementing Handler can
// be placed between them, for example a transform embedding [Forward]:
//
//	type addOne struct{ stream.Forward }
//
//	func (a *addOne) Int32(i int32) error { return a.Next.Int32(i + 1) }
//
//	w := encode.NewWriter(os.Stdout)
//	err := parse.ParseString(`[1, 2]`, &addOne{stream.Forward{Next: w}})
//
// # Stopping
//
// Every Handler method returns an error. A nil error continues the
// stream. Any other error stops the producer immediately: the reader
// returns a UserStopped parse error wrapping it and makes no further
// calls. [ErrStop] is provided for handlers that want to stop without
// reporting a failure of their own.
//
// # Events as data
//
// [Event] is the data form of a single call. [Recorder] captures a stream
// as a slice of events and [Replay] plays a slice back into any Handler.
//
// # State
//
// [State] is the frame stack the writers use to decide separators and to
// reject out of order events. It also tracks the kinded path of the
// current position ("a.b[2]") for diagnostics.
package stream
