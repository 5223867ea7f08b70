package dom

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/signadot/tinyjson/debug"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
	"github.com/signadot/tinyjson/stream"
	"github.com/signadot/tinyjson/token"
)

// Document is a Value built from events. It is itself the root value: the
// first value it receives.
//
// Document implements stream.Handler. Its handler methods never return
// errors; events which cannot occur in a well formed stream panic with a
// *ContractError.
type Document struct {
	ir.Value

	stack  []frame
	seen   bool
	logger log.Logger
}

type frame struct {
	v   ir.Value
	n   int
	key string
}

// New returns an empty Document.
func New() *Document {
	d := &Document{}
	if debug.Build() {
		d.logger = debug.Logger()
	}
	return d
}

// Parse parses text into a new Document. On error the partially built
// document is returned with it.
func Parse(text []byte, opts ...parse.ParseOption) (*Document, error) {
	d := New()
	return d, d.Parse(text, opts...)
}

func ParseString(text string, opts ...parse.ParseOption) (*Document, error) {
	d := New()
	return d, d.ParseSource(token.NewStringSource(text), opts...)
}

func ParseReader(r io.Reader, opts ...parse.ParseOption) (*Document, error) {
	src, err := token.ReadSource(r)
	if err != nil {
		return nil, err
	}
	d := New()
	return d, d.ParseSource(src, opts...)
}

// Parse resets d and parses text into it.
func (d *Document) Parse(text []byte, opts ...parse.ParseOption) error {
	return d.ParseSource(token.NewBytesSource(text), opts...)
}

// ParseSource resets d and parses src into it.
func (d *Document) ParseSource(src token.Source, opts ...parse.ParseOption) error {
	d.Reset()
	return parse.Parse(src, d, opts...)
}

// Reset releases the root and readies d to receive another value.
func (d *Document) Reset() {
	d.Value.Release()
	d.stack = d.stack[:0]
	d.seen = false
}

// Root returns the root value slot.
func (d *Document) Root() *ir.Value {
	return &d.Value
}

func (d *Document) trace(ev stream.EventType, kv ...any) {
	if d.logger == nil {
		return
	}
	kv = append([]any{"event", ev, "depth", len(d.stack)}, kv...)
	level.Debug(d.logger).Log(kv...)
}

// add attaches a value to the open compound, or makes it the root.
func (d *Document) add(ev stream.EventType, v ir.Value) {
	n := len(d.stack)
	if n == 0 {
		if d.seen {
			panic(&ContractError{Event: ev, Msg: "root not singular"})
		}
		d.seen = true
		d.Value = v
		return
	}
	top := &d.stack[n-1]
	switch top.v.Kind() {
	case ir.ArrayKind:
		top.v.Append(v)
	case ir.ObjectKind:
		if top.n%2 == 0 {
			panic(&ContractError{Event: ev, Msg: "value where key expected"})
		}
		top.v.AddPair(top.key, v)
		top.key = ""
	}
	top.n++
}

func (d *Document) Null() error {
	d.trace(stream.EventNull)
	d.add(stream.EventNull, ir.Null())
	return nil
}

func (d *Document) Bool(b bool) error {
	d.trace(stream.EventBool, "value", b)
	d.add(stream.EventBool, ir.FromBool(b))
	return nil
}

func (d *Document) Int32(i int32) error {
	d.trace(stream.EventInt32, "value", i)
	d.add(stream.EventInt32, ir.FromInt32(i))
	return nil
}

func (d *Document) Int64(i int64) error {
	d.trace(stream.EventInt64, "value", i)
	d.add(stream.EventInt64, ir.FromInt64(i))
	return nil
}

func (d *Document) Double(f float64) error {
	d.trace(stream.EventDouble, "value", f)
	d.add(stream.EventDouble, ir.FromDouble(f))
	return nil
}

func (d *Document) String(s string) error {
	d.trace(stream.EventString, "value", s)
	d.add(stream.EventString, ir.FromString(s))
	return nil
}

func (d *Document) Key(k string) error {
	d.trace(stream.EventKey, "key", k)
	n := len(d.stack)
	if n == 0 || d.stack[n-1].v.Kind() != ir.ObjectKind {
		panic(&ContractError{Event: stream.EventKey, Msg: "key outside object"})
	}
	top := &d.stack[n-1]
	if top.n%2 != 0 {
		panic(&ContractError{Event: stream.EventKey, Msg: "key after key"})
	}
	top.key = k
	top.n++
	return nil
}

func (d *Document) StartObject() error {
	d.trace(stream.EventStartObject)
	d.open(stream.EventStartObject, ir.EmptyObject())
	return nil
}

func (d *Document) StartArray() error {
	d.trace(stream.EventStartArray)
	d.open(stream.EventStartArray, ir.EmptyArray())
	return nil
}

// open attaches a fresh compound and pushes a frame aliasing it.
func (d *Document) open(ev stream.EventType, v ir.Value) {
	alias := v
	d.add(ev, v)
	d.stack = append(d.stack, frame{v: alias})
}

func (d *Document) EndObject() error {
	d.trace(stream.EventEndObject)
	d.close(stream.EventEndObject, ir.ObjectKind)
	return nil
}

func (d *Document) EndArray() error {
	d.trace(stream.EventEndArray)
	d.close(stream.EventEndArray, ir.ArrayKind)
	return nil
}

func (d *Document) close(ev stream.EventType, k ir.Kind) {
	n := len(d.stack)
	if n == 0 {
		panic(&ContractError{Event: ev, Msg: "no open " + k.String()})
	}
	top := &d.stack[n-1]
	if top.v.Kind() != k {
		panic(&ContractError{Event: ev, Msg: "closes " + top.v.Kind().String()})
	}
	if k == ir.ObjectKind && top.n%2 != 0 {
		panic(&ContractError{Event: ev, Msg: "key without value"})
	}
	d.stack[n-1] = frame{}
	d.stack = d.stack[:n-1]
}
