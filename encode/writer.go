package encode

import (
	"io"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/signadot/tinyjson/debug"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/stream"
	"github.com/signadot/tinyjson/token"
)

// Writer is a stream.Handler writing compact text.
//
// Events out of order (a key outside an object, a value where a key is
// due, a mismatched end, a second root) are rejected with a *stream.Error
// and nothing is written for them. Output is flushed to the underlying
// io.Writer whenever a root value is complete, and by Flush.
type Writer struct {
	w      io.Writer
	buf    []byte
	state  stream.State
	pretty bool
	indent string
	colors *Colors
	err    error
	logger log.Logger
}

// PrettyWriter is a Writer placing every array element and object key
// on its own line, indented by depth.
type PrettyWriter struct {
	Writer
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...EncodeOption) *Writer {
	res := &Writer{}
	res.init(w, newEncOpts(opts))
	return res
}

// NewPrettyWriter returns a PrettyWriter on w.
func NewPrettyWriter(w io.Writer, opts ...EncodeOption) *PrettyWriter {
	o := newEncOpts(opts)
	o.pretty = true
	res := &PrettyWriter{}
	res.init(w, o)
	return res
}

func (w *Writer) init(out io.Writer, o *encOpts) {
	w.w = out
	w.pretty = o.pretty
	w.indent = o.indent
	w.colors = o.colors
	if debug.Write() {
		w.logger = debug.Logger()
	}
}

// Reset readies w to write another root value to out.
func (w *Writer) Reset(out io.Writer) {
	w.w = out
	w.buf = w.buf[:0]
	w.state.Reset()
	w.err = nil
}

// Flush writes buffered output.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	if err != nil {
		w.err = err
		if w.logger != nil {
			level.Error(w.logger).Log("msg", "write failed", "err", err)
		}
	}
	return err
}

// Done reports whether a complete root value has been written.
func (w *Writer) Done() bool {
	return w.state.Done()
}

func (w *Writer) color(k ir.Kind, a ColorAttr, s string) {
	if w.colors == nil {
		w.buf = append(w.buf, s...)
		return
	}
	w.buf = append(w.buf, w.colors.Color(k, a, s)...)
}

func (w *Writer) newline(depth int) {
	w.buf = append(w.buf, '\n')
	for range depth {
		w.buf = append(w.buf, w.indent...)
	}
}

// begin validates an event and writes the separator due before it.
func (w *Writer) begin(t stream.EventType, key string) error {
	if w.err != nil {
		return w.err
	}
	var (
		depth  = w.state.Depth()
		count  = w.state.Count()
		inObj  = w.state.IsInObject()
		hasKey = w.state.HasKey()
	)
	if err := w.state.Process(t, key); err != nil {
		if w.logger != nil {
			level.Debug(w.logger).Log("event", t, "err", err)
		}
		return err
	}
	if w.logger != nil {
		level.Debug(w.logger).Log("event", t, "path", w.state.CurrentPath())
	}
	switch {
	case depth == 0:
	case t.IsEnd():
		if w.pretty && count > 0 {
			w.newline(depth - 1)
		}
	case inObj && hasKey:
		w.color(ir.ObjectKind, SepColor, ":")
		if w.pretty {
			w.buf = append(w.buf, ' ')
		}
	default:
		if count > 0 {
			k := ir.ArrayKind
			if inObj {
				k = ir.ObjectKind
			}
			w.color(k, SepColor, ",")
		}
		if w.pretty {
			w.newline(depth)
		}
	}
	return nil
}

// end flushes once the root value is complete.
func (w *Writer) end() error {
	if w.state.Depth() == 0 || len(w.buf) >= 4096 {
		return w.Flush()
	}
	return nil
}

func (w *Writer) scalar(t stream.EventType, k ir.Kind, s []byte) error {
	if err := w.begin(t, ""); err != nil {
		return err
	}
	w.color(k, ValueColor, string(s))
	return w.end()
}

func (w *Writer) Null() error {
	return w.scalar(stream.EventNull, ir.NullKind, []byte("null"))
}

func (w *Writer) Bool(b bool) error {
	return w.scalar(stream.EventBool, ir.BoolKind, strconv.AppendBool(nil, b))
}

func (w *Writer) Int32(i int32) error {
	return w.scalar(stream.EventInt32, ir.Int32Kind, strconv.AppendInt(nil, int64(i), 10))
}

func (w *Writer) Int64(i int64) error {
	return w.scalar(stream.EventInt64, ir.Int64Kind, strconv.AppendInt(nil, i, 10))
}

func (w *Writer) Double(f float64) error {
	return w.scalar(stream.EventDouble, ir.DoubleKind, AppendDouble(nil, f))
}

func (w *Writer) String(s string) error {
	return w.scalar(stream.EventString, ir.StringKind, token.AppendQuote(nil, s))
}

func (w *Writer) Key(k string) error {
	if err := w.begin(stream.EventKey, k); err != nil {
		return err
	}
	w.color(ir.ObjectKind, FieldColor, token.Quote(k))
	return w.end()
}

func (w *Writer) StartObject() error {
	return w.bracket(stream.EventStartObject, ir.ObjectKind, "{")
}

func (w *Writer) EndObject() error {
	return w.bracket(stream.EventEndObject, ir.ObjectKind, "}")
}

func (w *Writer) StartArray() error {
	return w.bracket(stream.EventStartArray, ir.ArrayKind, "[")
}

func (w *Writer) EndArray() error {
	return w.bracket(stream.EventEndArray, ir.ArrayKind, "]")
}

func (w *Writer) bracket(t stream.EventType, k ir.Kind, s string) error {
	if err := w.begin(t, ""); err != nil {
		return err
	}
	w.color(k, SepColor, s)
	return w.end()
}
