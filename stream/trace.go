package stream

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Trace is a Handler which logs each event with its path before passing
// it on to Next. Next may be nil, in which case events are only logged.
type Trace struct {
	Next   Handler
	logger log.Logger
	state  State
}

// NewTrace returns a Trace logging to logger at debug level.
func NewTrace(logger log.Logger, next Handler) *Trace {
	return &Trace{Next: next, logger: logger}
}

func (t *Trace) log(ty EventType, key string, kv ...any) {
	// a bad sequence is logged and still forwarded.
	if err := t.state.Process(ty, key); err != nil {
		kv = append(kv, "err", err)
	}
	kv = append([]any{"event", ty, "path", t.state.CurrentPath(), "depth", t.state.Depth()}, kv...)
	level.Debug(t.logger).Log(kv...)
	if t.state.Done() && t.state.Depth() == 0 {
		t.state.Reset()
	}
}

func (t *Trace) Null() error {
	t.log(EventNull, "")
	if t.Next == nil {
		return nil
	}
	return t.Next.Null()
}

func (t *Trace) Bool(b bool) error {
	t.log(EventBool, "", "value", b)
	if t.Next == nil {
		return nil
	}
	return t.Next.Bool(b)
}

func (t *Trace) Int32(i int32) error {
	t.log(EventInt32, "", "value", i)
	if t.Next == nil {
		return nil
	}
	return t.Next.Int32(i)
}

func (t *Trace) Int64(i int64) error {
	t.log(EventInt64, "", "value", i)
	if t.Next == nil {
		return nil
	}
	return t.Next.Int64(i)
}

func (t *Trace) Double(f float64) error {
	t.log(EventDouble, "", "value", f)
	if t.Next == nil {
		return nil
	}
	return t.Next.Double(f)
}

func (t *Trace) String(s string) error {
	t.log(EventString, "", "value", s)
	if t.Next == nil {
		return nil
	}
	return t.Next.String(s)
}

func (t *Trace) StartObject() error {
	t.log(EventStartObject, "")
	if t.Next == nil {
		return nil
	}
	return t.Next.StartObject()
}

func (t *Trace) Key(k string) error {
	t.log(EventKey, k)
	if t.Next == nil {
		return nil
	}
	return t.Next.Key(k)
}

func (t *Trace) EndObject() error {
	t.log(EventEndObject, "")
	if t.Next == nil {
		return nil
	}
	return t.Next.EndObject()
}

func (t *Trace) StartArray() error {
	t.log(EventStartArray, "")
	if t.Next == nil {
		return nil
	}
	return t.Next.StartArray()
}

func (t *Trace) EndArray() error {
	t.log(EventEndArray, "")
	if t.Next == nil {
		return nil
	}
	return t.Next.EndArray()
}
