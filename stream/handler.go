package stream

// Handler consumes the events describing one JSON value.
type Handler interface {
	Null() error
	Bool(b bool) error
	Int32(i int32) error
	Int64(i int64) error
	Double(f float64) error
	String(s string) error
	StartObject() error
	Key(k string) error
	EndObject() error
	StartArray() error
	EndArray() error
}

// Forward passes every event to Next. Embed it to write a transform that
// only overrides the events it cares about.
type Forward struct {
	Next Handler
}

func (f *Forward) Null() error            { return f.Next.Null() }
func (f *Forward) Bool(b bool) error      { return f.Next.Bool(b) }
func (f *Forward) Int32(i int32) error    { return f.Next.Int32(i) }
func (f *Forward) Int64(i int64) error    { return f.Next.Int64(i) }
func (f *Forward) Double(v float64) error { return f.Next.Double(v) }
func (f *Forward) String(s string) error  { return f.Next.String(s) }
func (f *Forward) StartObject() error     { return f.Next.StartObject() }
func (f *Forward) Key(k string) error     { return f.Next.Key(k) }
func (f *Forward) EndObject() error       { return f.Next.EndObject() }
func (f *Forward) StartArray() error      { return f.Next.StartArray() }
func (f *Forward) EndArray() error        { return f.Next.EndArray() }

// Tee returns a Handler delivering each event to every handler in hs, in
// order. The first error stops delivery of that event and is returned.
func Tee(hs ...Handler) Handler {
	return tee(hs)
}

type tee []Handler

func (t tee) each(f func(Handler) error) error {
	for _, h := range t {
		if err := f(h); err != nil {
			return err
		}
	}
	return nil
}

func (t tee) Null() error {
	return t.each(func(h Handler) error { return h.Null() })
}

func (t tee) Bool(b bool) error {
	return t.each(func(h Handler) error { return h.Bool(b) })
}

func (t tee) Int32(i int32) error {
	return t.each(func(h Handler) error { return h.Int32(i) })
}

func (t tee) Int64(i int64) error {
	return t.each(func(h Handler) error { return h.Int64(i) })
}

func (t tee) Double(f float64) error {
	return t.each(func(h Handler) error { return h.Double(f) })
}

func (t tee) String(s string) error {
	return t.each(func(h Handler) error { return h.String(s) })
}

func (t tee) StartObject() error {
	return t.each(func(h Handler) error { return h.StartObject() })
}

func (t tee) Key(k string) error {
	return t.each(func(h Handler) error { return h.Key(k) })
}

func (t tee) EndObject() error {
	return t.each(func(h Handler) error { return h.EndObject() })
}

func (t tee) StartArray() error {
	return t.each(func(h Handler) error { return h.StartArray() })
}

func (t tee) EndArray() error {
	return t.each(func(h Handler) error { return h.EndArray() })
}
