package parse

import (
	"fmt"
	"io"

	"github.com/signadot/tinyjson/stream"
	"github.com/signadot/tinyjson/token"
)

// Parse reads exactly one value from src, surrounded by optional
// whitespace, delivering its events to h.
//
// The returned error is nil or an *Error. Events already delivered when
// an error occurs are not retracted.
func Parse(src token.Source, h stream.Handler, opts ...ParseOption) error {
	o := newParseOpts(opts)
	if o.logger != nil {
		h = stream.NewTrace(o.logger, h)
	}
	p := &parser{src: &counter{Source: src}, h: h, standard: o.standard}
	if pos, ok := src.(token.Positioner); ok {
		p.pos = pos
		p.base = pos.Offset()
	}
	return p.parse()
}

func ParseBytes(d []byte, h stream.Handler, opts ...ParseOption) error {
	return Parse(token.NewBytesSource(d), h, opts...)
}

func ParseString(s string, h stream.Handler, opts ...ParseOption) error {
	return Parse(token.NewStringSource(s), h, opts...)
}

// ParseReader reads r fully and parses its content. Read errors are
// returned wrapped, not as *Error.
func ParseReader(r io.Reader, h stream.Handler, opts ...ParseOption) error {
	src, err := token.ReadSource(r)
	if err != nil {
		return err
	}
	return Parse(src, h, opts...)
}

type frame uint8

const (
	inArray frame = iota + 1
	inObject
)

// counter is a Source counting the bytes consumed through it.
type counter struct {
	token.Source
	off int
}

func (c *counter) Next() byte {
	if !c.HasNext() {
		return 0
	}
	c.off++
	return c.Source.Next()
}

func (c *counter) AssertNext(b byte) {
	c.Source.AssertNext(b)
	c.off++
}

type parser struct {
	src      *counter
	h        stream.Handler
	pos      token.Positioner
	standard bool

	base  int
	stack []frame
	buf   []byte
}

func (p *parser) next() byte {
	return p.src.Next()
}

func (p *parser) assertNext(c byte) {
	p.src.AssertNext(c)
}

func (p *parser) skipSpace() {
	for p.src.HasNext() && token.IsSpace(p.src.Peek()) {
		p.next()
	}
}

func (p *parser) errAt(code Code, off int, err error) *Error {
	res := &Error{Code: code, Offset: off, Err: err}
	if p.pos != nil {
		pos := p.pos.Pos(p.base + off)
		res.Line, res.Col = pos.Line, pos.Col
	}
	return res
}

// fail reports code at the byte about to be read.
func (p *parser) fail(code Code) error {
	return p.errAt(code, p.src.off, nil)
}

// call turns a handler error into UserStopped.
func (p *parser) call(err error) error {
	if err == nil {
		return nil
	}
	return p.errAt(UserStopped, p.src.off, err)
}

func (p *parser) parse() error {
	p.skipSpace()
	if err := p.value(); err != nil {
		return err
	}
	p.skipSpace()
	if p.src.HasNext() {
		return p.fail(RootNotSingular)
	}
	return nil
}

// value parses one value. Open arrays and objects are kept on p.stack
// rather than the goroutine stack.
func (p *parser) value() error {
	base := len(p.stack)
	for {
		closed, err := p.start()
		if err != nil {
			return err
		}
		if !closed {
			continue
		}
		// a value ended: close enclosing compounds until another value
		// is due or the outermost one is complete.
		for {
			n := len(p.stack)
			if n == base {
				return nil
			}
			p.skipSpace()
			top := p.stack[n-1]
			at := p.src.off
			c := p.next()
			if c == ',' {
				p.skipSpace()
				if top == inObject {
					if err := p.key(); err != nil {
						return err
					}
				}
				break
			}
			switch top {
			case inArray:
				if c != ']' {
					return p.errAt(MissingCommaOrSquareBracket, at, nil)
				}
				if err := p.call(p.h.EndArray()); err != nil {
					return err
				}
			case inObject:
				if c != '}' {
					return p.errAt(MissingCommaOrCurlyBracket, at, nil)
				}
				if err := p.call(p.h.EndObject()); err != nil {
					return err
				}
			}
			p.stack = p.stack[:n-1]
		}
	}
}

// start parses a scalar or the opening of a compound. closed is false
// when a non empty compound was opened and its first value is due.
func (p *parser) start() (closed bool, err error) {
	if !p.src.HasNext() {
		return false, p.fail(ExpectValue)
	}
	switch p.src.Peek() {
	case 'n':
		return true, p.literal("null", p.h.Null)
	case 't':
		return true, p.literal("true", func() error { return p.h.Bool(true) })
	case 'f':
		return true, p.literal("false", func() error { return p.h.Bool(false) })
	case '"':
		return true, p.str(false)
	case '[':
		if err := p.call(p.h.StartArray()); err != nil {
			return false, err
		}
		p.assertNext('[')
		p.skipSpace()
		if p.src.Peek() == ']' && p.src.HasNext() {
			p.next()
			return true, p.call(p.h.EndArray())
		}
		p.stack = append(p.stack, inArray)
		return false, nil
	case '{':
		if err := p.call(p.h.StartObject()); err != nil {
			return false, err
		}
		p.assertNext('{')
		p.skipSpace()
		if p.src.Peek() == '}' && p.src.HasNext() {
			p.next()
			return true, p.call(p.h.EndObject())
		}
		p.stack = append(p.stack, inObject)
		return false, p.key()
	default:
		return true, p.number()
	}
}

// key parses an object key and the colon after it, leaving the cursor at
// the member's value.
func (p *parser) key() error {
	if p.src.Peek() != '"' || !p.src.HasNext() {
		return p.fail(MissingKey)
	}
	if err := p.str(true); err != nil {
		return err
	}
	p.skipSpace()
	if p.src.Peek() != ':' || !p.src.HasNext() {
		return p.fail(MissingColon)
	}
	p.next()
	p.skipSpace()
	return nil
}

// literal consumes lit, whose first byte has been peeked, and calls emit.
func (p *parser) literal(lit string, emit func() error) error {
	start := p.src.off
	p.assertNext(lit[0])
	for i := 1; i < len(lit); i++ {
		if !p.src.HasNext() || p.src.Peek() != lit[i] {
			return p.errAt(BadValue, start, fmt.Errorf("expected %q", lit))
		}
		p.next()
	}
	return p.call(emit())
}
