package parse

import (
	"errors"
	"math"
	"strconv"

	"github.com/signadot/tinyjson/token"
)

// str parses a string literal, emitting it as a key or a string.
func (p *parser) str(isKey bool) error {
	p.assertNext('"')
	buf := p.buf[:0]
	defer func() { p.buf = buf[:0] }()
	for p.src.HasNext() {
		at := p.src.off
		c := p.next()
		switch {
		case c == '"':
			if isKey {
				return p.call(p.h.Key(string(buf)))
			}
			return p.call(p.h.String(string(buf)))
		case c >= 0x01 && c <= 0x1f:
			return p.errAt(BadStringChar, at, nil)
		case c == '\\':
			if !p.src.HasNext() {
				return p.fail(MissingQuotationMark)
			}
			e := p.next()
			if e == 'u' {
				var err error
				if buf, err = p.unicode(buf, at); err != nil {
					return err
				}
				continue
			}
			u, ok := token.Unescape(e)
			if !ok {
				return p.errAt(BadStringEscape, at, nil)
			}
			buf = append(buf, u)
		default:
			buf = append(buf, c)
		}
	}
	return p.fail(MissingQuotationMark)
}

// unicode decodes the rest of a \u escape starting at offset at, combining
// surrogate pairs, and appends its UTF-8 form to buf.
func (p *parser) unicode(buf []byte, at int) ([]byte, error) {
	u, err := p.hex4()
	if err != nil {
		return buf, err
	}
	if token.IsHighSurrogate(u) {
		if p.next() != '\\' || p.next() != 'u' {
			return buf, p.errAt(BadUnicodeSurrogate, at, nil)
		}
		lo, err := p.hex4()
		if err != nil {
			return buf, err
		}
		if u, err = token.CombineSurrogates(u, lo); err != nil {
			return buf, p.errAt(BadUnicodeSurrogate, at, err)
		}
	}
	return token.AppendUTF8(buf, u), nil
}

func (p *parser) hex4() (rune, error) {
	at := p.src.off
	u, err := token.Hex4(p.src)
	if err != nil {
		return 0, p.errAt(BadUnicodeHex, at, err)
	}
	return u, nil
}

// number parses NaN, Infinity, -Infinity and numeric literals.
func (p *parser) number() error {
	start := p.src.off
	switch p.src.Peek() {
	case 'N':
		if p.standard {
			return p.fail(BadValue)
		}
		return p.literal("NaN", func() error { return p.h.Double(math.NaN()) })
	case 'I':
		if p.standard {
			return p.fail(BadValue)
		}
		return p.literal("Infinity", func() error { return p.h.Double(math.Inf(1)) })
	}

	buf := p.buf[:0]
	defer func() { p.buf = buf[:0] }()
	if p.src.Peek() == '-' {
		buf = append(buf, p.next())
		if p.src.Peek() == 'I' && !p.standard {
			return p.literal("Infinity", func() error { return p.h.Double(math.Inf(-1)) })
		}
	}
	c := p.src.Peek()
	switch {
	case c == '0':
		buf = append(buf, p.next())
		if token.IsDigit(p.src.Peek()) {
			return p.fail(BadValue)
		}
	case token.IsDigit19(c):
		buf = p.digits(buf)
	default:
		return p.errAt(BadValue, start, nil)
	}

	isFloat := false
	if p.src.Peek() == '.' {
		isFloat = true
		buf = append(buf, p.next())
		if !token.IsDigit(p.src.Peek()) {
			return p.fail(BadValue)
		}
		buf = p.digits(buf)
	}
	if c := p.src.Peek(); c == 'e' || c == 'E' {
		isFloat = true
		buf = append(buf, p.next())
		if c := p.src.Peek(); c == '+' || c == '-' {
			buf = append(buf, p.next())
		}
		if !token.IsDigit(p.src.Peek()) {
			return p.fail(BadValue)
		}
		buf = p.digits(buf)
	}

	width := 0
	if p.src.Peek() == 'i' {
		if isFloat || p.standard {
			return p.fail(BadValue)
		}
		p.next()
		switch p.next() {
		case '3':
			width = 32
			if p.next() != '2' {
				return p.errAt(BadValue, start, nil)
			}
		case '6':
			width = 64
			if p.next() != '4' {
				return p.errAt(BadValue, start, nil)
			}
		default:
			return p.errAt(BadValue, start, nil)
		}
	}

	if isFloat {
		f, err := strconv.ParseFloat(string(buf), 64)
		switch {
		case err == nil:
		case errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0):
			return p.errAt(NumberTooBig, start, err)
		case errors.Is(err, strconv.ErrRange):
			// underflow rounds towards zero
		default:
			return p.errAt(BadValue, start, err)
		}
		return p.call(p.h.Double(f))
	}
	i, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return p.errAt(NumberTooBig, start, err)
		}
		return p.errAt(BadValue, start, err)
	}
	fits := i >= math.MinInt32 && i <= math.MaxInt32
	switch {
	case width == 64, width == 0 && !fits:
		return p.call(p.h.Int64(i))
	case !fits:
		return p.errAt(NumberTooBig, start, nil)
	default:
		return p.call(p.h.Int32(int32(i)))
	}
}

func (p *parser) digits(buf []byte) []byte {
	for token.IsDigit(p.src.Peek()) {
		buf = append(buf, p.next())
	}
	return buf
}
