package encode

import (
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/stream"
)

// Encode writes v to w, compact unless the Pretty option is given.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	wr := &Writer{}
	wr.init(w, newEncOpts(opts))
	if err := v.WriteTo(wr); err != nil {
		return err
	}
	return wr.Flush()
}

func EncodeString(v ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(v ir.Value, opts ...EncodeOption) string {
	s, err := EncodeString(v, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}

// Standardize returns a handler passing events to next with NaN and the
// infinities replaced by null, so the output is RFC 8259 JSON.
func Standardize(next stream.Handler) stream.Handler {
	return &standardize{Forward: stream.Forward{Next: next}}
}

type standardize struct {
	stream.Forward
}

func (s *standardize) Double(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s.Next.Null()
	}
	return s.Next.Double(f)
}
