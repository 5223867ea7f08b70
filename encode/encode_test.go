package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
	"github.com/signadot/tinyjson/stream"
)

func TestAppendDouble(t *testing.T) {
	tests := []struct {
		in  float64
		out string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-3, "-3.0"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{123456789.125, "123456789.125"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{5e-324, "5e-324"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range tests {
		if got := string(AppendDouble(nil, tc.in)); got != tc.out {
			t.Errorf("AppendDouble(%v): got %s want %s", tc.in, got, tc.out)
		}
	}
}

func sample() ir.Value {
	return ir.FromPairs(
		ir.Pair{Key: "a", Value: ir.FromSlice(ir.FromInt32(1), ir.FromInt64(1<<40), ir.FromDouble(2))},
		ir.Pair{Key: "b", Value: ir.FromPairs(
			ir.Pair{Key: "c", Value: ir.FromString("x")},
			ir.Pair{Key: "e", Value: ir.EmptyObject()},
			ir.Pair{Key: "f", Value: ir.EmptyArray()},
		)},
		ir.Pair{Key: "d", Value: ir.FromBool(true)},
		ir.Pair{Key: "n", Value: ir.Null()},
	)
}

func TestEncodeCompact(t *testing.T) {
	got, err := EncodeString(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":[1,1099511627776,2.0],"b":{"c":"x","e":{},"f":[]},"d":true,"n":null}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	got, err := EncodeString(sample(), Pretty(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "a": [
        1,
        1099511627776,
        2.0
    ],
    "b": {
        "c": "x",
        "e": {},
        "f": []
    },
    "d": true,
    "n": null
}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	got, err = EncodeString(ir.FromSlice(ir.FromSlice(ir.Null())), Pretty(true), Indent("\t"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "[\n\t[\n\t\tnull\n\t]\n]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestPrettyWriterScalarRoot(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewPrettyWriter(buf)
	if err := w.String("s"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `"s"` {
		t.Errorf("got %q", buf.String())
	}
}

func TestEscapes(t *testing.T) {
	v := ir.FromPairs(ir.Pair{Key: "k\"\n", Value: ir.FromString("\"\\\b\f\n\r\t\x01\x1f/é𝄞\x7f")})
	got := MustString(v)
	want := "{\"k\\\"\\n\":\"\\\"\\\\\\b\\f\\n\\r\\t\\u0001\\u001F/é𝄞\x7f\"}"
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestGenerate(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	steps := []func() error{
		w.StartArray,
		func() error { return w.Int32(1) },
		func() error { return w.Double(2) },
		w.StartObject,
		func() error { return w.Key("x") },
		func() error { return w.Int64(-7) },
		w.EndObject,
		w.EndArray,
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if i < len(steps)-1 && buf.Len() != 0 {
			t.Fatalf("output flushed before root complete: %q", buf.String())
		}
	}
	if buf.String() != `[1,2.0,{"x":-7}]` {
		t.Errorf("got %s", buf.String())
	}
	if !w.Done() {
		t.Error("expected done")
	}
	if err := w.Null(); !errors.Is(err, stream.ErrRootNotSingle) {
		t.Errorf("expected ErrRootNotSingle, got %v", err)
	}
	buf2 := &bytes.Buffer{}
	w.Reset(buf2)
	if err := w.Null(); err != nil || buf2.String() != "null" {
		t.Errorf("after reset: %v %q", err, buf2.String())
	}
}

func TestWriterOrderErrors(t *testing.T) {
	tests := []struct {
		name  string
		steps func(w *Writer) error
		err   error
		out   string
	}{
		{
			name:  "key in array",
			steps: func(w *Writer) error { w.StartArray(); return w.Key("a") },
			err:   stream.ErrKeyNotInObject,
			out:   "[",
		},
		{
			name:  "value without key",
			steps: func(w *Writer) error { w.StartObject(); return w.Int32(1) },
			err:   stream.ErrMissingKey,
			out:   "{",
		},
		{
			name:  "mismatched end",
			steps: func(w *Writer) error { w.StartObject(); return w.EndArray() },
			err:   stream.ErrMismatch,
			out:   "{",
		},
		{
			name:  "end at root",
			steps: func(w *Writer) error { return w.EndObject() },
			err:   stream.ErrDepth,
		},
		{
			name:  "key after key",
			steps: func(w *Writer) error { w.StartObject(); w.Key("a"); return w.Key("b") },
			err:   stream.ErrKeyAfterKey,
			out:   `{"a"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := NewWriter(buf)
			err := tc.steps(w)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			w.Flush()
			if buf.String() != tc.out {
				t.Errorf("output %q want %q", buf.String(), tc.out)
			}
		})
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	fw := &failWriter{}
	w := NewWriter(fw)
	if err := w.Null(); err == nil {
		t.Fatal("expected error")
	}
	w.Reset(fw)
	if err := w.StartArray(); err != nil {
		t.Fatal(err)
	}
	if err := w.EndArray(); err == nil {
		t.Fatal("expected error")
	}
	if err := w.Flush(); err == nil {
		t.Error("error not sticky")
	}
	if fw.n != 2 {
		t.Errorf("expected 2 writes, got %d", fw.n)
	}
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) {
		return math.IsNaN(b)
	}
	return a == b && math.Signbit(a) == math.Signbit(b)
}

func TestRoundTripEvents(t *testing.T) {
	inputs := []string{
		`null`,
		`[1, -2147483649, 9223372036854775807, 0.0, -0.0, 1e300, 1.5e-300, NaN, Infinity, -Infinity]`,
		`{"a\u0001":"\ud834\udd1e¢","b":[[],{},[{}]],"":""}`,
		`[true,false,null,"\"\\\/\b\f\n\r\t"]`,
		`{"dup":1,"dup":2}`,
		`[0.1, 100.0, 123456789012345678, 1e21, 1e-7, 5e-324]`,
	}
	for _, in := range inputs {
		for _, pretty := range []bool{false, true} {
			first := &stream.Recorder{}
			if err := parse.ParseString(in, first); err != nil {
				t.Fatalf("%s: %v", in, err)
			}
			buf := &bytes.Buffer{}
			var w stream.Handler = NewWriter(buf)
			if pretty {
				w = NewPrettyWriter(buf)
			}
			if err := stream.Replay(first.Events, w); err != nil {
				t.Fatalf("%s: %v", in, err)
			}
			second := &stream.Recorder{}
			if err := parse.ParseString(buf.String(), second); err != nil {
				t.Fatalf("%s: reparse %q: %v", in, buf.String(), err)
			}
			if diff := cmp.Diff(first.Events, second.Events, cmp.Comparer(sameFloat)); diff != "" {
				t.Errorf("%s (pretty=%v): (-first +second):\n%s", in, pretty, diff)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	v := sample()
	a, _ := EncodeString(v, Pretty(true))
	b, _ := EncodeString(v, Pretty(true))
	if a != b {
		t.Error("encoding is not deterministic")
	}
}

func TestStandardize(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := parse.ParseString(`[NaN, Infinity, -Infinity, 1.5, {"a": NaN}]`, Standardize(NewWriter(buf))); err != nil {
		t.Fatal(err)
	}
	if want := `[null,null,null,1.5,{"a":null}]`; buf.String() != want {
		t.Errorf("got %s want %s", buf.String(), want)
	}
	if err := parse.ParseString(buf.String(), &stream.Recorder{}, parse.Standard()); err != nil {
		t.Errorf("standardized output is not standard: %v", err)
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	got, err := EncodeString(sample(), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escape sequences in %q", got)
	}
	c := NewColors()
	if c.Color(ir.Int32Kind, FieldColor, "100%") != "100%" {
		t.Error("missing colour should fall back to default")
	}
	if !strings.Contains(c.Color(ir.StringKind, ValueColor, "100%"), "100%") {
		t.Error("percent not preserved")
	}
}
