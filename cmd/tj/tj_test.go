package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/tinyjson/dom"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, s string) *dom.Document {
	t.Helper()
	d, err := dom.ParseString(s)
	require.NoError(t, err)
	return d
}

func TestView(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := &MainConfig{Compact: true}
	require.NoError(t, viewReader(cfg, out, strings.NewReader(` { "a" : [ 1 , 2.0 , NaN ] } `)))
	assert.Equal(t, "{\"a\":[1,2.0,NaN]}\n", out.String())

	out.Reset()
	cfg = &MainConfig{Indent: "  "}
	require.NoError(t, viewReader(cfg, out, strings.NewReader(`{"a":[1]}`)))
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}\n", out.String())

	out.Reset()
	cfg = &MainConfig{Compact: true, Std: true}
	err := viewReader(cfg, out, strings.NewReader(`[NaN]`))
	assert.True(t, errors.Is(err, parse.ErrParse))
}

func TestStdOutput(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := &MainConfig{Compact: true, Std: true}
	v := ir.FromSlice(ir.FromDouble(1.5), ir.FromDouble(1), ir.FromInt32(3))
	v.Append(mustDoc(t, `Infinity`).Take())
	require.NoError(t, cfg.encode(v, out))
	assert.Equal(t, "[1.5,1.0,3,null]\n", out.String())
}

func TestCheck(t *testing.T) {
	cfg := &MainConfig{}
	assert.NoError(t, checkReader(cfg, strings.NewReader(`{"ok": [true]}`)))
	err := checkReader(cfg, strings.NewReader(`{"ok": [true}`))
	code, ok := parse.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, parse.MissingCommaOrSquareBracket, code)
	assert.Error(t, checkReader(cfg, strings.NewReader(`1 2`)))
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"$", ""},
		{"a", "a"},
		{".a.b", "a.b"},
		{"$.a[0].b", "a[0].b"},
		{"[3][4]", "[3][4]"},
		{"a[10]", "a[10]"},
	}
	for _, tc := range tests {
		p, err := parsePath(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, pathString(p), tc.in)
	}
	for _, bad := range []string{"a[", "a[-1]", "a[x]", "a..b", "a.[0]"} {
		_, err := parsePath(bad)
		assert.Error(t, err, bad)
	}
}

func TestLookupPath(t *testing.T) {
	d := mustDoc(t, `{"a":{"b":[10,{"c":"x"}]},"a":0}`)

	p, _ := parsePath("a.b[1].c")
	v, err := lookupPath(d.Root(), p)
	require.NoError(t, err)
	assert.Equal(t, "x", v.Str())

	p, _ = parsePath("a.nope")
	_, err = lookupPath(d.Root(), p)
	assert.ErrorIs(t, err, ir.ErrMissingKey)

	p, _ = parsePath("a.b.c")
	_, err = lookupPath(d.Root(), p)
	assert.ErrorIs(t, err, ir.ErrTypeMismatch)

	p, _ = parsePath("a.b[2]")
	_, err = lookupPath(d.Root(), p)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	out := &bytes.Buffer{}
	p, err := parsePath("a.b[0]")
	require.NoError(t, err)
	cfg := &MainConfig{Compact: true}
	require.NoError(t, getReader(cfg, out, strings.NewReader(`{"a":{"b":[{"k":[]}]}}`), p))
	assert.Equal(t, "{\"k\":[]}\n", out.String())
}

func TestDiff(t *testing.T) {
	out := &bytes.Buffer{}
	a := mustDoc(t, `{"a":1,"b":[true]}`)
	differs, err := diffValues(out, a.Value, mustDoc(t, `{"a": 1, "b": [ true ]}`).Value, false)
	require.NoError(t, err)
	assert.False(t, differs)
	assert.Empty(t, out.String())

	differs, err = diffValues(out, a.Value, mustDoc(t, `{"a":2,"b":[true]}`).Value, false)
	require.NoError(t, err)
	assert.True(t, differs)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Contains(t, lines, " {")
	assert.Contains(t, lines, `-    "a": 1,`)
	assert.Contains(t, lines, `+    "a": 2,`)
	assert.Contains(t, lines, `     "b": [`)
}

func TestPatch(t *testing.T) {
	d := mustDoc(t, `{"a":1,"b":[true]}`)
	res, err := applyPatch(d.Value, []byte(`[{"op":"replace","path":"/a","value":"x"},{"op":"add","path":"/b/-","value":null}]`), false)
	require.NoError(t, err)
	assert.True(t, ir.Equal(res, mustDoc(t, `{"a":"x","b":[true,null]}`).Value))

	res, err = applyPatch(d.Value, []byte(`{"a":null,"c":{"d":3}}`), true)
	require.NoError(t, err)
	assert.True(t, ir.Equal(res, mustDoc(t, `{"b":[true],"c":{"d":3}}`).Value))

	_, err = applyPatch(d.Value, []byte(`[{"op":"remove","path":"/nope/deeper"}]`), false)
	assert.Error(t, err)
	_, err = applyPatch(d.Value, []byte(`{`), false)
	assert.Error(t, err)
}

func TestEval(t *testing.T) {
	d := mustDoc(t, `{"items":[1,2,3],"name":"x","price":2.5}`)
	tests := []struct {
		code string
		want string
	}{
		{`len(items)`, `3`},
		{`doc.name + "y"`, `"xy"`},
		{`items[2] * price`, `7.5`},
		{`len(items) > 2 && name == "x"`, `true`},
		{`map(items, # * 10)`, `[10,20,30]`},
	}
	for _, tc := range tests {
		res, err := evalExpr(d.Root(), tc.code)
		require.NoError(t, err, tc.code)
		out := &bytes.Buffer{}
		require.NoError(t, (&MainConfig{Compact: true}).encode(res, out))
		assert.Equal(t, tc.want+"\n", out.String(), tc.code)
	}
	_, err := evalExpr(d.Root(), `nosuch(`)
	assert.Error(t, err)
}

func TestEvalRaw(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := &EvalConfig{MainConfig: &MainConfig{}, Raw: true}
	require.NoError(t, evalReader(cfg, out, strings.NewReader(`{"s":"a\"b"}`), `s`))
	assert.Equal(t, "a\"b\n", out.String())
}

func TestYAML(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, yamlReader(&MainConfig{}, out, strings.NewReader(`{"z":1,"a":[true,"s"],"m":{"k":null}}`)))
	s := out.String()
	assert.Less(t, strings.Index(s, "z:"), strings.Index(s, "a:"))
	assert.Less(t, strings.Index(s, "a:"), strings.Index(s, "m:"))
	assert.Contains(t, s, "- true")
	assert.Contains(t, s, "k: null")
}
