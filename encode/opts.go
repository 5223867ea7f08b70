package encode

type encOpts struct {
	pretty bool
	indent string
	colors *Colors
}

type EncodeOption func(*encOpts)

// Pretty selects the indented layout of PrettyWriter.
func Pretty(v bool) EncodeOption {
	return func(o *encOpts) { o.pretty = v }
}

// Indent sets the string written once per nesting level in the pretty
// layout. The default is four spaces.
func Indent(s string) EncodeOption {
	return func(o *encOpts) { o.indent = s }
}

// EncodeColors colours tokens with c. A nil c disables colour.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}

func newEncOpts(opts []EncodeOption) *encOpts {
	res := &encOpts{indent: "    "}
	for _, f := range opts {
		f(res)
	}
	return res
}
