package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/tinyjson/ir"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// palette is the default colouring: punctuation, keys, then one colour
// per scalar kind.
var palette = []struct {
	able Colorable
	attr color.Attribute
	rgb  [3]int
}{
	{Colorable{ir.ArrayKind, SepColor}, 0, [3]int{255, 0, 196}},
	{Colorable{ir.ObjectKind, SepColor}, 0, [3]int{196, 128, 128}},
	{Colorable{ir.ObjectKind, FieldColor}, 0, [3]int{128, 168, 196}},
	{Colorable{ir.NullKind, ValueColor}, 0, [3]int{168, 0, 196}},
	{Colorable{ir.BoolKind, ValueColor}, color.FgCyan, [3]int{}},
	{Colorable{ir.Int32Kind, ValueColor}, 0, [3]int{128, 216, 236}},
	{Colorable{ir.Int64Kind, ValueColor}, 0, [3]int{96, 176, 236}},
	{Colorable{ir.DoubleKind, ValueColor}, 0, [3]int{128, 236, 196}},
	{Colorable{ir.StringKind, ValueColor}, 0, [3]int{8, 196, 16}},
}

// NewColors returns the default palette. Kinds and attributes missing
// from it are written uncoloured.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[Colorable]func(string, ...any) string, len(palette)),
	}
	for _, p := range palette {
		c := color.RGB(p.rgb[0], p.rgb[1], p.rgb[2])
		if p.attr != 0 {
			c = color.New(p.attr)
		}
		colors.Map[p.able] = literal(c.SprintfFunc())
	}
	return colors
}

// literal adapts a Sprintf style function to print s as is, percent
// signs included.
func literal(f func(string, ...any) string) func(string, ...any) string {
	return func(s string, _ ...any) string {
		return f(strings.ReplaceAll(s, "%", "%%"))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
