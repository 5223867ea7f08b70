package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/tinyjson/dom"
	"github.com/signadot/tinyjson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := parsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachArg(cc, args[1:], func(_ string, r io.Reader) error {
		return getReader(cfg.MainConfig, cc.Out, r, path)
	})
}

func getReader(cfg *MainConfig, w io.Writer, r io.Reader, path []step) error {
	d, err := dom.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	defer d.Reset()
	v, err := lookupPath(d.Root(), path)
	if err != nil {
		return err
	}
	return cfg.encode(*v, w)
}

// step is one component of a path: an object key or an array index.
type step struct {
	key   string
	index int
	isKey bool
}

func (s step) String() string {
	if s.isKey {
		return s.key
	}
	return "[" + strconv.Itoa(s.index) + "]"
}

// parsePath parses paths such as "a.b[2].c". A leading "$" or "." is
// allowed and an empty path selects the root.
func parsePath(p string) ([]step, error) {
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	var res []step
	for p != "" {
		switch p[0] {
		case '[':
			end := strings.IndexByte(p, ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated index in %q", p)
			}
			i, err := strconv.Atoi(p[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("bad index %q", p[1:end])
			}
			res = append(res, step{index: i})
			p = p[end+1:]
		case '.':
			p = p[1:]
			if p == "" || p[0] == '.' || p[0] == '[' {
				return nil, fmt.Errorf("empty key")
			}
		default:
			end := strings.IndexAny(p, ".[")
			if end < 0 {
				end = len(p)
			}
			res = append(res, step{key: p[:end], isKey: true})
			p = p[end:]
		}
	}
	return res, nil
}

func lookupPath(v *ir.Value, path []step) (*ir.Value, error) {
	for i, s := range path {
		switch {
		case s.isKey && v.Kind() == ir.ObjectKind:
			next, ok := v.Lookup(s.key)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ir.ErrMissingKey, pathString(path[:i+1]))
			}
			v = next
		case !s.isKey && v.Kind() == ir.ArrayKind:
			if s.index >= v.Len() {
				return nil, fmt.Errorf("index out of range: %s (length %d)", pathString(path[:i+1]), v.Len())
			}
			v = v.Index(s.index)
		default:
			return nil, fmt.Errorf("%w: %s is %s", ir.ErrTypeMismatch, pathString(path[:i]), v.Kind())
		}
	}
	return v, nil
}

func pathString(path []step) string {
	var b strings.Builder
	for i, s := range path {
		if s.isKey && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
