package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tinyjson/dom"
	"github.com/signadot/tinyjson/encode"
	"github.com/signadot/tinyjson/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch and at most one file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	return eachArg(cc, []string{target}, func(_ string, r io.Reader) error {
		return patchReader(cfg, cc.Out, r, p)
	})
}

func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return d, nil
}

func patchReader(cfg *PatchConfig, w io.Writer, r io.Reader, p []byte) error {
	d, err := dom.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res, err := applyPatch(d.Value, p, cfg.Merge)
	d.Reset()
	if err != nil {
		return err
	}
	defer res.Release()
	return cfg.encode(res, w)
}

// applyPatch applies an RFC 6902 patch, or an RFC 7386 merge patch when
// merge is set, to v. Non-finite doubles in v are patched as null.
func applyPatch(v ir.Value, p []byte, merge bool) (ir.Value, error) {
	buf := bytes.NewBuffer(nil)
	wr := encode.NewWriter(buf)
	if err := v.WriteTo(encode.Standardize(wr)); err != nil {
		return ir.Null(), err
	}
	if err := wr.Flush(); err != nil {
		return ir.Null(), err
	}
	doc := buf.Bytes()
	var (
		out []byte
		err error
	)
	if merge {
		out, err = jsonpatch.MergePatch(doc, p)
	} else {
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch(p)
		if err != nil {
			return ir.Null(), fmt.Errorf("error decoding patch: %w", err)
		}
		out, err = ops.Apply(doc)
	}
	if err != nil {
		return ir.Null(), fmt.Errorf("error patching: %w", err)
	}
	res, err := dom.Parse(out)
	if err != nil {
		return ir.Null(), err
	}
	return res.Take(), nil
}
