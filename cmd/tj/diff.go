package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tinyjson/encode"
	"github.com/signadot/tinyjson/ir"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	d1, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	d2, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	differs, err := diffValues(cc.Out, d1.Value, d2.Value, cfg.colorsOn(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffValues writes a line diff of the pretty forms of a and b to w and
// reports whether they differ. Values which are ir.Equal never differ.
func diffValues(w io.Writer, a, b ir.Value, colored bool) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	ta, err := encode.EncodeString(a, encode.Pretty(true))
	if err != nil {
		return false, err
	}
	tb, err := encode.EncodeString(b, encode.Pretty(true))
	if err != nil {
		return false, err
	}
	var (
		del = fmt.Sprint
		ins = fmt.Sprint
	)
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for _, l := range lineDiff(ta+"\n", tb+"\n") {
		var err error
		switch l.op {
		case diffpatch.DiffDelete:
			_, err = fmt.Fprintln(w, del("-"+l.text))
		case diffpatch.DiffInsert:
			_, err = fmt.Fprintln(w, ins("+"+l.text))
		default:
			_, err = fmt.Fprintln(w, " "+l.text)
		}
		if err != nil {
			return true, err
		}
	}
	return true, nil
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

func lineDiff(a, b string) []diffLine {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []diffLine
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			res = append(res, diffLine{op: d.Type, text: l})
		}
	}
	return res
}
