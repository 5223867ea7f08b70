package main

import (
	"fmt"
	"io"

	"github.com/signadot/tinyjson/dom"
	"github.com/signadot/tinyjson/ir"

	"github.com/expr-lang/expr"
	"github.com/go-kit/log/level"
	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	code := args[0]
	return eachArg(cc, args[1:], func(_ string, r io.Reader) error {
		return evalReader(cfg, cc.Out, r, code)
	})
}

func evalReader(cfg *EvalConfig, w io.Writer, r io.Reader, code string) error {
	d, err := dom.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	defer d.Reset()
	res, err := evalExpr(d.Root(), code)
	if err != nil {
		return err
	}
	defer res.Release()
	if cfg.Raw && res.Kind() == ir.StringKind {
		_, err := fmt.Fprintln(w, res.Str())
		return err
	}
	return cfg.encode(res, w)
}

// evalExpr runs code with v bound to doc and, when v is an object, its
// fields bound by key.
func evalExpr(v *ir.Value, code string) (ir.Value, error) {
	x := exprValue(v.Interface())
	env := map[string]any{}
	if m, ok := x.(map[string]any); ok {
		for k, e := range m {
			env[k] = e
		}
	}
	env["doc"] = x
	prg, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return ir.Null(), fmt.Errorf("error compiling %q: %w", code, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return ir.Null(), fmt.Errorf("error running %q: %w", code, err)
	}
	level.Debug(theLog).Log("expr", code, "result", fmt.Sprintf("%T", out))
	return ir.FromInterface(out)
}

// exprValue widens the integers of Interface to int, the integer type
// expr arithmetic works in.
func exprValue(x any) any {
	switch y := x.(type) {
	case int32:
		return int(y)
	case int64:
		return int(y)
	case []any:
		for i := range y {
			y[i] = exprValue(y[i])
		}
	case map[string]any:
		for k := range y {
			y[k] = exprValue(y[k])
		}
	}
	return x
}
