package main

import (
	"fmt"
	"io"

	"github.com/signadot/tinyjson/parse"
	"github.com/signadot/tinyjson/stream"

	"github.com/go-kit/log"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		r, err := openArg(cc, arg)
		if err != nil {
			return err
		}
		err = checkReader(cfg.MainConfig, r)
		r.Close()
		if err != nil {
			bad++
		}
		if cfg.Quiet {
			continue
		}
		if err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
		} else {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkReader parses r, discarding the events.
func checkReader(cfg *MainConfig, r io.Reader) error {
	h := stream.NewTrace(log.With(theLog, "cmd", "check"), nil)
	return parse.ParseReader(r, h, cfg.parseOpts()...)
}
