package main

import (
	"io"

	"github.com/signadot/tinyjson/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachArg(cc, args, func(_ string, r io.Reader) error {
		return viewReader(cfg.MainConfig, cc.Out, r)
	})
}

// viewReader streams r to w without building a document.
func viewReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	wr, h := cfg.writer(w)
	if err := parse.ParseReader(r, h, cfg.parseOpts()...); err != nil {
		return err
	}
	return finish(wr, w)
}
