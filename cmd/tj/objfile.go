package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tinyjson/dom"
	"github.com/signadot/tinyjson/parse"

	"github.com/scott-cotton/cli"
)

func openArg(cc *cli.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cc.In), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	return f, nil
}

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*dom.Document, error) {
	r, err := openArg(cc, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	d, err := dom.ParseReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return d, nil
}

// eachArg calls f with each named input, or with standard input when
// there are none.
func eachArg(cc *cli.Context, args []string, f func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		r, err := openArg(cc, arg)
		if err != nil {
			return err
		}
		err = f(arg, r)
		r.Close()
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
