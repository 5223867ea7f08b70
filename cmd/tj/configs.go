package main

import (
	"io"
	"os"

	"github.com/signadot/tinyjson/encode"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
	"github.com/signadot/tinyjson/stream"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Compact bool   `cli:"name=c aliases=compact desc='output in compact format'"`
	Indent  string `cli:"name=indent desc='indentation for pretty output'"`
	Std     bool   `cli:"name=std desc='read and write RFC 8259 JSON only'"`
	Agent   bool   `cli:"name=agent desc='run a gops agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Std {
		return []parse.ParseOption{parse.Standard()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Pretty(!cfg.Compact),
	}
	if cfg.Indent != "" {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colorsOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorsOn reports whether output to w is coloured: always with -color,
// never with -color=false, and otherwise when w is a terminal.
func (cfg *MainConfig) colorsOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// writer returns the writer for w and the handler feeding it.
func (cfg *MainConfig) writer(w io.Writer) (*encode.Writer, stream.Handler) {
	wr := encode.NewWriter(w, cfg.encOpts(w)...)
	if cfg.Std {
		return wr, encode.Standardize(wr)
	}
	return wr, wr
}

// finish flushes wr and ends the document with a newline.
func finish(wr *encode.Writer, w io.Writer) error {
	if err := wr.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// encode writes v to w followed by a newline.
func (cfg *MainConfig) encode(v ir.Value, w io.Writer) error {
	wr, h := cfg.writer(w)
	if err := v.WriteTo(h); err != nil {
		return err
	}
	return finish(wr, w)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='report only through the exit code'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply an RFC 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Raw bool `cli:"name=r desc='print string results without quotes'"`

	Eval *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}
