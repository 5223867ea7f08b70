package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tj").
		WithSynopsis("tj [opts] command [opts]").
		WithDescription("tj reads, checks and rewrites JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tjMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			YAMLCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("reformat JSON documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithOpts(opts...).
		WithSynopsis("check [-q] [files]").
		WithDescription("check that files hold exactly one JSON value").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get elements such as a.b[0] from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("line diff of the pretty forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] [-s] <patch> [file]").
		WithDescription("apply an RFC 6902 JSON patch, or with -merge an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against each document.

The document is bound to 'doc'; for objects its top level fields are bound
by name as well. Expressions use the expr language, for example

  tj eval 'doc.items[0].price * 2' order.json
  tj eval 'len(items) > 3' order.json`

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.YAML, "yaml").
		WithAliases("y").
		WithSynopsis("yaml [files]").
		WithDescription("convert documents to YAML, keeping key order").
		WithRun(func(cc *cli.Context, args []string) error {
			return toYAML(cfg, cc, args)
		})
}
