package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func tjMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Agent {
		if err := agent.Listen(agent.Options{}); err != nil {
			level.Warn(theLog).Log("msg", "gops agent failed", "err", err)
		}
		defer agent.Close()
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	level.Debug(theLog).Log("cmd", args[0], "args", len(args)-1)
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	if err != nil {
		var code cli.ExitCodeErr
		if !errors.As(err, &code) {
			level.Error(theLog).Log("cmd", args[0], "err", err)
		}
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
