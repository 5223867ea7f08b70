package main

import (
	"io"

	"github.com/signadot/tinyjson/dom"
	"github.com/signadot/tinyjson/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func toYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachArg(cc, args, func(_ string, r io.Reader) error {
		return yamlReader(cfg.MainConfig, cc.Out, r)
	})
}

func yamlReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	d, err := dom.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	defer d.Reset()
	out, err := yaml.Marshal(yamlValue(d.Root()))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// yamlValue converts v for yaml.Marshal, keeping object keys in document
// order. Duplicate keys are all kept.
func yamlValue(v *ir.Value) any {
	switch v.Kind() {
	case ir.ArrayKind:
		elems := v.Elems()
		res := make([]any, len(elems))
		for i := range elems {
			res[i] = yamlValue(&elems[i])
		}
		return res
	case ir.ObjectKind:
		pairs := v.Pairs()
		res := make(yaml.MapSlice, len(pairs))
		for i := range pairs {
			res[i] = yaml.MapItem{Key: pairs[i].Key, Value: yamlValue(&pairs[i].Value)}
		}
		return res
	default:
		return v.Interface()
	}
}
