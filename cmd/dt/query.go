package main

import (
	"fmt"

	"github.com/doctree-format/doctree"
	"github.com/doctree-format/doctree/encode"
	"github.com/doctree-format/doctree/eval"
	"github.com/doctree-format/doctree/ir"
	"github.com/doctree-format/doctree/tree"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	truth := false
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
		t, err := queryArg(cfg, cc, src, arg)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, src, err)
		}
		truth = truth || t
	}
	if !truth {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func queryArg(cfg *QueryConfig, cc *cli.Context, src, arg string) (bool, error) {
	doc, err := getDocValue(cfg.MainConfig, cc, arg)
	if err != nil {
		return false, err
	}
	out, err := eval.Query(src, doc)
	if err != nil {
		return false, err
	}
	res, err := eval.FromAny(out)
	if err != nil {
		return false, err
	}
	t := tree.New()
	if err := doctree.Materialize(res, t, t.Root()); err != nil {
		return false, err
	}
	mCfg := cfg.MainConfig
	if err := encode.Encode(t, cc.Out, mCfg.encOpts(cc.Out)...); err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}
