package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doctree-format/doctree"
	"github.com/doctree-format/doctree/encode"
	"github.com/doctree-format/doctree/format"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getDocTree(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(target, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return fmt.Errorf("error encoding %s: %w", args[1], err)
	}
	patched, err := p.Apply(buf.Bytes())
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	res, err := doctree.ParseYAML(patched)
	if err != nil {
		return fmt.Errorf("error decoding patch result: %w", err)
	}
	mCfg := cfg.MainConfig
	if err := encode.Encode(res, cc.Out, mCfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	d, err := getish(cfg.String, cfg.File, cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return p, nil
}

func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	if s {
		r = strings.NewReader(arg)
	} else if f {
		switch arg {
		case "-":
			r = cc.In
		default:
			pf, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer pf.Close()
			r = pf
		}
	} else {
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}
