package main

import (
	"bytes"
	"fmt"

	"github.com/doctree-format/doctree/encode"
	"github.com/doctree-format/doctree/format"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := canonical(cfg, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := canonical(cfg, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.Color {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		for _, d := range diffs {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintf(cc.Out, "+%s", d.Text)
			case diffmatchpatch.DiffDelete:
				fmt.Fprintf(cc.Out, "-%s", d.Text)
			default:
				fmt.Fprint(cc.Out, d.Text)
			}
		}
	}
	return cli.ExitCodeErr(1)
}

// canonical renders a document's materialized tree as yaml so two
// documents in different input formats compare by content.
func canonical(cfg *DiffConfig, cc *cli.Context, file string) (string, error) {
	t, err := getDocTree(cfg.MainConfig, cc, file)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
