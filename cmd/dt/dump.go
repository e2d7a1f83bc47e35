package main

import (
	"fmt"
	"io"

	"github.com/doctree-format/doctree/encode"
	"github.com/doctree-format/doctree/tree"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	colorize := func(_ encode.ColorAttr, s string) string { return s }
	if cfg.Color {
		colorize = encode.NewColors().Color
	}
	n := len(args)
	for i, file := range args {
		if err := dumpFile(cfg, cc, cc.Out, file, colorize); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < n-1 {
			_, err := cc.Out.Write([]byte("\n---\n"))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, w io.Writer, file string, colorize func(encode.ColorAttr, string) string) error {
	t, err := getDocTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	return dumpNode(w, t, t.Root(), 0, colorize)
}

// dumpNode writes one line per node: identity, flags, then key and value
// spans when present.
func dumpNode(w io.Writer, t *tree.Tree, id tree.NodeID, depth int, colorize func(encode.ColorAttr, string) string) error {
	line := fmt.Sprintf("%*s%s %s", 2*depth, "",
		colorize(encode.IDColor, fmt.Sprintf("[%d]", id)),
		colorize(encode.FlagColor, t.Flags(id).String()))
	if t.HasKey(id) {
		line += " key=" + colorize(encode.FieldColor, fmt.Sprintf("%q", t.Key(id)))
	}
	if t.HasVal(id) {
		line += " val=" + colorize(encode.StringColor, fmt.Sprintf("%q", t.Value(id)))
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	for _, c := range t.Children(id) {
		if err := dumpNode(w, t, c, depth+1, colorize); err != nil {
			return err
		}
	}
	return nil
}
