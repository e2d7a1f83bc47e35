package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doctree-format/doctree/encode"
	"github.com/doctree-format/doctree/tree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
		if err := getArg(cfg, cc, arg, path); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, arg, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, cc *cli.Context, arg, path string) error {
	t, err := getDocTree(cfg.MainConfig, cc, arg)
	if err != nil {
		return err
	}
	id, err := lookup(t, t.Root(), path)
	if err != nil {
		return err
	}
	mCfg := cfg.MainConfig
	return encode.EncodeNode(t, id, cc.Out, mCfg.encOpts(cc.Out)...)
}

// lookup resolves a dotted path such as "server.ports.0" against the
// subtree at id.  Path segments index sequences by decimal position and
// maps by key.
func lookup(t *tree.Tree, id tree.NodeID, path string) (tree.NodeID, error) {
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return tree.None, fmt.Errorf("empty path segment in %q", path)
		}
		if t.IsSeq(id) {
			i, err := strconv.Atoi(seg)
			if err != nil {
				return tree.None, fmt.Errorf("sequence index %q: %w", seg, err)
			}
			if i < 0 || i >= t.NumChildren(id) {
				return tree.None, fmt.Errorf("index %d out of range", i)
			}
			id = t.Child(id, i)
			continue
		}
		next := t.Get(id, seg)
		if next == tree.None {
			return tree.None, fmt.Errorf("no element %q", seg)
		}
		id = next
	}
	return id, nil
}
