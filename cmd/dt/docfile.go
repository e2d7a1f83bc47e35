package main

import (
	"fmt"
	"io"
	"os"

	"github.com/doctree-format/doctree"
	"github.com/doctree-format/doctree/format"
	"github.com/doctree-format/doctree/ir"
	"github.com/doctree-format/doctree/toml"
	"github.com/doctree-format/doctree/tree"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDocTree reads path and materializes it per the configured input
// format.
func getDocTree(cfg *MainConfig, cc *cli.Context, path string) (*tree.Tree, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	if cfg.inFormat() == format.TOMLFormat {
		return doctree.ParseTOML(d)
	}
	return doctree.ParseYAML(d)
}

// getDocValue reads path and parses it to the ir value model without
// materializing.
func getDocValue(cfg *MainConfig, cc *cli.Context, path string) (*ir.Value, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	if cfg.inFormat() == format.TOMLFormat {
		return toml.Parse(d)
	}
	return doctree.YAMLValue(d)
}
