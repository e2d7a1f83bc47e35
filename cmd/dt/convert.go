package main

import (
	"fmt"
	"io"

	"github.com/doctree-format/doctree/encode"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if err := convertFiles(cfg, cc, args); err != nil {
		return err
	}
	return nil
}

func convertFiles(cfg *ConvertConfig, cc *cli.Context, files []string) error {
	w := cc.Out
	n := len(files)
	for i, file := range files {
		if err := convertFile(cfg, cc, w, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < n-1 {
			_, err := w.Write([]byte("\n---\n"))
			if err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, w io.Writer, file string) error {
	t, err := getDocTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	mCfg := cfg.MainConfig
	if err := encode.Encode(t, w, mCfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
