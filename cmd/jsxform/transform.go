package main

import (
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/veld-lang/jsxform/astjson"
	"github.com/veld-lang/jsxform/jsx"
)

func transform(cfg *TransformConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Transform.Parse(cc, args)
	if err != nil {
		cfg.Transform.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var patch jsonpatch.Patch
	if cfg.Patch != "" {
		if patch, err = loadPatch(cfg.Patch); err != nil {
			return err
		}
	}
	files := orStdin(args)
	for i, file := range files {
		if err := transformFile(cfg, cc, patch, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadPatch(path string) (jsonpatch.Patch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", path, err)
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %q: %w", path, err)
	}
	return p, nil
}

func transformFile(cfg *TransformConfig, cc *cli.Context, patch jsonpatch.Patch, file string) error {
	out, err := transformUnit(cfg, cc, patch, file)
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, "\n")
	return err
}

func transformUnit(cfg *TransformConfig, cc *cli.Context, patch jsonpatch.Patch, file string) ([]byte, error) {
	in, err := cfg.readUnit(cc, file)
	if err != nil {
		return nil, err
	}
	if patch != nil {
		if in, err = patch.Apply(in); err != nil {
			return nil, fmt.Errorf("error applying patch: %w", err)
		}
	}
	decls, err := astjson.DecodeUnit(in)
	if err != nil {
		return nil, err
	}
	tOpts, err := cfg.transformOpts()
	if err != nil {
		return nil, err
	}
	res, err := jsx.Transform(decls, tOpts...)
	if err != nil {
		return nil, err
	}
	return astjson.EncodeUnit(res, cfg.encOpts()...)
}
