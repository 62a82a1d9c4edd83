package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/veld-lang/jsxform/astjson"
	"github.com/veld-lang/jsxform/jsx"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := orStdin(args)
	differs := false
	for i, file := range files {
		d, err := diffFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if d {
			differs = true
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffFile(cfg *DiffConfig, cc *cli.Context, file string) (bool, error) {
	decls, err := cfg.decodeUnit(cc, file)
	if err != nil {
		return false, err
	}
	before, err := astjson.EncodeUnit(decls, cfg.encOpts()...)
	if err != nil {
		return false, err
	}
	tOpts, err := cfg.transformOpts()
	if err != nil {
		return false, err
	}
	res, err := jsx.Transform(decls, tOpts...)
	if err != nil {
		return false, err
	}
	after, err := astjson.EncodeUnit(res, cfg.encOpts()...)
	if err != nil {
		return false, err
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before)+"\n", string(after)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	changed := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return false, nil
	}
	return true, writeDiff(cc.Out, diffs, cfg.colored(cc.Out))
}

func (cfg *DiffConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func writeDiff(w io.Writer, diffs []diffmatchpatch.Diff, colored bool) error {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, d := range diffs {
		prefix, c := " ", (*color.Color)(nil)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", ins
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", del
		}
		for _, line := range splitLines(d.Text) {
			out := prefix + line + "\n"
			var err error
			if colored && c != nil {
				_, err = c.Fprint(w, out)
			} else {
				_, err = io.WriteString(w, out)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
