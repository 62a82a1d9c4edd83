package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/veld-lang/jsxform/ast"
)

// entry is what one line of list output describes, and the
// environment a -where expression evaluates against.
type entry struct {
	Name    string   `expr:"name"`
	Kind    string   `expr:"kind"`
	Markers []string `expr:"markers"`
	Rec     bool     `expr:"rec"`
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prog *vm.Program
	if cfg.Where != "" {
		prog, err = expr.Compile(cfg.Where, expr.Env(entry{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: invalid -where expression: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range orStdin(args) {
		if err := listFile(cfg, cc, prog, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func listFile(cfg *ListConfig, cc *cli.Context, prog *vm.Program, file string) error {
	decls, err := cfg.decodeUnit(cc, file)
	if err != nil {
		return err
	}
	for _, d := range decls {
		for _, e := range entries(d) {
			if prog != nil {
				keep, err := expr.Run(prog, e)
				if err != nil {
					return fmt.Errorf("error evaluating -where: %w", err)
				}
				if !keep.(bool) {
					continue
				}
			}
			if err := writeEntry(cc.Out, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func entries(d ast.Decl) []entry {
	switch x := d.(type) {
	case *ast.ValueGroup:
		res := make([]entry, 0, len(x.Bindings))
		for _, b := range x.Bindings {
			e := entry{Name: bindingName(b), Kind: "value", Rec: x.Rec}
			for _, a := range b.Attrs {
				e.Markers = append(e.Markers, a.Name)
			}
			if ast.HasAttr(b.Attrs, ast.ComponentAttr) {
				e.Kind = "component"
			}
			res = append(res, e)
		}
		return res
	case *ast.TypeDecl:
		return []entry{{Name: x.Name, Kind: "type"}}
	case *ast.External:
		e := entry{Name: x.Name, Kind: "external"}
		for _, a := range x.Attrs {
			e.Markers = append(e.Markers, a.Name)
		}
		return []entry{e}
	case *ast.AttrDecl:
		return []entry{{Name: x.Attr.Name, Kind: "attr"}}
	}
	return nil
}

func bindingName(b *ast.Binding) string {
	if b.Pattern != nil && b.Pattern.Kind == ast.PatVar {
		return b.Pattern.Name
	}
	return "_"
}

func writeEntry(w io.Writer, e entry) error {
	markers := ""
	if len(e.Markers) > 0 {
		markers = strings.Join(e.Markers, ",")
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Kind, markers)
	return err
}
