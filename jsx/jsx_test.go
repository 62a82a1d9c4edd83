package jsx

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/veld-lang/jsxform/ast"
)

// tree-building shorthand for tests

func ident(path ...string) *ast.Ident {
	return &ast.Ident{Path: path}
}

func str(v string) *ast.StringLit {
	return &ast.StringLit{Value: v}
}

func num(v int64) *ast.IntLit {
	return &ast.IntLit{Value: v}
}

func parg(v ast.Node) ast.Arg {
	return ast.Arg{Label: ast.Label{Kind: ast.Positional}, Value: v}
}

func narg(name string, v ast.Node) ast.Arg {
	return ast.Arg{Label: ast.NamedLabel(name), Value: v}
}

func oarg(name string, v ast.Node) ast.Arg {
	return ast.Arg{Label: ast.OptionalLabel(name), Value: v}
}

func call(callee ast.Node, args ...ast.Arg) *ast.Call {
	return &ast.Call{Callee: callee, Args: args}
}

// markup returns a call carrying the jsx marker.
func markup(callee ast.Node, args ...ast.Arg) *ast.Call {
	c := call(callee, args...)
	c.Attrs = []ast.Attr{{Name: ast.MarkupAttr}}
	return c
}

func mustRewrite(t *testing.T, p *pass, n ast.Node) ast.Node {
	t.Helper()
	res, err := p.rewrite(n)
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	return res
}

func diffNodes(t *testing.T, want, got ast.Node) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
}
