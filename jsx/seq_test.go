package jsx

import (
	"errors"
	"testing"

	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/diag"
)

func TestToExactOrListCollapsesSingleton(t *testing.T) {
	p := &pass{}
	ch, err := p.toExactOrList(ast.Seq(str("only")))
	if err != nil {
		t.Fatalf("toExactOrList: %v", err)
	}
	if ch.IsList {
		t.Fatalf("singleton sequence should collapse to Exact, got list of %d", len(ch.Elems))
	}
	diffNodes(t, ast.Node(str("only")), ch.Exact)
}

func TestToExactOrList(t *testing.T) {
	p := &pass{}
	tests := []struct {
		name   string
		in     ast.Node
		isList bool
		n      int
	}{
		{"empty sequence", ast.NilSeq(), true, 0},
		{"two elements", ast.Seq(str("a"), str("b")), true, 2},
		{"spread stays exact", ident("kids"), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := p.toExactOrList(tt.in)
			if err != nil {
				t.Fatalf("toExactOrList: %v", err)
			}
			if ch.IsList != tt.isList {
				t.Fatalf("IsList = %v, want %v", ch.IsList, tt.isList)
			}
			if tt.isList && len(ch.Elems) != tt.n {
				t.Errorf("len = %d, want %d", len(ch.Elems), tt.n)
			}
		})
	}
}

func TestDecodeSeqMalformedTail(t *testing.T) {
	p := &pass{}
	tests := []struct {
		name string
		in   ast.Node
	}{
		{"expression tail", ast.Cons(str("a"), ident("rest"))},
		{"one-payload cons tail", ast.Cons(str("a"),
			&ast.Construct{Name: ast.ConsName, Payload: []ast.Node{str("b")}})},
		{"nil tail", ast.Cons(str("a"), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.toExactOrList(tt.in); !errors.Is(err, ErrSequenceShape) {
				t.Fatalf("err = %v, want ErrSequenceShape", err)
			}
		})
	}
}

func TestTransformMalformedChildrenSequence(t *testing.T) {
	// The children value opens as a cons cell but its tail is a plain
	// expression; the pass must fail with a positioned error rather
	// than fall over mid-walk.
	tail := ident("rest")
	kids := ast.Cons(str("a"), tail)
	call := markup(ident("div"), narg("children", kids), parg(ast.Unit()))
	group := &ast.ValueGroup{Bindings: []*ast.Binding{{
		Pattern: ast.VarPattern("x"),
		Expr:    call,
	}}}
	_, err := Transform([]ast.Decl{group})
	if !errors.Is(err, ErrSequenceShape) {
		t.Fatalf("err = %v, want ErrSequenceShape", err)
	}
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("err = %T, want *diag.Error", err)
	}
}

func TestToSequenceOrderPreserved(t *testing.T) {
	p := &pass{}
	res, err := p.toSequence(ast.Seq(str("a"), str("b"), str("c")))
	if err != nil {
		t.Fatalf("toSequence: %v", err)
	}
	lit, ok := res.(*ast.ListLit)
	if !ok {
		t.Fatalf("toSequence of a sequence should yield a list literal, got %T", res)
	}
	want := []string{"a", "b", "c"}
	if len(lit.Elems) != len(want) {
		t.Fatalf("len = %d, want %d", len(lit.Elems), len(want))
	}
	for i, w := range want {
		if lit.Elems[i].(*ast.StringLit).Value != w {
			t.Errorf("elem %d = %v, want %q", i, lit.Elems[i], w)
		}
	}
}

func TestToSequenceSpreadPassthrough(t *testing.T) {
	p := &pass{}
	res, err := p.toSequence(ident("kids"))
	if err != nil {
		t.Fatalf("toSequence: %v", err)
	}
	diffNodes(t, ast.Node(ident("kids")), res)
}

func TestToSequenceRewritesNestedMarkup(t *testing.T) {
	p := &pass{}
	nested := markup(ident("span"))
	res, err := p.toSequence(ast.Seq(nested))
	if err != nil {
		t.Fatalf("toSequence: %v", err)
	}
	lit := res.(*ast.ListLit)
	out, ok := lit.Elems[0].(*ast.Call)
	if !ok {
		t.Fatalf("nested child = %T, want *ast.Call", lit.Elems[0])
	}
	callee := out.Callee.(*ast.Ident)
	if ast.PathString(callee.Path) != "ReactDOMRe.createElement" {
		t.Errorf("nested markup child was not rewritten, callee %s", ast.PathString(callee.Path))
	}
}
