package jsx

import (
	"testing"

	"github.com/veld-lang/jsxform/ast"
)

func TestComponentV2KeyRefHoisting(t *testing.T) {
	p := &pass{}
	res := mustRewrite(t, p, markup(ident("Foo", "createElement"),
		narg("bar", num(1)),
		narg("key", str("k")),
		narg("children", ast.Seq(str("a"), str("b"))),
		oarg("ref", ident("r")),
		narg("baz", num(2)),
		parg(ast.Unit()),
	))
	outer := res.(*ast.Call)
	if got := ast.PathString(outer.Callee.(*ast.Ident).Path); got != "React.element" {
		t.Fatalf("outer callee = %s", got)
	}
	// key and ref first, inner make call last
	if len(outer.Args) != 3 {
		t.Fatalf("len(outer args) = %d, want 3", len(outer.Args))
	}
	if outer.Args[0].Label.Name != "key" || outer.Args[1].Label.Name != "ref" {
		t.Errorf("hoisted args = %q, %q", outer.Args[0].Label.Name, outer.Args[1].Label.Name)
	}
	inner := outer.Args[2].Value.(*ast.Call)
	if got := ast.PathString(inner.Callee.(*ast.Ident).Path); got != "Foo.make" {
		t.Fatalf("inner callee = %s", got)
	}
	for _, a := range inner.Args {
		if a.Label.Name == "key" || a.Label.Name == "ref" {
			t.Errorf("%s leaked into the make call", a.Label.Name)
		}
	}
	// make args in input order, children list last
	if inner.Args[0].Label.Name != "bar" || inner.Args[1].Label.Name != "baz" {
		t.Errorf("make args = %q, %q", inner.Args[0].Label.Name, inner.Args[1].Label.Name)
	}
	lit := inner.Args[2].Value.(*ast.ListLit)
	if len(lit.Elems) != 2 {
		t.Errorf("children len = %d, want 2", len(lit.Elems))
	}
}

func TestComponentV2SpreadChildren(t *testing.T) {
	p := &pass{}
	res := mustRewrite(t, p, markup(ident("Foo", "make"),
		narg("children", ident("kids")),
		parg(ast.Unit()),
	))
	inner := res.(*ast.Call).Args[0].Value.(*ast.Call)
	diffNodes(t, ast.Node(ident("kids")), inner.Args[len(inner.Args)-1].Value)
}

func TestComponentV3Shape(t *testing.T) {
	p := &pass{version: Version3}
	res := mustRewrite(t, p, markup(ident("Foo", "createElement"),
		narg("bar", num(1)),
		narg("children", ast.Seq(str("a"), str("b"))),
		parg(ast.Unit()),
	))
	outer := res.(*ast.Call)
	if got := ast.PathString(outer.Callee.(*ast.Ident).Path); got != "React.createElement" {
		t.Fatalf("outer callee = %s", got)
	}
	if got := ast.PathString(outer.Args[0].Value.(*ast.Ident).Path); got != "Foo.make" {
		t.Fatalf("first arg = %s", got)
	}
	props := outer.Args[1].Value.(*ast.Call)
	if got := ast.PathString(props.Callee.(*ast.Ident).Path); got != "Foo.props" {
		t.Fatalf("props callee = %s", got)
	}
	// bar, ~children, trailing unit
	if props.Args[0].Label.Name != "bar" {
		t.Errorf("first props arg = %q", props.Args[0].Label.Name)
	}
	chArg := props.Args[1]
	if chArg.Label.Name != "children" {
		t.Fatalf("second props arg = %q, want children", chArg.Label.Name)
	}
	frag := chArg.Value.(*ast.Call)
	if got := ast.PathString(frag.Args[0].Value.(*ast.Ident).Path); got != "React.fragment" {
		t.Errorf("child list should wrap in a fragment, got %s", got)
	}
	if !ast.IsUnit(props.Args[len(props.Args)-1].Value) {
		t.Error("props call should end in unit")
	}
}

func TestComponentV3SingleChildPassesDirectly(t *testing.T) {
	p := &pass{version: Version3}
	res := mustRewrite(t, p, markup(ident("Foo", "make"),
		narg("children", ast.Seq(str("only"))),
		parg(ast.Unit()),
	))
	props := res.(*ast.Call).Args[1].Value.(*ast.Call)
	chArg := props.Args[0]
	if chArg.Label.Name != "children" {
		t.Fatalf("first props arg = %q", chArg.Label.Name)
	}
	diffNodes(t, ast.Node(str("only")), chArg.Value)
}

func TestComponentV3EmptyChildrenElided(t *testing.T) {
	p := &pass{version: Version3}
	res := mustRewrite(t, p, markup(ident("Foo", "make"),
		narg("bar", num(1)),
		parg(ast.Unit()),
	))
	props := res.(*ast.Call).Args[1].Value.(*ast.Call)
	for _, a := range props.Args {
		if a.Label.Name == "children" {
			t.Error("empty children should be elided")
		}
	}
	// bar + trailing unit only
	if len(props.Args) != 2 {
		t.Errorf("len(props args) = %d, want 2", len(props.Args))
	}
}

func TestComponentV3KeyPassesThrough(t *testing.T) {
	// v3 does not hoist: key goes straight to the props constructor.
	p := &pass{version: Version3}
	res := mustRewrite(t, p, markup(ident("Foo", "make"),
		narg("key", str("k")),
		parg(ast.Unit()),
	))
	props := res.(*ast.Call).Args[1].Value.(*ast.Call)
	if props.Args[0].Label.Name != "key" {
		t.Errorf("key should reach the props constructor, got %q", props.Args[0].Label.Name)
	}
}

func TestDerivedPropsPath(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"two segments", []string{"Foo", "make"}, "Foo.props"},
		{"two segments createElement", []string{"Foo", "createElement"}, "Foo.props"},
		{"deep path", []string{"App", "Foo", "make"}, "App.Foo.make_props"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.PathString(derivedPropsPath(tt.in)); got != tt.want {
				t.Errorf("derivedPropsPath(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	p := &pass{}
	frag := ast.Seq(str("a"), str("b"))
	frag.Attrs = []ast.Attr{{Name: ast.MarkupAttr}}
	res := mustRewrite(t, p, frag)
	out := res.(*ast.Call)
	if got := ast.PathString(out.Callee.(*ast.Ident).Path); got != "React.createElement" {
		t.Fatalf("callee = %s", got)
	}
	if got := ast.PathString(out.Args[0].Value.(*ast.Ident).Path); got != "React.fragment" {
		t.Fatalf("first arg = %s", got)
	}
	lit := out.Args[1].Value.(*ast.ListLit)
	if len(lit.Elems) != 2 {
		t.Errorf("fragment children = %d, want 2", len(lit.Elems))
	}
}

func TestFragmentSingleChildCollapses(t *testing.T) {
	p := &pass{}
	frag := ast.Seq(str("only"))
	frag.Attrs = []ast.Attr{{Name: ast.MarkupAttr}}
	out := mustRewrite(t, p, frag).(*ast.Call)
	diffNodes(t, ast.Node(str("only")), out.Args[1].Value)
}

func TestFragmentListLiteral(t *testing.T) {
	p := &pass{}
	frag := &ast.ListLit{
		Elems: []ast.Node{str("a"), str("b")},
		Attrs: []ast.Attr{{Name: ast.MarkupAttr}},
	}
	out := mustRewrite(t, p, frag).(*ast.Call)
	if got := ast.PathString(out.Callee.(*ast.Ident).Path); got != "React.createElement" {
		t.Fatalf("callee = %s", got)
	}
	if got := ast.PathString(out.Args[0].Value.(*ast.Ident).Path); got != "React.fragment" {
		t.Fatalf("first arg = %s", got)
	}
	lit := out.Args[1].Value.(*ast.ListLit)
	if len(lit.Elems) != 2 {
		t.Errorf("fragment children = %d, want 2", len(lit.Elems))
	}
	if out.Attrs != nil {
		t.Errorf("marker not stripped: %v", out.Attrs)
	}

	single := &ast.ListLit{
		Elems: []ast.Node{str("only")},
		Attrs: []ast.Attr{{Name: ast.MarkupAttr}},
	}
	collapsed := mustRewrite(t, p, single).(*ast.Call)
	diffNodes(t, ast.Node(str("only")), collapsed.Args[1].Value)
}
