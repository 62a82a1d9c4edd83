package jsx

import (
	"github.com/veld-lang/jsxform/ast"
)

// Fixed runtime entry points for user components and fragments.
var (
	elementPath       = []string{"React", "element"}
	createElementPath = []string{"React", "createElement"}
	fragmentPath      = []string{"React", "fragment"}
)

// transformComponentV2 rewrites a markup call to a user component
// under the v2 convention:
//
//	React.element(~key?, ~ref?, Path.make(args..., children))
//
// key and ref arguments are hoisted onto the outer element call
// regardless of where they appeared; everything else goes to make.
func (p *pass) transformComponentV2(call *ast.Call, path []string) (ast.Node, error) {
	childrenNode, rest, err := extractChildren(call.Args, true)
	if err != nil {
		return nil, err
	}

	var keyRef, makeArgs []ast.Arg
	for _, a := range rest {
		if a.Label.IsLabelled() && (a.Label.Name == "key" || a.Label.Name == "ref") {
			keyRef = append(keyRef, a)
			continue
		}
		v, err := p.rewrite(a.Value)
		if err != nil {
			return nil, err
		}
		makeArgs = append(makeArgs, ast.Arg{Label: a.Label, Value: v})
	}

	seqNode, err := p.toSequence(childrenNode)
	if err != nil {
		return nil, err
	}
	makeArgs = append(makeArgs, ast.Arg{
		Label: ast.Label{Kind: ast.Positional},
		Value: seqNode,
	})

	inner := &ast.Call{
		Callee: &ast.Ident{Path: ast.ReplaceLast(path, "make"), Span: call.Callee.Pos()},
		Args:   makeArgs,
		Span:   call.Span,
	}
	outer := append(keyRef, ast.Arg{
		Label: ast.Label{Kind: ast.Positional},
		Value: inner,
	})
	return &ast.Call{
		Callee: &ast.Ident{Path: elementPath, Span: call.Callee.Pos()},
		Args:   outer,
		Attrs:  ast.RemoveAttr(call.Attrs, ast.MarkupAttr),
		Span:   call.Span,
	}, nil
}

// transformComponentV3 rewrites a markup call to a user component
// under the v3 convention:
//
//	React.createElement(Path.make, Path.props(args..., ~children?, ()))
//
// All remaining arguments pass straight through to the derived props
// constructor; empty children are elided, a child list is wrapped in
// a fragment, a lone child passes directly.
func (p *pass) transformComponentV3(call *ast.Call, path []string) (ast.Node, error) {
	childrenNode, rest, err := extractChildren(call.Args, true)
	if err != nil {
		return nil, err
	}

	propsArgs := make([]ast.Arg, 0, len(rest)+2)
	for _, a := range rest {
		v, err := p.rewrite(a.Value)
		if err != nil {
			return nil, err
		}
		propsArgs = append(propsArgs, ast.Arg{Label: a.Label, Value: v})
	}

	ch, err := p.toExactOrList(childrenNode)
	if err != nil {
		return nil, err
	}
	switch {
	case ch.IsList && len(ch.Elems) == 0:
		// no children argument at all
	case ch.IsList:
		propsArgs = append(propsArgs, ast.Arg{
			Label: ast.NamedLabel("children"),
			Value: fragmentCall(ch.Elems, childrenNode.Pos()),
		})
	default:
		propsArgs = append(propsArgs, ast.Arg{
			Label: ast.NamedLabel("children"),
			Value: ch.Exact,
		})
	}
	// the props constructor is uncurried and ends in unit
	propsArgs = append(propsArgs, ast.Arg{
		Label: ast.Label{Kind: ast.Positional},
		Value: ast.Unit(),
	})

	propsCall := &ast.Call{
		Callee: &ast.Ident{Path: derivedPropsPath(path), Span: call.Callee.Pos()},
		Args:   propsArgs,
		Span:   call.Span,
	}
	return &ast.Call{
		Callee: &ast.Ident{Path: createElementPath, Span: call.Callee.Pos()},
		Args: []ast.Arg{
			{
				Label: ast.Label{Kind: ast.Positional},
				Value: &ast.Ident{Path: ast.ReplaceLast(path, "make"), Span: call.Callee.Pos()},
			},
			{
				Label: ast.Label{Kind: ast.Positional},
				Value: propsCall,
			},
		},
		Attrs: ast.RemoveAttr(call.Attrs, ast.MarkupAttr),
		Span:  call.Span,
	}, nil
}

// derivedPropsPath derives the props-constructor entry point from the
// component's qualified path: the terminal entry-point segment is
// replaced by props, except on deeper paths where it is suffixed with
// _props instead.
func derivedPropsPath(path []string) []string {
	if len(path) > 2 {
		return ast.SuffixLast(path, "_props")
	}
	return ast.ReplaceLast(path, "props")
}

// transformFragment rewrites a markup-tagged bare sequence literal
// into React.createElement(React.fragment, seq).
func (p *pass) transformFragment(n *ast.Construct) (ast.Node, error) {
	ch, err := p.toExactOrList(n)
	if err != nil {
		return nil, err
	}
	var res ast.Node
	if ch.IsList {
		res = fragmentCall(ch.Elems, n.Span)
	} else {
		res = fragmentWrap(ch.Exact, n.Span)
	}
	res.(*ast.Call).Attrs = ast.RemoveAttr(n.Attrs, ast.MarkupAttr)
	return res, nil
}

// transformFragmentList is the array-literal form of a fragment. The
// elements are already explicit; a lone element stays unwrapped like a
// singleton sequence.
func (p *pass) transformFragmentList(n *ast.ListLit) (ast.Node, error) {
	elems := make([]ast.Node, len(n.Elems))
	for i, e := range n.Elems {
		v, err := p.rewrite(e)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	var res ast.Node
	if len(elems) == 1 {
		res = fragmentWrap(elems[0], n.Span)
	} else {
		res = fragmentCall(elems, n.Span)
	}
	res.(*ast.Call).Attrs = ast.RemoveAttr(n.Attrs, ast.MarkupAttr)
	return res, nil
}

func fragmentCall(elems []ast.Node, at ast.Pos) ast.Node {
	return fragmentWrap(&ast.ListLit{Elems: elems, Span: at}, at)
}

func fragmentWrap(seq ast.Node, at ast.Pos) ast.Node {
	return &ast.Call{
		Callee: &ast.Ident{Path: createElementPath, Span: at},
		Args: []ast.Arg{
			{Label: ast.Label{Kind: ast.Positional}, Value: &ast.Ident{Path: fragmentPath, Span: at}},
			{Label: ast.Label{Kind: ast.Positional}, Value: seq},
		},
		Span: at,
	}
}
