package jsx

import (
	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/diag"
)

// tagConvention names the runtime entry points a plain-tag transform
// targets. The v2 and v3 algorithms are identical; only the targeted
// namespace differs.
type tagConvention struct {
	createFixed    []string
	createVariadic []string
	propsBuilder   []string
}

var (
	tagV2 = tagConvention{
		createFixed:    []string{"ReactDOMRe", "createElement"},
		createVariadic: []string{"ReactDOMRe", "createElementVariadic"},
		propsBuilder:   []string{"ReactDOMRe", "props"},
	}
	tagV3 = tagConvention{
		createFixed:    []string{"ReactDOM", "createElement"},
		createVariadic: []string{"ReactDOM", "createElementVariadic"},
		propsBuilder:   []string{"ReactDOM", "domProps"},
	}
)

func (p *pass) tagConvention() tagConvention {
	if p.version.effective() == Version3 {
		return tagV3
	}
	return tagV2
}

// transformTag rewrites a markup call whose callee is an unqualified
// tag name into a creation call: tag literal, optional ~props built by
// the convention's prop builder, then the children. Sequence children
// select the fixed-arity entry point and render as an explicit array;
// a spread selects the variadic entry point and passes through.
func (p *pass) transformTag(call *ast.Call, tag string) (ast.Node, error) {
	conv := p.tagConvention()
	childrenNode, rest, err := extractChildren(call.Args, false)
	if err != nil {
		return nil, err
	}

	var (
		entry    []string
		childArg ast.Node
	)
	if ast.IsSeq(childrenNode) {
		elems, err := p.decodeSeq(childrenNode)
		if err != nil {
			return nil, err
		}
		entry = conv.createFixed
		childArg = &ast.ListLit{Elems: elems, Span: childrenNode.Pos()}
	} else {
		// A spread: mixing it with a literal array or another markup
		// element is ambiguous authoring intent.
		if lit, ok := childrenNode.(*ast.ListLit); ok {
			if ast.HasAttr(lit.Attrs, ast.MarkupAttr) {
				return nil, diag.Errorf(lit.Pos(), ErrSpreadWithMarkup,
					"cannot spread a markup element as children")
			}
			return nil, diag.Errorf(lit.Pos(), ErrSpreadWithArray,
				"cannot spread an array literal as children")
		}
		if isMarkup(childrenNode) {
			return nil, diag.Errorf(childrenNode.Pos(), ErrSpreadWithMarkup,
				"cannot spread a markup element as children")
		}
		entry = conv.createVariadic
		if childArg, err = p.rewrite(childrenNode); err != nil {
			return nil, err
		}
	}

	args := []ast.Arg{{
		Label: ast.Label{Kind: ast.Positional},
		Value: &ast.StringLit{Value: tag, Span: call.Callee.Pos()},
	}}
	if propsArg, err := p.buildProps(conv, rest); err != nil {
		return nil, err
	} else if propsArg != nil {
		args = append(args, *propsArg)
	}
	args = append(args, ast.Arg{
		Label: ast.Label{Kind: ast.Positional},
		Value: childArg,
	})

	return &ast.Call{
		Callee: &ast.Ident{Path: entry, Span: call.Callee.Pos()},
		Args:   args,
		Attrs:  ast.RemoveAttr(call.Attrs, ast.MarkupAttr),
		Span:   call.Span,
	}, nil
}

// buildProps turns the non-children arguments into a ~props argument
// over the convention's prop builder. A remainder that is empty or
// only the authored trailing unit means no props.
func (p *pass) buildProps(conv tagConvention, rest []ast.Arg) (*ast.Arg, error) {
	if len(rest) == 0 {
		return nil, nil
	}
	if len(rest) == 1 && !rest[0].Label.IsLabelled() && ast.IsUnit(rest[0].Value) {
		return nil, nil
	}
	props := make([]ast.Arg, len(rest))
	for i, a := range rest {
		v, err := p.rewrite(a.Value)
		if err != nil {
			return nil, err
		}
		props[i] = ast.Arg{Label: a.Label, Value: v}
	}
	return &ast.Arg{
		Label: ast.NamedLabel("props"),
		Value: &ast.Call{
			Callee: &ast.Ident{Path: conv.propsBuilder},
			Args:   props,
		},
	}, nil
}

// isMarkup reports whether n carries the markup marker.
func isMarkup(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.Call:
		return ast.HasAttr(x.Attrs, ast.MarkupAttr)
	case *ast.ListLit:
		return ast.HasAttr(x.Attrs, ast.MarkupAttr)
	case *ast.Construct:
		return ast.HasAttr(x.Attrs, ast.MarkupAttr)
	}
	return false
}
