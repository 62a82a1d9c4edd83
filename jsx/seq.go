package jsx

import (
	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/diag"
)

// children is the normalized form of a children value: either a
// single already-resolved expression (Exact) or an explicit ordered
// list (IsList, possibly empty).
type children struct {
	Exact  ast.Node
	Elems  []ast.Node
	IsList bool
}

// decodeSeq walks a cons chain, rewriting each element. The head is
// known to satisfy ast.IsSeq; the tail of each cell still comes from
// wire input, so every cell is validated before it is taken apart.
func (p *pass) decodeSeq(n ast.Node) ([]ast.Node, error) {
	var elems []ast.Node
	for {
		if !ast.IsSeq(n) {
			return nil, diag.Errorf(posOr(n, ast.Pos{}), ErrSequenceShape,
				"sequence tail is not a cons cell or the empty sequence")
		}
		c := n.(*ast.Construct)
		if c.Name == ast.NilName {
			return elems, nil
		}
		head, err := p.rewrite(c.Payload[0])
		if err != nil {
			return nil, err
		}
		elems = append(elems, head)
		n = c.Payload[1]
	}
}

// toExactOrList normalizes a children value. Non-sequence input (a
// spread) rewrites in place and stays Exact; a singleton sequence
// collapses to Exact of its sole element so a lone child is never
// wrapped in a one-element array; anything else becomes an explicit
// list, order preserved.
func (p *pass) toExactOrList(n ast.Node) (children, error) {
	if !ast.IsSeq(n) {
		t, err := p.rewrite(n)
		if err != nil {
			return children{}, err
		}
		return children{Exact: t}, nil
	}
	elems, err := p.decodeSeq(n)
	if err != nil {
		return children{}, err
	}
	if len(elems) == 1 {
		return children{Exact: elems[0]}, nil
	}
	return children{Elems: elems, IsList: true}, nil
}

// toSequence normalizes a children value for call sites that always
// take a concrete list: a sequence decodes to an explicit array
// literal, anything else rewrites in place and is passed through
// opaquely to be spread at the call site.
func (p *pass) toSequence(n ast.Node) (ast.Node, error) {
	if !ast.IsSeq(n) {
		return p.rewrite(n)
	}
	elems, err := p.decodeSeq(n)
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Elems: elems, Span: n.Pos()}, nil
}
