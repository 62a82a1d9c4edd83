package jsx

import (
	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/debug"
	"github.com/veld-lang/jsxform/diag"
)

// propsParamName is the synthetic parameter standing for the incoming
// props record in an expanded component.
const propsParamName = "props__"

var setDisplayNamePath = []string{"React", "setDisplayName"}

// cparam is one collected component parameter.
type cparam struct {
	name     string
	def      ast.Node
	optional bool
}

// expansion is the set of declarations synthesized for one component
// binding.
type expansion struct {
	external *ast.External
	typeDecl *ast.TypeDecl
	binding  *ast.Binding
	side     ast.Decl
}

// rewriteValueGroup expands component-marked bindings and rewrites the
// expressions of the rest. For a group with expansions the emit order
// is: synthesized externals, synthesized types, the rewritten group,
// then naming side-declarations.
func (p *pass) rewriteValueGroup(g *ast.ValueGroup) ([]ast.Decl, error) {
	var (
		expansions []*expansion
		bindings   = make([]*ast.Binding, len(g.Bindings))
	)
	for i, b := range g.Bindings {
		if !ast.HasAttr(b.Attrs, ast.ComponentAttr) {
			expr, err := p.rewrite(b.Expr)
			if err != nil {
				return nil, err
			}
			bindings[i] = &ast.Binding{Pattern: b.Pattern, Expr: expr, Attrs: b.Attrs, Span: b.Span}
			continue
		}
		exp, err := p.expandComponent(b)
		if err != nil {
			return nil, err
		}
		expansions = append(expansions, exp)
		bindings[i] = exp.binding
	}

	group := &ast.ValueGroup{Bindings: bindings, Rec: g.Rec, Span: g.Span}
	if len(expansions) == 0 {
		return []ast.Decl{group}, nil
	}
	var out []ast.Decl
	for _, exp := range expansions {
		out = append(out, exp.external)
	}
	for _, exp := range expansions {
		out = append(out, exp.typeDecl)
	}
	out = append(out, group)
	for _, exp := range expansions {
		if exp.side != nil {
			out = append(out, exp.side)
		}
	}
	return out, nil
}

// expandComponent synthesizes the props record type, the props
// constructor external and the record-destructuring wrapper for one
// component-marked binding.
func (p *pass) expandComponent(b *ast.Binding) (*expansion, error) {
	if b.Pattern == nil || b.Pattern.Kind != ast.PatVar {
		return nil, diag.Errorf(b.Span, ErrComponentTarget,
			"component marker requires a simple name binding")
	}
	fn, ok := b.Expr.(*ast.Func)
	if !ok {
		return nil, diag.Errorf(posOr(b.Expr, b.Span), ErrComponentTarget,
			"component marker requires a function binding")
	}
	name := b.Pattern.Name
	if debug.Expand() {
		debug.Logf("jsxform: expanding component %s\n", name)
	}

	params, body := collectParams(fn)

	// Every component implicitly accepts a key. It appears only in
	// the constructor signature, never as a record field: the runtime
	// consumes it before the component sees its props.
	all := append([]cparam{{name: "key", optional: true}}, params...)

	typeDecl := &ast.TypeDecl{
		Name:   "props",
		Vars:   make([]string, len(params)),
		Fields: make([]ast.TypeField, len(params)),
		Object: true,
		Span:   b.Span,
	}
	for i, prm := range params {
		typeDecl.Vars[i] = prm.name
		typeDecl.Fields[i] = ast.TypeField{Name: prm.name, Var: prm.name}
	}

	external := &ast.External{
		Name:  "props",
		Type:  propsConstructorType(all, params),
		Prim:  []string{""},
		Attrs: []ast.Attr{{Name: "obj"}},
		Span:  b.Span,
	}

	inner, err := p.rewrite(body)
	if err != nil {
		return nil, err
	}
	wrapped := inner
	for i := len(params) - 1; i >= 0; i-- {
		wrapped = &ast.LetIn{
			Name: params[i].name,
			Value: &ast.FieldAccess{
				Expr: &ast.Ident{Path: []string{propsParamName}},
				Name: params[i].name,
			},
			Body: wrapped,
		}
	}
	wrapper := &ast.Func{
		Param: ast.Param{
			Label:   ast.Label{Kind: ast.Positional},
			Pattern: ast.VarPattern(propsParamName),
		},
		Body:      wrapped,
		Uncurried: true,
		Span:      fn.Span,
	}

	attrs := ast.RemoveAttr(b.Attrs, ast.ComponentAttr)
	var side ast.Decl
	if na := ast.GetAttr(attrs, ast.ComponentNameAttr); na != nil {
		if lit, ok := na.Payload.(*ast.StringLit); ok {
			side = displayNameDecl(name, lit.Value, b.Span)
			attrs = ast.RemoveAttr(attrs, ast.ComponentNameAttr)
		}
	}

	return &expansion{
		external: external,
		typeDecl: typeDecl,
		binding:  &ast.Binding{Pattern: b.Pattern, Expr: wrapper, Attrs: attrs, Span: b.Span},
		side:     side,
	}, nil
}

// collectParams walks the parameter chain left to right, collecting
// labelled parameters. Collection stops at the first positional
// parameter: a unit or wildcard pattern is consumed and its body
// becomes the new body; any other positional parameter keeps the
// remaining function intact as the body.
func collectParams(fn *ast.Func) ([]cparam, ast.Node) {
	var params []cparam
	cur := ast.Node(fn)
	for {
		f, ok := cur.(*ast.Func)
		if !ok {
			return params, cur
		}
		if f.Param.Label.IsLabelled() {
			params = append(params, cparam{
				name:     f.Param.Label.Name,
				def:      f.Param.Default,
				optional: f.Param.Label.Kind == ast.Optional,
			})
			cur = f.Body
			continue
		}
		if f.Param.Pattern != nil &&
			(f.Param.Pattern.Kind == ast.PatUnit || f.Param.Pattern.Kind == ast.PatWild) {
			return params, f.Body
		}
		return params, f
	}
}

// propsConstructorType folds the key-prepended parameter list into an
// arrow chain ending in unit -> props<...>.
func propsConstructorType(all, fields []cparam) ast.TypeExpr {
	ret := &ast.TApply{Path: []string{"props"}, Args: make([]ast.TypeExpr, len(fields))}
	for i, prm := range fields {
		ret.Args[i] = &ast.TVar{Name: prm.name}
	}
	var t ast.TypeExpr = &ast.TArrow{
		Label: ast.Label{Kind: ast.Positional},
		From:  &ast.TUnit{},
		To:    ret,
	}
	for i := len(all) - 1; i >= 0; i-- {
		kind := ast.Named
		if all[i].optional {
			kind = ast.Optional
		}
		t = &ast.TArrow{
			Label: ast.Label{Kind: kind, Name: all[i].name},
			From:  &ast.TVar{Name: all[i].name},
			To:    t,
		}
	}
	return t
}

// displayNameDecl emits `let _ = React.setDisplayName(fn, name)` for
// external debugging tools.
func displayNameDecl(fnName, display string, at ast.Pos) ast.Decl {
	return &ast.ValueGroup{
		Bindings: []*ast.Binding{{
			Pattern: &ast.Pattern{Kind: ast.PatWild},
			Expr: &ast.Call{
				Callee: &ast.Ident{Path: setDisplayNamePath},
				Args: []ast.Arg{
					{Label: ast.Label{Kind: ast.Positional}, Value: &ast.Ident{Path: []string{fnName}}},
					{Label: ast.Label{Kind: ast.Positional}, Value: &ast.StringLit{Value: display}},
				},
				Span: at,
			},
			Span: at,
		}},
		Span: at,
	}
}
