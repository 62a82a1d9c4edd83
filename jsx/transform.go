package jsx

import (
	"github.com/veld-lang/jsxform/ast"
)

// Config holds per-pass settings.
type Config struct {
	// Version preseeds the output convention. A jsxConfig declaration
	// in the unit still takes effect when present.
	Version Version
}

// Option adjusts a Config.
type Option func(*Config)

// WithVersion preseeds the pass version.
func WithVersion(v Version) Option {
	return func(c *Config) { c.Version = v }
}

// pass is the per-unit transform state. The version cell is written
// while scanning file-level configuration, before any transform reads
// it; the pass is strictly sequential so no locking applies.
type pass struct {
	version Version
}

// Transform rewrites one compilation unit: markup calls become
// runtime element calls, component-marked bindings expand into
// props type, props constructor and wrapped function. Any validity
// failure aborts the pass; no partial tree is returned.
func Transform(decls []ast.Decl, opts ...Option) ([]ast.Decl, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	p := &pass{version: cfg.Version}

	// Configuration is scanned before any transform runs.
	configOut := make(map[int]ast.Decl, 1)
	configSeen := make(map[int]bool, 1)
	for i, d := range decls {
		ad, ok := d.(*ast.AttrDecl)
		if !ok || ad.Attr.Name != ast.ConfigAttr {
			continue
		}
		kept, err := p.applyConfig(ad)
		if err != nil {
			return nil, err
		}
		configSeen[i] = true
		configOut[i] = kept
	}

	var out []ast.Decl
	for i, d := range decls {
		if configSeen[i] {
			if kept := configOut[i]; kept != nil {
				out = append(out, kept)
			}
			continue
		}
		res, err := p.rewriteDecl(d)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

// rewriteDecl transforms one declaration, possibly into several.
func (p *pass) rewriteDecl(d ast.Decl) ([]ast.Decl, error) {
	switch x := d.(type) {
	case *ast.ValueGroup:
		return p.rewriteValueGroup(x)
	case *ast.TypeDecl, *ast.External, *ast.AttrDecl:
		return []ast.Decl{d}, nil
	}
	return []ast.Decl{d}, nil
}

// rewrite transforms one expression. Markup nodes dispatch to the
// element transforms; every other node kind rebuilds with transformed
// children so no kind is silently dropped.
func (p *pass) rewrite(n ast.Node) (ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	switch x := n.(type) {
	case *ast.Ident, *ast.StringLit, *ast.IntLit:
		return n, nil
	case *ast.Call:
		if ast.HasAttr(x.Attrs, ast.MarkupAttr) {
			return p.dispatchMarkup(x)
		}
		callee, err := p.rewrite(x.Callee)
		if err != nil {
			return nil, err
		}
		var args []ast.Arg
		if x.Args != nil {
			args = make([]ast.Arg, len(x.Args))
		}
		for i, a := range x.Args {
			v, err := p.rewrite(a.Value)
			if err != nil {
				return nil, err
			}
			args[i] = ast.Arg{Label: a.Label, Value: v}
		}
		return &ast.Call{Callee: callee, Args: args, Attrs: x.Attrs, Span: x.Span}, nil
	case *ast.Construct:
		if ast.HasAttr(x.Attrs, ast.MarkupAttr) && ast.IsSeq(x) {
			return p.transformFragment(x)
		}
		// nil stays nil so an untouched node round-trips exactly
		var payload []ast.Node
		if x.Payload != nil {
			payload = make([]ast.Node, len(x.Payload))
		}
		for i, e := range x.Payload {
			v, err := p.rewrite(e)
			if err != nil {
				return nil, err
			}
			payload[i] = v
		}
		return &ast.Construct{Name: x.Name, Payload: payload, Attrs: x.Attrs, Span: x.Span}, nil
	case *ast.ListLit:
		if ast.HasAttr(x.Attrs, ast.MarkupAttr) {
			return p.transformFragmentList(x)
		}
		var elems []ast.Node
		if x.Elems != nil {
			elems = make([]ast.Node, len(x.Elems))
		}
		for i, e := range x.Elems {
			v, err := p.rewrite(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &ast.ListLit{Elems: elems, Attrs: x.Attrs, Span: x.Span}, nil
	case *ast.Func:
		dflt, err := p.rewrite(x.Param.Default)
		if err != nil {
			return nil, err
		}
		body, err := p.rewrite(x.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Func{
			Param:     ast.Param{Label: x.Param.Label, Pattern: x.Param.Pattern, Default: dflt},
			Body:      body,
			Uncurried: x.Uncurried,
			Span:      x.Span,
		}, nil
	case *ast.RecordLit:
		var fields []ast.RecField
		if x.Fields != nil {
			fields = make([]ast.RecField, len(x.Fields))
		}
		for i, f := range x.Fields {
			v, err := p.rewrite(f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.RecField{Name: f.Name, Value: v}
		}
		return &ast.RecordLit{Fields: fields, Span: x.Span}, nil
	case *ast.FieldAccess:
		expr, err := p.rewrite(x.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.FieldAccess{Expr: expr, Name: x.Name, Span: x.Span}, nil
	case *ast.LetIn:
		val, err := p.rewrite(x.Value)
		if err != nil {
			return nil, err
		}
		body, err := p.rewrite(x.Body)
		if err != nil {
			return nil, err
		}
		return &ast.LetIn{Name: x.Name, Value: val, Body: body, Span: x.Span}, nil
	}
	return n, nil
}
