package astjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/veld-lang/jsxform/ast"
)

// EncodeConfig controls encoding output.
type EncodeConfig struct {
	Indent    string
	Positions bool
}

// EncodeOption adjusts an EncodeConfig.
type EncodeOption func(*EncodeConfig)

// Indent sets the indentation string for pretty output; empty means
// compact.
func Indent(s string) EncodeOption {
	return func(c *EncodeConfig) { c.Indent = s }
}

// WithPositions controls whether node positions are emitted.
func WithPositions(v bool) EncodeOption {
	return func(c *EncodeConfig) { c.Positions = v }
}

// EncodeUnit renders a compilation unit in the wire format.
func EncodeUnit(decls []ast.Decl, opts ...EncodeOption) ([]byte, error) {
	cfg := &EncodeConfig{Positions: true}
	for _, opt := range opts {
		opt(cfg)
	}
	unit := wireUnit{Decls: make([]json.RawMessage, len(decls))}
	for i, d := range decls {
		raw, err := encodeDecl(d, cfg)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		unit.Decls[i] = raw
	}
	return marshal(unit, cfg)
}

// EncodeNode renders a single expression in the wire format.
func EncodeNode(n ast.Node, opts ...EncodeOption) ([]byte, error) {
	cfg := &EncodeConfig{Positions: true}
	for _, opt := range opts {
		opt(cfg)
	}
	raw, err := encodeNode(n, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Indent == "" {
		return raw, nil
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, raw, "", cfg.Indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshal(v any, cfg *EncodeConfig) ([]byte, error) {
	if cfg.Indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", cfg.Indent)
}

func (c *EncodeConfig) pos(p ast.Pos) ast.Pos {
	if !c.Positions {
		return ast.Pos{}
	}
	return p
}

func encodeNode(n ast.Node, cfg *EncodeConfig) (json.RawMessage, error) {
	if n == nil {
		return nil, nil
	}
	w := &wireNode{Pos: cfg.pos(n.Pos())}
	var err error
	switch x := n.(type) {
	case *ast.Ident:
		w.Kind = kindIdent
		w.Path = x.Path
	case *ast.Call:
		w.Kind = kindCall
		if w.Callee, err = encodeNode(x.Callee, cfg); err != nil {
			return nil, err
		}
		if w.Args, err = encodeArgs(x.Args, cfg); err != nil {
			return nil, err
		}
		if w.Attrs, err = encodeAttrs(x.Attrs, cfg); err != nil {
			return nil, err
		}
	case *ast.Construct:
		w.Kind = kindConstruct
		w.Name = x.Name
		if w.Payload, err = encodeNodes(x.Payload, cfg); err != nil {
			return nil, err
		}
		if w.Attrs, err = encodeAttrs(x.Attrs, cfg); err != nil {
			return nil, err
		}
	case *ast.ListLit:
		w.Kind = kindList
		if w.Elems, err = encodeNodes(x.Elems, cfg); err != nil {
			return nil, err
		}
		if x.Elems == nil {
			w.Elems = []json.RawMessage{}
		}
		if w.Attrs, err = encodeAttrs(x.Attrs, cfg); err != nil {
			return nil, err
		}
	case *ast.Func:
		w.Kind = kindFunc
		w.Uncurried = x.Uncurried
		p := wireParam{Label: x.Param.Label, Pattern: x.Param.Pattern}
		if p.Default, err = encodeNode(x.Param.Default, cfg); err != nil {
			return nil, err
		}
		w.Param = &p
		if w.Body, err = encodeNode(x.Body, cfg); err != nil {
			return nil, err
		}
	case *ast.RecordLit:
		w.Kind = kindRecord
		w.Fields = make([]wireRecField, len(x.Fields))
		for i, f := range x.Fields {
			raw, err := encodeNode(f.Value, cfg)
			if err != nil {
				return nil, err
			}
			w.Fields[i] = wireRecField{Name: f.Name, Value: raw}
		}
	case *ast.FieldAccess:
		w.Kind = kindField
		w.Name = x.Name
		if w.Expr, err = encodeNode(x.Expr, cfg); err != nil {
			return nil, err
		}
	case *ast.LetIn:
		w.Kind = kindLet
		w.Name = x.Name
		if w.Value, err = encodeNode(x.Value, cfg); err != nil {
			return nil, err
		}
		if w.Body, err = encodeNode(x.Body, cfg); err != nil {
			return nil, err
		}
	case *ast.StringLit:
		w.Kind = kindString
		s := x.Value
		w.Str = &s
	case *ast.IntLit:
		w.Kind = kindInt
		v := x.Value
		w.Int = &v
	default:
		return nil, fmt.Errorf("unencodable node %T", n)
	}
	return json.Marshal(w)
}

func encodeNodes(ns []ast.Node, cfg *EncodeConfig) ([]json.RawMessage, error) {
	if ns == nil {
		return nil, nil
	}
	res := make([]json.RawMessage, len(ns))
	for i, n := range ns {
		raw, err := encodeNode(n, cfg)
		if err != nil {
			return nil, err
		}
		res[i] = raw
	}
	return res, nil
}

func encodeArgs(args []ast.Arg, cfg *EncodeConfig) ([]wireArg, error) {
	if args == nil {
		return nil, nil
	}
	res := make([]wireArg, len(args))
	for i, a := range args {
		raw, err := encodeNode(a.Value, cfg)
		if err != nil {
			return nil, err
		}
		res[i] = wireArg{Label: a.Label, Value: raw}
	}
	return res, nil
}

func encodeAttrs(attrs []ast.Attr, cfg *EncodeConfig) ([]wireAttr, error) {
	if attrs == nil {
		return nil, nil
	}
	res := make([]wireAttr, len(attrs))
	for i, a := range attrs {
		raw, err := encodeNode(a.Payload, cfg)
		if err != nil {
			return nil, err
		}
		res[i] = wireAttr{Name: a.Name, Payload: raw, Pos: cfg.pos(a.Span)}
	}
	return res, nil
}

func encodeDecl(d ast.Decl, cfg *EncodeConfig) (json.RawMessage, error) {
	if d == nil {
		return nil, nil
	}
	w := &wireDecl{Pos: cfg.pos(d.Pos())}
	var err error
	switch x := d.(type) {
	case *ast.ValueGroup:
		w.Kind = kindValueGroup
		w.Rec = x.Rec
		w.Bindings = make([]wireBinding, len(x.Bindings))
		for i, b := range x.Bindings {
			wb := wireBinding{Pattern: b.Pattern, Pos: cfg.pos(b.Span)}
			if wb.Expr, err = encodeNode(b.Expr, cfg); err != nil {
				return nil, err
			}
			if wb.Attrs, err = encodeAttrs(b.Attrs, cfg); err != nil {
				return nil, err
			}
			w.Bindings[i] = wb
		}
	case *ast.TypeDecl:
		w.Kind = kindTypeDecl
		w.Name = x.Name
		w.Vars = x.Vars
		w.Fields = make([]wireTypeField, len(x.Fields))
		for i, f := range x.Fields {
			w.Fields[i] = wireTypeField{Name: f.Name, Var: f.Var}
		}
		w.Object = x.Object
	case *ast.External:
		w.Kind = kindExternal
		w.Name = x.Name
		w.Prim = x.Prim
		if w.Type, err = encodeType(x.Type); err != nil {
			return nil, err
		}
		if w.Attrs, err = encodeAttrs(x.Attrs, cfg); err != nil {
			return nil, err
		}
	case *ast.AttrDecl:
		w.Kind = kindAttrDecl
		raw, err := encodeNode(x.Attr.Payload, cfg)
		if err != nil {
			return nil, err
		}
		w.Attr = &wireAttr{Name: x.Attr.Name, Payload: raw, Pos: cfg.pos(x.Attr.Span)}
	default:
		return nil, fmt.Errorf("unencodable declaration %T", d)
	}
	return json.Marshal(w)
}

func encodeType(t ast.TypeExpr) (json.RawMessage, error) {
	if t == nil {
		return nil, nil
	}
	w := &wireType{}
	var err error
	switch x := t.(type) {
	case *ast.TVar:
		w.Kind = kindTVar
		w.Name = x.Name
	case *ast.TApply:
		w.Kind = kindTApply
		w.Path = x.Path
		w.Args = make([]json.RawMessage, len(x.Args))
		for i, a := range x.Args {
			if w.Args[i], err = encodeType(a); err != nil {
				return nil, err
			}
		}
	case *ast.TArrow:
		w.Kind = kindTArrow
		lbl := x.Label
		w.Label = &lbl
		if w.From, err = encodeType(x.From); err != nil {
			return nil, err
		}
		if w.To, err = encodeType(x.To); err != nil {
			return nil, err
		}
	case *ast.TUnit:
		w.Kind = kindTUnit
	default:
		return nil, fmt.Errorf("unencodable type expression %T", t)
	}
	return json.Marshal(w)
}
