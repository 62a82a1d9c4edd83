package astjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/veld-lang/jsxform/ast"
)

var (
	ErrDecode      = errors.New("astjson decode")
	ErrUnknownKind = errors.New("unknown kind")
)

// DecodeUnit parses a compilation unit from the wire format.
func DecodeUnit(data []byte) ([]ast.Decl, error) {
	var unit wireUnit
	if err := json.Unmarshal(data, &unit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	decls := make([]ast.Decl, len(unit.Decls))
	for i, raw := range unit.Decls {
		d, err := decodeDecl(raw)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		decls[i] = d
	}
	return decls, nil
}

// DecodeNode parses a single expression from the wire format.
func DecodeNode(data []byte) (ast.Node, error) {
	return decodeNode(data)
}

func decodeNode(raw json.RawMessage) (ast.Node, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var w wireNode
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	switch w.Kind {
	case kindIdent:
		return &ast.Ident{Path: w.Path, Span: w.Pos}, nil
	case kindCall:
		callee, err := decodeNode(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeArgs(w.Args)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttrs(w.Attrs)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Callee: callee, Args: args, Attrs: attrs, Span: w.Pos}, nil
	case kindConstruct:
		payload, err := decodeNodes(w.Payload)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttrs(w.Attrs)
		if err != nil {
			return nil, err
		}
		return &ast.Construct{Name: w.Name, Payload: payload, Attrs: attrs, Span: w.Pos}, nil
	case kindList:
		elems, err := decodeNodes(w.Elems)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttrs(w.Attrs)
		if err != nil {
			return nil, err
		}
		return &ast.ListLit{Elems: elems, Attrs: attrs, Span: w.Pos}, nil
	case kindFunc:
		if w.Param == nil {
			return nil, fmt.Errorf("%w: func without param", ErrDecode)
		}
		dflt, err := decodeNode(w.Param.Default)
		if err != nil {
			return nil, err
		}
		body, err := decodeNode(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Func{
			Param:     ast.Param{Label: w.Param.Label, Pattern: w.Param.Pattern, Default: dflt},
			Body:      body,
			Uncurried: w.Uncurried,
			Span:      w.Pos,
		}, nil
	case kindRecord:
		fields := make([]ast.RecField, len(w.Fields))
		for i, f := range w.Fields {
			v, err := decodeNode(f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.RecField{Name: f.Name, Value: v}
		}
		return &ast.RecordLit{Fields: fields, Span: w.Pos}, nil
	case kindField:
		expr, err := decodeNode(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.FieldAccess{Expr: expr, Name: w.Name, Span: w.Pos}, nil
	case kindLet:
		val, err := decodeNode(w.Value)
		if err != nil {
			return nil, err
		}
		body, err := decodeNode(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.LetIn{Name: w.Name, Value: val, Body: body, Span: w.Pos}, nil
	case kindString:
		if w.Str == nil {
			return nil, fmt.Errorf("%w: string literal without value", ErrDecode)
		}
		return &ast.StringLit{Value: *w.Str, Span: w.Pos}, nil
	case kindInt:
		if w.Int == nil {
			return nil, fmt.Errorf("%w: int literal without value", ErrDecode)
		}
		return &ast.IntLit{Value: *w.Int, Span: w.Pos}, nil
	}
	return nil, fmt.Errorf("%w: node kind %q", ErrUnknownKind, w.Kind)
}

func decodeNodes(raws []json.RawMessage) ([]ast.Node, error) {
	if raws == nil {
		return nil, nil
	}
	res := make([]ast.Node, len(raws))
	for i, raw := range raws {
		n, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func decodeArgs(ws []wireArg) ([]ast.Arg, error) {
	if ws == nil {
		return nil, nil
	}
	res := make([]ast.Arg, len(ws))
	for i, w := range ws {
		v, err := decodeNode(w.Value)
		if err != nil {
			return nil, err
		}
		res[i] = ast.Arg{Label: w.Label, Value: v}
	}
	return res, nil
}

func decodeAttrs(ws []wireAttr) ([]ast.Attr, error) {
	if ws == nil {
		return nil, nil
	}
	res := make([]ast.Attr, len(ws))
	for i, w := range ws {
		p, err := decodeNode(w.Payload)
		if err != nil {
			return nil, err
		}
		res[i] = ast.Attr{Name: w.Name, Payload: p, Span: w.Pos}
	}
	return res, nil
}

func decodeDecl(raw json.RawMessage) (ast.Decl, error) {
	var w wireDecl
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	switch w.Kind {
	case kindValueGroup:
		bindings := make([]*ast.Binding, len(w.Bindings))
		for i, wb := range w.Bindings {
			expr, err := decodeNode(wb.Expr)
			if err != nil {
				return nil, err
			}
			attrs, err := decodeAttrs(wb.Attrs)
			if err != nil {
				return nil, err
			}
			bindings[i] = &ast.Binding{Pattern: wb.Pattern, Expr: expr, Attrs: attrs, Span: wb.Pos}
		}
		return &ast.ValueGroup{Bindings: bindings, Rec: w.Rec, Span: w.Pos}, nil
	case kindTypeDecl:
		fields := make([]ast.TypeField, len(w.Fields))
		for i, f := range w.Fields {
			fields[i] = ast.TypeField{Name: f.Name, Var: f.Var}
		}
		return &ast.TypeDecl{
			Name:   w.Name,
			Vars:   w.Vars,
			Fields: fields,
			Object: w.Object,
			Span:   w.Pos,
		}, nil
	case kindExternal:
		typ, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttrs(w.Attrs)
		if err != nil {
			return nil, err
		}
		return &ast.External{Name: w.Name, Type: typ, Prim: w.Prim, Attrs: attrs, Span: w.Pos}, nil
	case kindAttrDecl:
		if w.Attr == nil {
			return nil, fmt.Errorf("%w: attrDecl without attr", ErrDecode)
		}
		p, err := decodeNode(w.Attr.Payload)
		if err != nil {
			return nil, err
		}
		return &ast.AttrDecl{
			Attr: ast.Attr{Name: w.Attr.Name, Payload: p, Span: w.Attr.Pos},
			Span: w.Pos,
		}, nil
	}
	return nil, fmt.Errorf("%w: declaration kind %q", ErrUnknownKind, w.Kind)
}

func decodeType(raw json.RawMessage) (ast.TypeExpr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var w wireType
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	switch w.Kind {
	case kindTVar:
		return &ast.TVar{Name: w.Name}, nil
	case kindTApply:
		args := make([]ast.TypeExpr, len(w.Args))
		for i, a := range w.Args {
			t, err := decodeType(a)
			if err != nil {
				return nil, err
			}
			args[i] = t
		}
		return &ast.TApply{Path: w.Path, Args: args}, nil
	case kindTArrow:
		from, err := decodeType(w.From)
		if err != nil {
			return nil, err
		}
		to, err := decodeType(w.To)
		if err != nil {
			return nil, err
		}
		var lbl ast.Label
		if w.Label != nil {
			lbl = *w.Label
		}
		return &ast.TArrow{Label: lbl, From: from, To: to}, nil
	case kindTUnit:
		return &ast.TUnit{}, nil
	}
	return nil, fmt.Errorf("%w: type kind %q", ErrUnknownKind, w.Kind)
}
