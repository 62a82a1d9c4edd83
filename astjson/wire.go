package astjson

import (
	"encoding/json"

	"github.com/veld-lang/jsxform/ast"
)

// Node kind discriminators.
const (
	kindIdent     = "ident"
	kindCall      = "call"
	kindConstruct = "construct"
	kindList      = "list"
	kindFunc      = "func"
	kindRecord    = "record"
	kindField     = "field"
	kindLet       = "let"
	kindString    = "string"
	kindInt       = "int"
)

// Declaration kind discriminators.
const (
	kindValueGroup = "valueGroup"
	kindTypeDecl   = "typeDecl"
	kindExternal   = "external"
	kindAttrDecl   = "attrDecl"
)

// Type expression kind discriminators.
const (
	kindTVar   = "tvar"
	kindTApply = "tapply"
	kindTArrow = "tarrow"
	kindTUnit  = "tunit"
)

type wireUnit struct {
	Decls []json.RawMessage `json:"decls"`
}

// wireNode is the union of all expression kinds; which fields are
// populated depends on Kind.
type wireNode struct {
	Kind string  `json:"kind"`
	Pos  ast.Pos `json:"pos,omitzero"`

	Path      []string          `json:"path,omitempty"`
	Callee    json.RawMessage   `json:"callee,omitempty"`
	Args      []wireArg         `json:"args,omitempty"`
	Attrs     []wireAttr        `json:"attrs,omitempty"`
	Name      string            `json:"name,omitempty"`
	Payload   []json.RawMessage `json:"payload,omitempty"`
	Elems     []json.RawMessage `json:"elems,omitempty"`
	Param     *wireParam        `json:"param,omitempty"`
	Body      json.RawMessage   `json:"body,omitempty"`
	Uncurried bool              `json:"uncurried,omitempty"`
	Fields    []wireRecField    `json:"fields,omitempty"`
	Expr      json.RawMessage   `json:"expr,omitempty"`
	Value     json.RawMessage   `json:"value,omitempty"`
	Str       *string           `json:"string,omitempty"`
	Int       *int64            `json:"int,omitempty"`
}

type wireArg struct {
	Label ast.Label       `json:"label"`
	Value json.RawMessage `json:"value"`
}

type wireAttr struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Pos     ast.Pos         `json:"pos,omitzero"`
}

type wireParam struct {
	Label   ast.Label       `json:"label"`
	Pattern *ast.Pattern    `json:"pattern,omitempty"`
	Default json.RawMessage `json:"default,omitempty"`
}

type wireRecField struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type wireDecl struct {
	Kind string  `json:"kind"`
	Pos  ast.Pos `json:"pos,omitzero"`

	Bindings []wireBinding   `json:"bindings,omitempty"`
	Rec      bool            `json:"rec,omitempty"`
	Name     string          `json:"name,omitempty"`
	Vars     []string        `json:"vars,omitempty"`
	Fields   []wireTypeField `json:"fields,omitempty"`
	Object   bool            `json:"object,omitempty"`
	Type     json.RawMessage `json:"type,omitempty"`
	Prim     []string        `json:"prim,omitempty"`
	Attrs    []wireAttr      `json:"attrs,omitempty"`
	Attr     *wireAttr       `json:"attr,omitempty"`
}

type wireTypeField struct {
	Name string `json:"name"`
	Var  string `json:"var"`
}

type wireBinding struct {
	Pattern *ast.Pattern    `json:"pattern"`
	Expr    json.RawMessage `json:"expr"`
	Attrs   []wireAttr      `json:"attrs,omitempty"`
	Pos     ast.Pos         `json:"pos,omitzero"`
}

type wireType struct {
	Kind  string            `json:"kind"`
	Name  string            `json:"name,omitempty"`
	Path  []string          `json:"path,omitempty"`
	Args  []json.RawMessage `json:"args,omitempty"`
	Label *ast.Label        `json:"label,omitempty"`
	From  json.RawMessage   `json:"from,omitempty"`
	To    json.RawMessage   `json:"to,omitempty"`
}
