package ast

import "fmt"

// Node is an expression in the tree. The set of implementations is
// closed; rewriters switch over the concrete types and must handle
// every kind.
type Node interface {
	Pos() Pos
	node()
}

// Builtin construct names. Cons and Nil encode authored sequences as
// a cons chain; Unit is the unit value.
const (
	ConsName = "::"
	NilName  = "[]"
	UnitName = "()"
)

// LabelKind classifies how an argument or parameter is passed.
type LabelKind int

const (
	Positional LabelKind = iota
	Named
	Optional
)

func (k LabelKind) String() string {
	s, ok := map[LabelKind]string{
		Positional: "positional",
		Named:      "named",
		Optional:   "optional",
	}[k]
	if ok {
		return s
	}
	return "<unknown label kind>"
}

func (k LabelKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *LabelKind) UnmarshalText(d []byte) error {
	kk, ok := map[string]LabelKind{
		"positional": Positional,
		"named":      Named,
		"optional":   Optional,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized label kind %q", d)
	}
	*k = kk
	return nil
}

// Label names an argument or parameter. Positional labels have no
// name.
type Label struct {
	Kind LabelKind `json:"kind"`
	Name string    `json:"name,omitempty"`
}

func NamedLabel(name string) Label    { return Label{Kind: Named, Name: name} }
func OptionalLabel(name string) Label { return Label{Kind: Optional, Name: name} }

// IsLabelled reports whether the label is named or optional.
func (l Label) IsLabelled() bool {
	return l.Kind != Positional
}

// Arg is a labelled actual argument of a Call.
type Arg struct {
	Label Label
	Value Node
}

// PatKind classifies binding patterns. Only the shapes the rewriter
// inspects are distinguished; everything else is PatOpaque.
type PatKind int

const (
	PatVar PatKind = iota
	PatUnit
	PatWild
	PatOpaque
)

func (k PatKind) String() string {
	s, ok := map[PatKind]string{
		PatVar:    "var",
		PatUnit:   "unit",
		PatWild:   "wildcard",
		PatOpaque: "opaque",
	}[k]
	if ok {
		return s
	}
	return "<unknown pattern kind>"
}

func (k PatKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PatKind) UnmarshalText(d []byte) error {
	kk, ok := map[string]PatKind{
		"var":      PatVar,
		"unit":     PatUnit,
		"wildcard": PatWild,
		"opaque":   PatOpaque,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized pattern kind %q", d)
	}
	*k = kk
	return nil
}

// Pattern is a binding pattern. Name is set for PatVar.
type Pattern struct {
	Kind PatKind `json:"kind"`
	Name string  `json:"name,omitempty"`
	Span Pos     `json:"pos,omitzero"`
}

func VarPattern(name string) *Pattern {
	return &Pattern{Kind: PatVar, Name: name}
}

// Param is the single parameter of a Func.
type Param struct {
	Label   Label
	Pattern *Pattern
	Default Node
}

// Ident is a possibly qualified name, e.g. [Foo make].
type Ident struct {
	Path []string
	Span Pos
}

// Call applies Callee to ordered Args. Markers live in Attrs; a Call
// carrying the "jsx" marker is markup and subject to rewriting.
type Call struct {
	Callee Node
	Args   []Arg
	Attrs  []Attr
	Span   Pos
}

// Construct is a named variant application, used here for the builtin
// sequence encoding ("::" with two payload elements, "[]" with none)
// and the unit value ("()"). A sequence construct carrying the "jsx"
// marker is a fragment.
type Construct struct {
	Name    string
	Payload []Node
	Attrs   []Attr
	Span    Pos
}

// ListLit is an array literal, distinct from Construct-encoded
// sequences. A ListLit carrying the "jsx" marker is a fragment.
type ListLit struct {
	Elems []Node
	Attrs []Attr
	Span  Pos
}

// Func is a single-parameter function; curried signatures are nested
// Funcs. Uncurried marks the function for uncurried invocation.
type Func struct {
	Param     Param
	Body      Node
	Uncurried bool
	Span      Pos
}

// RecField is one field of a RecordLit.
type RecField struct {
	Name  string
	Value Node
}

// RecordLit is a record expression. The rewriter only inspects it as
// the payload of the jsxConfig attribute.
type RecordLit struct {
	Fields []RecField
	Span   Pos
}

// FieldAccess projects Name out of Expr.
type FieldAccess struct {
	Expr Node
	Name string
	Span Pos
}

// LetIn binds Name to Value within Body.
type LetIn struct {
	Name  string
	Value Node
	Body  Node
	Span  Pos
}

// StringLit is a string literal.
type StringLit struct {
	Value string
	Span  Pos
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
	Span  Pos
}

func (n *Ident) Pos() Pos       { return n.Span }
func (n *Call) Pos() Pos        { return n.Span }
func (n *Construct) Pos() Pos   { return n.Span }
func (n *ListLit) Pos() Pos     { return n.Span }
func (n *Func) Pos() Pos        { return n.Span }
func (n *RecordLit) Pos() Pos   { return n.Span }
func (n *FieldAccess) Pos() Pos { return n.Span }
func (n *LetIn) Pos() Pos       { return n.Span }
func (n *StringLit) Pos() Pos   { return n.Span }
func (n *IntLit) Pos() Pos      { return n.Span }

func (*Ident) node()       {}
func (*Call) node()        {}
func (*Construct) node()   {}
func (*ListLit) node()     {}
func (*Func) node()        {}
func (*RecordLit) node()   {}
func (*FieldAccess) node() {}
func (*LetIn) node()       {}
func (*StringLit) node()   {}
func (*IntLit) node()      {}

// Unit returns a fresh unit construct.
func Unit() *Construct {
	return &Construct{Name: UnitName}
}

// NilSeq returns a fresh empty-sequence construct.
func NilSeq() *Construct {
	return &Construct{Name: NilName}
}

// Cons returns head :: tail.
func Cons(head, tail Node) *Construct {
	return &Construct{Name: ConsName, Payload: []Node{head, tail}}
}

// Seq encodes elems as a cons chain terminated by the empty-sequence
// construct.
func Seq(elems ...Node) *Construct {
	res := NilSeq()
	for i := len(elems) - 1; i >= 0; i-- {
		res = Cons(elems[i], res)
	}
	return res
}

// IsUnit reports whether n is the zero-payload unit construct.
func IsUnit(n Node) bool {
	c, ok := n.(*Construct)
	return ok && c.Name == UnitName && len(c.Payload) == 0
}

// IsSeq reports whether n is part of the builtin sequence encoding,
// either a cons cell or the empty-sequence marker.
func IsSeq(n Node) bool {
	c, ok := n.(*Construct)
	if !ok {
		return false
	}
	switch c.Name {
	case NilName:
		return len(c.Payload) == 0
	case ConsName:
		return len(c.Payload) == 2
	}
	return false
}
