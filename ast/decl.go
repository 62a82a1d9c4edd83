package ast

// Decl is a top-level declaration of a compilation unit. Like Node,
// the set of implementations is closed.
type Decl interface {
	Pos() Pos
	decl()
}

// Binding is one value binding of a ValueGroup.
type Binding struct {
	Pattern *Pattern
	Expr    Node
	Attrs   []Attr
	Span    Pos
}

// ValueGroup is a (possibly recursive) group of value bindings.
type ValueGroup struct {
	Bindings []*Binding
	Rec      bool
	Span     Pos
}

// TypeField is one field of a synthesized record type. Var names the
// unconstrained type variable declared for the field.
type TypeField struct {
	Name string
	Var  string
}

// TypeDecl declares a record type. Object marks the record as wrapped
// in the generic object-type constructor.
type TypeDecl struct {
	Name   string
	Vars   []string
	Fields []TypeField
	Object bool
	Span   Pos
}

// External is a foreign value declaration. Prim carries the primitive
// description strings; object constructors use the empty string [""]
// together with an obj attribute.
type External struct {
	Name  string
	Type  TypeExpr
	Prim  []string
	Attrs []Attr
	Span  Pos
}

// AttrDecl is a standalone, file-level attribute declaration.
type AttrDecl struct {
	Attr Attr
	Span Pos
}

func (d *ValueGroup) Pos() Pos { return d.Span }
func (d *TypeDecl) Pos() Pos   { return d.Span }
func (d *External) Pos() Pos   { return d.Span }
func (d *AttrDecl) Pos() Pos   { return d.Span }

func (*ValueGroup) decl() {}
func (*TypeDecl) decl()   {}
func (*External) decl()   {}
func (*AttrDecl) decl()   {}

// TypeExpr is the small type language needed to synthesize props
// constructors. It is output-only: the rewriter builds type
// expressions but never inspects incoming ones.
type TypeExpr interface {
	typeExpr()
}

// TVar is a type variable, e.g. 'a.
type TVar struct {
	Name string
}

// TApply applies a named type constructor to arguments.
type TApply struct {
	Path []string
	Args []TypeExpr
}

// TArrow is a single (possibly labelled) function arrow.
type TArrow struct {
	Label Label
	From  TypeExpr
	To    TypeExpr
}

// TUnit is the unit type.
type TUnit struct{}

func (*TVar) typeExpr()   {}
func (*TApply) typeExpr() {}
func (*TArrow) typeExpr() {}
func (*TUnit) typeExpr()  {}
