package ast

// CloneNode returns a deep copy of n. A nil node clones to nil.
func CloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	switch x := n.(type) {
	case *Ident:
		res := *x
		res.Path = append([]string(nil), x.Path...)
		return &res
	case *Call:
		res := *x
		res.Callee = CloneNode(x.Callee)
		res.Args = CloneArgs(x.Args)
		res.Attrs = CloneAttrs(x.Attrs)
		return &res
	case *Construct:
		res := *x
		res.Payload = cloneNodes(x.Payload)
		res.Attrs = CloneAttrs(x.Attrs)
		return &res
	case *ListLit:
		res := *x
		res.Elems = cloneNodes(x.Elems)
		res.Attrs = CloneAttrs(x.Attrs)
		return &res
	case *Func:
		res := *x
		res.Param = cloneParam(x.Param)
		res.Body = CloneNode(x.Body)
		return &res
	case *RecordLit:
		res := *x
		res.Fields = make([]RecField, len(x.Fields))
		for i, f := range x.Fields {
			res.Fields[i] = RecField{Name: f.Name, Value: CloneNode(f.Value)}
		}
		return &res
	case *FieldAccess:
		res := *x
		res.Expr = CloneNode(x.Expr)
		return &res
	case *LetIn:
		res := *x
		res.Value = CloneNode(x.Value)
		res.Body = CloneNode(x.Body)
		return &res
	case *StringLit:
		res := *x
		return &res
	case *IntLit:
		res := *x
		return &res
	}
	return n
}

func cloneNodes(ns []Node) []Node {
	if ns == nil {
		return nil
	}
	res := make([]Node, len(ns))
	for i, n := range ns {
		res[i] = CloneNode(n)
	}
	return res
}

// CloneArgs deep-copies an argument list.
func CloneArgs(args []Arg) []Arg {
	if args == nil {
		return nil
	}
	res := make([]Arg, len(args))
	for i, a := range args {
		res[i] = Arg{Label: a.Label, Value: CloneNode(a.Value)}
	}
	return res
}

// CloneAttrs deep-copies a marker list.
func CloneAttrs(attrs []Attr) []Attr {
	if attrs == nil {
		return nil
	}
	res := make([]Attr, len(attrs))
	for i, a := range attrs {
		res[i] = Attr{Name: a.Name, Payload: CloneNode(a.Payload), Span: a.Span}
	}
	return res
}

func cloneParam(p Param) Param {
	res := p
	if p.Pattern != nil {
		pat := *p.Pattern
		res.Pattern = &pat
	}
	res.Default = CloneNode(p.Default)
	return res
}

// CloneDecl returns a deep copy of d.
func CloneDecl(d Decl) Decl {
	if d == nil {
		return nil
	}
	switch x := d.(type) {
	case *ValueGroup:
		res := *x
		res.Bindings = make([]*Binding, len(x.Bindings))
		for i, b := range x.Bindings {
			bb := *b
			if b.Pattern != nil {
				pat := *b.Pattern
				bb.Pattern = &pat
			}
			bb.Expr = CloneNode(b.Expr)
			bb.Attrs = CloneAttrs(b.Attrs)
			res.Bindings[i] = &bb
		}
		return &res
	case *TypeDecl:
		res := *x
		res.Vars = append([]string(nil), x.Vars...)
		res.Fields = append([]TypeField(nil), x.Fields...)
		return &res
	case *External:
		res := *x
		res.Prim = append([]string(nil), x.Prim...)
		res.Attrs = CloneAttrs(x.Attrs)
		return &res
	case *AttrDecl:
		res := *x
		res.Attr = Attr{Name: x.Attr.Name, Payload: CloneNode(x.Attr.Payload), Span: x.Attr.Span}
		return &res
	}
	return d
}
