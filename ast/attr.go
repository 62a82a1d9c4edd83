package ast

// Marker attribute names recognized by the rewriter. Any other
// attribute is opaque pass-through annotation.
const (
	MarkupAttr        = "jsx"
	ComponentAttr     = "component"
	ComponentNameAttr = "componentName"
	ConfigAttr        = "jsxConfig"
)

// Attr is a named marker with an optional payload, attached to calls,
// list literals, bindings and declarations.
type Attr struct {
	Name    string
	Payload Node
	Span    Pos
}

// HasAttr reports whether attrs contains a marker named name.
func HasAttr(attrs []Attr, name string) bool {
	for i := range attrs {
		if attrs[i].Name == name {
			return true
		}
	}
	return false
}

// GetAttr returns the first marker named name, or nil.
func GetAttr(attrs []Attr, name string) *Attr {
	for i := range attrs {
		if attrs[i].Name == name {
			return &attrs[i]
		}
	}
	return nil
}

// RemoveAttr returns attrs without any marker named name, preserving
// the order of the rest. The input slice is not modified.
func RemoveAttr(attrs []Attr, name string) []Attr {
	var res []Attr
	for _, a := range attrs {
		if a.Name == name {
			continue
		}
		res = append(res, a)
	}
	return res
}
