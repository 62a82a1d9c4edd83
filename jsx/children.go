package jsx

import (
	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/debug"
	"github.com/veld-lang/jsxform/diag"
)

// extractChildren partitions a markup call's arguments into the
// children value and the remaining arguments, preserving the relative
// order of the rest. With no children argument the result is the
// canonical empty sequence. stripTrailingUnit additionally drops the
// mandatory final unit argument and requires every other remaining
// argument to be labelled.
func extractChildren(args []ast.Arg, stripTrailingUnit bool) (ast.Node, []ast.Arg, error) {
	var (
		children ast.Node
		seen     bool
		rest     []ast.Arg
	)
	for _, a := range args {
		if a.Label.IsLabelled() && a.Label.Name == "children" {
			if seen {
				return nil, nil, diag.Errorf(posOr(a.Value, ast.Pos{}), ErrMultipleChildren,
					"only one children argument is allowed")
			}
			children, seen = a.Value, true
			continue
		}
		rest = append(rest, a)
	}
	if !seen || children == nil {
		children = ast.NilSeq()
	}
	if debug.Children() {
		debug.Logf("jsxform: extracted children from %d args (strip=%v)\n", len(args), stripTrailingUnit)
	}
	if !stripTrailingUnit {
		return children, rest, nil
	}
	for i, a := range rest {
		if i < len(rest)-1 {
			if !a.Label.IsLabelled() {
				return nil, nil, diag.Errorf(posOr(a.Value, ast.Pos{}), ErrPositionalBeforeLast,
					"positional argument is allowed only as the final ()")
			}
			continue
		}
		if a.Label.IsLabelled() || !ast.IsUnit(a.Value) {
			return nil, nil, diag.Errorf(posOr(a.Value, ast.Pos{}), ErrPositionalBeforeLast,
				"last argument must be ()")
		}
	}
	if len(rest) > 0 {
		rest = rest[:len(rest)-1]
	}
	return children, rest, nil
}
