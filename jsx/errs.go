package jsx

import (
	"errors"

	"github.com/veld-lang/jsxform/ast"
)

// Failure kinds. Every transform failure wraps one of these sentinels
// in a *diag.Error carrying the offending node's span; any failure
// aborts the whole-unit pass.
var (
	ErrMultipleChildren     = errors.New("multiple children arguments")
	ErrPositionalBeforeLast = errors.New("positional argument before last")
	ErrMissingQualifier     = errors.New("missing module qualifier")
	ErrWrongEntryPoint      = errors.New("wrong entry point")
	ErrCalleeShape          = errors.New("unsupported callee shape")
	ErrSpreadWithArray      = errors.New("children spread next to array literal")
	ErrSpreadWithMarkup     = errors.New("children spread next to markup element")
	ErrComponentTarget      = errors.New("invalid component target")
	ErrVersionNumber        = errors.New("invalid jsx version")
	ErrConfigShape          = errors.New("invalid jsx config shape")
	ErrSequenceShape        = errors.New("malformed sequence encoding")
)

// posOr returns n's span, using fallback when the wire input left the
// node unset.
func posOr(n ast.Node, fallback ast.Pos) ast.Pos {
	if n == nil {
		return fallback
	}
	return n.Pos()
}
