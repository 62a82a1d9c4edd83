package jsx

import (
	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/debug"
	"github.com/veld-lang/jsxform/diag"
)

// Entry-point names recognized as user-component constructors. The
// two are synonyms.
func isEntryPoint(seg string) bool {
	return seg == "createElement" || seg == "make"
}

// dispatchMarkup routes a markup call to the plain-tag or
// user-component transform based on its callee shape.
func (p *pass) dispatchMarkup(call *ast.Call) (ast.Node, error) {
	ident, ok := call.Callee.(*ast.Ident)
	if !ok {
		return nil, diag.Errorf(call.Callee.Pos(), ErrCalleeShape,
			"markup callee must be a name or qualified path")
	}
	path := ident.Path
	if len(path) == 0 {
		return nil, diag.Errorf(ident.Pos(), ErrCalleeShape,
			"markup callee must be a name or qualified path")
	}
	if debug.Dispatch() {
		debug.Logf("jsxform: dispatch %s (%s)\n", ast.PathString(path), p.version.effective())
	}
	if len(path) == 1 {
		if isEntryPoint(path[0]) {
			return nil, diag.Errorf(ident.Pos(), ErrMissingQualifier,
				"%s requires a module qualifier", path[0])
		}
		return p.transformTag(call, path[0])
	}
	last := path[len(path)-1]
	if !isEntryPoint(last) {
		return nil, diag.Errorf(ident.Pos(), ErrWrongEntryPoint,
			"%s is not a component entry point", last)
	}
	if p.version.effective() == Version3 {
		return p.transformComponentV3(call, path)
	}
	return p.transformComponentV2(call, path)
}
