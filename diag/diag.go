// Package diag carries rewriter failures as message+location pairs.
// Rendering is left to the caller; ToLSP converts a failure to the
// LSP diagnostic shape for host integrations speaking JSON-RPC.
package diag

import (
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/veld-lang/jsxform/ast"
)

// Error is a fatal rewriter diagnostic. Err is the sentinel for the
// failure kind, Pos the span of the offending node.
type Error struct {
	Err error
	Pos ast.Pos
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsZero() {
		return e.Msg
	}
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error for the node at pos, classified by sentinel.
func Errorf(pos ast.Pos, sentinel error, format string, args ...any) *Error {
	return &Error{
		Err: sentinel,
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	}
}

// ToLSP converts e to an LSP diagnostic.
func ToLSP(e *Error) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(e.Pos.StartLine),
				Character: uint32(e.Pos.StartCol),
			},
			End: protocol.Position{
				Line:      uint32(e.Pos.EndLine),
				Character: uint32(e.Pos.EndCol),
			},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "jsxform",
		Message:  e.Msg,
	}
}
