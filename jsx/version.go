package jsx

import (
	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/debug"
	"github.com/veld-lang/jsxform/diag"
)

// Version selects between the two output conventions. The zero value
// means "not configured"; transforms treat it as Version2.
type Version int

const (
	VersionUnset Version = iota
	Version2
	Version3
)

func (v Version) String() string {
	switch v {
	case VersionUnset:
		return "unset"
	case Version2:
		return "v2"
	case Version3:
		return "v3"
	}
	return "<unknown version>"
}

// effective resolves the unset default.
func (v Version) effective() Version {
	if v == VersionUnset {
		return Version2
	}
	return v
}

// applyConfig consumes a file-level jsxConfig attribute declaration.
// It sets the pass version from the record's "jsx" field (2 or 3) and
// returns the declaration to re-emit: the same declaration with the
// jsx field removed, or nil when the record becomes empty.
func (p *pass) applyConfig(d *ast.AttrDecl) (ast.Decl, error) {
	rec, ok := d.Attr.Payload.(*ast.RecordLit)
	if !ok {
		return nil, diag.Errorf(d.Pos(), ErrConfigShape,
			"jsxConfig expects a record payload")
	}
	var (
		kept     []ast.RecField
		consumed bool
	)
	for _, f := range rec.Fields {
		if f.Name != "jsx" {
			kept = append(kept, f)
			continue
		}
		lit, ok := f.Value.(*ast.IntLit)
		if !ok {
			return nil, diag.Errorf(f.Value.Pos(), ErrVersionNumber,
				"jsx version must be an integer literal")
		}
		switch lit.Value {
		case 2:
			p.version = Version2
		case 3:
			p.version = Version3
		default:
			return nil, diag.Errorf(lit.Pos(), ErrVersionNumber,
				"jsx version must be 2 or 3, got %d", lit.Value)
		}
		consumed = true
		if debug.Version() {
			debug.Logf("jsxform: version set to %s\n", p.version)
		}
	}
	if !consumed {
		return d, nil
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return &ast.AttrDecl{
		Attr: ast.Attr{
			Name:    d.Attr.Name,
			Payload: &ast.RecordLit{Fields: kept, Span: rec.Span},
			Span:    d.Attr.Span,
		},
		Span: d.Span,
	}, nil
}
