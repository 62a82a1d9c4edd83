package jsx

import (
	"testing"

	"github.com/veld-lang/jsxform/ast"
)

func TestRewriteIdentityPreservesNilSlices(t *testing.T) {
	p := &pass{}
	tests := []struct {
		name string
		in   ast.Node
	}{
		{"construct", ast.Unit()},
		{"call", call(ident("f"))},
		{"list", &ast.ListLit{}},
		{"record", &ast.RecordLit{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRewrite(t, p, tt.in)
			diffNodes(t, tt.in, out)
			switch x := out.(type) {
			case *ast.Construct:
				if x.Payload != nil {
					t.Errorf("Payload = %#v, want nil", x.Payload)
				}
			case *ast.Call:
				if x.Args != nil {
					t.Errorf("Args = %#v, want nil", x.Args)
				}
			case *ast.ListLit:
				if x.Elems != nil {
					t.Errorf("Elems = %#v, want nil", x.Elems)
				}
			case *ast.RecordLit:
				if x.Fields != nil {
					t.Errorf("Fields = %#v, want nil", x.Fields)
				}
			}
		})
	}
}
