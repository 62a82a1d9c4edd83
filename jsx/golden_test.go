package jsx

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/tools/txtar"

	"github.com/veld-lang/jsxform/astjson"
)

// TestGolden runs whole-unit fixtures: each testdata archive holds an
// input unit and the unit the transform should produce.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden fixtures found")
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var input, want []byte
			for _, f := range ar.Files {
				switch f.Name {
				case "input.json":
					input = f.Data
				case "want.json":
					want = f.Data
				}
			}
			if input == nil || want == nil {
				t.Fatal("fixture needs input.json and want.json")
			}

			decls, err := astjson.DecodeUnit(input)
			if err != nil {
				t.Fatalf("decode input: %v", err)
			}
			got, err := Transform(decls)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			wantDecls, err := astjson.DecodeUnit(want)
			if err != nil {
				t.Fatalf("decode want: %v", err)
			}
			if d := cmp.Diff(wantDecls, got, cmpopts.EquateEmpty()); d != "" {
				t.Errorf("unit mismatch (-want +got):\n%s", d)
			}
		})
	}
}
