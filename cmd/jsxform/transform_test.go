package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

const testUnit = `{"decls":[{"kind":"valueGroup","bindings":[{
	"pattern":{"kind":"var","name":"view"},
	"expr":{
		"kind":"call",
		"callee":{"kind":"ident","path":["div"]},
		"args":[{"label":{"kind":"positional"},"value":{"kind":"construct","name":"()"}}],
		"attrs":[{"name":"jsx"}]
	}}]}]}`

const testUnitYAML = `decls:
  - kind: valueGroup
    bindings:
      - pattern: {kind: var, name: view}
        expr:
          kind: call
          callee: {kind: ident, path: [div]}
          args:
            - label: {kind: positional}
              value: {kind: construct, name: "()"}
          attrs:
            - name: jsx
`

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTransformUnit(t *testing.T) {
	cfg := &TransformConfig{MainConfig: &MainConfig{Indent: "  "}}
	file := writeTemp(t, "unit.json", testUnit)
	out, err := transformUnit(cfg, &cli.Context{}, nil, file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "ReactDOMRe") {
		t.Errorf("output = %s", out)
	}
	if strings.Contains(string(out), `"jsx"`) {
		t.Error("markup marker survived the rewrite")
	}
}

func TestTransformUnitYAML(t *testing.T) {
	cfg := &TransformConfig{MainConfig: &MainConfig{Y: true, Indent: "  "}}
	file := writeTemp(t, "unit.yaml", testUnitYAML)
	out, err := transformUnit(cfg, &cli.Context{}, nil, file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "ReactDOMRe") {
		t.Errorf("output = %s", out)
	}
}

func TestTransformUnitVersionFlag(t *testing.T) {
	cfg := &TransformConfig{MainConfig: &MainConfig{JSX: 3, Indent: "  "}}
	file := writeTemp(t, "unit.json", testUnit)
	out, err := transformUnit(cfg, &cli.Context{}, nil, file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "ReactDOM") || strings.Contains(string(out), "ReactDOMRe") {
		t.Errorf("output = %s", out)
	}
}

func TestTransformUnitWithPatch(t *testing.T) {
	// retag the element before rewriting
	patchDoc := `[{"op":"replace","path":"/decls/0/bindings/0/expr/callee/path/0","value":"span"}]`
	patch, err := loadPatch(writeTemp(t, "patch.json", patchDoc))
	if err != nil {
		t.Fatal(err)
	}
	cfg := &TransformConfig{MainConfig: &MainConfig{Indent: "  "}}
	file := writeTemp(t, "unit.json", testUnit)
	out, err := transformUnit(cfg, &cli.Context{}, patch, file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"span"`) {
		t.Errorf("output = %s", out)
	}
}

func TestVersionFlagValidation(t *testing.T) {
	cfg := &MainConfig{JSX: 7}
	if _, err := cfg.version(); err == nil {
		t.Fatal("jsx 7 accepted")
	}
}
