package main

import (
	"context"
	"strings"
	"testing"

	"go.lsp.dev/jsonrpc2"
)

func callServer(t *testing.T, method string, params any) (any, error) {
	t.Helper()
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), method, params)
	if err != nil {
		t.Fatal(err)
	}
	var (
		result   any
		replyErr error
		replied  bool
	)
	reply := func(_ context.Context, res any, err error) error {
		replied = true
		result, replyErr = res, err
		return nil
	}
	s := &Server{}
	if err := s.handle(context.Background(), reply, req); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !replied {
		t.Fatal("handler did not reply")
	}
	return result, replyErr
}

func TestTransformMethod(t *testing.T) {
	unit := `{"decls":[{"kind":"valueGroup","bindings":[{
		"pattern":{"kind":"var","name":"view"},
		"expr":{
			"kind":"call",
			"callee":{"kind":"ident","path":["div"]},
			"args":[{"label":{"kind":"positional"},"value":{"kind":"construct","name":"()"}}],
			"attrs":[{"name":"jsx"}]
		}}]}]}`
	res, err := callServer(t, methodTransform, transformParams{Unit: []byte(unit)})
	if err != nil {
		t.Fatal(err)
	}
	tr := res.(transformResult)
	if len(tr.Diagnostics) != 0 {
		t.Fatalf("diagnostics = %+v", tr.Diagnostics)
	}
	if !strings.Contains(string(tr.Unit), "ReactDOMRe") {
		t.Errorf("unit = %s", tr.Unit)
	}
}

func TestTransformMethodDiagnostics(t *testing.T) {
	unit := `{"decls":[{"kind":"valueGroup","bindings":[{
		"pattern":{"kind":"var","name":"view"},
		"expr":{
			"kind":"call",
			"callee":{"kind":"ident","path":["createElement"],"pos":{"startLine":4,"startCol":2,"endLine":4,"endCol":15}},
			"args":[{"label":{"kind":"positional"},"value":{"kind":"construct","name":"()"}}],
			"attrs":[{"name":"jsx"}]
		}}]}]}`
	res, err := callServer(t, methodTransform, transformParams{Unit: []byte(unit)})
	if err != nil {
		t.Fatal(err)
	}
	tr := res.(transformResult)
	if tr.Unit != nil {
		t.Error("failed rewrite should not return a unit")
	}
	if len(tr.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %+v", tr.Diagnostics)
	}
	d := tr.Diagnostics[0]
	if d.Range.Start.Line != 4 || d.Range.Start.Character != 2 {
		t.Errorf("range = %+v", d.Range)
	}
	if !strings.Contains(d.Message, "qualifier") {
		t.Errorf("message = %q", d.Message)
	}
}

func TestTransformMethodBadVersion(t *testing.T) {
	if _, err := callServer(t, methodTransform, transformParams{Unit: []byte(`{"decls":[]}`), JSX: 5}); err == nil {
		t.Fatal("jsx 5 accepted")
	}
}

func TestVersionMethod(t *testing.T) {
	res, err := callServer(t, methodVersion, nil)
	if err != nil {
		t.Fatal(err)
	}
	v := res.(versionResult)
	if v.Name != serverName || v.Version == "" {
		t.Errorf("version = %+v", v)
	}
}
