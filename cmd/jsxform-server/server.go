package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/veld-lang/jsxform/astjson"
	"github.com/veld-lang/jsxform/diag"
	"github.com/veld-lang/jsxform/jsx"
)

// Methods served over the connection.
const (
	methodTransform = "jsxform/transform"
	methodVersion   = "jsxform/version"
)

type Server struct {
	conn jsonrpc2.Conn
}

type transformParams struct {
	// Unit is the compilation unit to rewrite.
	Unit json.RawMessage `json:"unit"`
	// JSX preseeds the convention when the unit has no jsxConfig.
	JSX int `json:"jsx,omitempty"`
	// Positions keeps node positions in the returned unit.
	Positions bool `json:"positions,omitempty"`
}

type transformResult struct {
	Unit        json.RawMessage       `json:"unit,omitempty"`
	Diagnostics []protocol.Diagnostic `json:"diagnostics,omitempty"`
}

type versionResult struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case methodTransform:
		return s.transform(ctx, reply, req)
	case methodVersion:
		return reply(ctx, versionResult{Name: serverName, Version: version}, nil)
	}
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func (s *Server) transform(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params transformParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err))
	}
	opts, err := versionOpts(params.JSX)
	if err != nil {
		return reply(ctx, nil, err)
	}
	decls, err := astjson.DecodeUnit(params.Unit)
	if err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInvalidParams, err))
	}
	res, err := jsx.Transform(decls, opts...)
	if err != nil {
		// rewrite failures are results, not protocol errors
		return reply(ctx, transformResult{Diagnostics: diagnostics(err)}, nil)
	}
	out, err := astjson.EncodeUnit(res, astjson.WithPositions(params.Positions))
	if err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInternal, err))
	}
	return reply(ctx, transformResult{Unit: out}, nil)
}

func versionOpts(v int) ([]jsx.Option, error) {
	switch v {
	case 0:
		return nil, nil
	case 2:
		return []jsx.Option{jsx.WithVersion(jsx.Version2)}, nil
	case 3:
		return []jsx.Option{jsx.WithVersion(jsx.Version3)}, nil
	}
	return nil, fmt.Errorf("%w: jsx must be 2 or 3, got %d", jsonrpc2.ErrInvalidParams, v)
}

func diagnostics(err error) []protocol.Diagnostic {
	var de *diag.Error
	if errors.As(err, &de) {
		return []protocol.Diagnostic{diag.ToLSP(de)}
	}
	return []protocol.Diagnostic{{
		Severity: protocol.DiagnosticSeverityError,
		Source:   "jsxform",
		Message:  err.Error(),
	}}
}
