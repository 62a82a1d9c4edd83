package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/veld-lang/jsxform/ast"
	"github.com/veld-lang/jsxform/astjson"
	"github.com/veld-lang/jsxform/jsx"
)

type MainConfig struct {
	Y      bool   `cli:"name=y aliases=yaml desc='read units as yaml'"`
	Pos    bool   `cli:"name=pos desc='keep node positions in output'"`
	Indent string `cli:"name=indent desc='output indentation (default two spaces)'"`
	JSX    int    `cli:"name=jsx desc='convention when the unit has no jsxConfig: 2 or 3'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) version() (jsx.Version, error) {
	switch cfg.JSX {
	case 0:
		return jsx.VersionUnset, nil
	case 2:
		return jsx.Version2, nil
	case 3:
		return jsx.Version3, nil
	}
	return 0, fmt.Errorf("%w: -jsx must be 2 or 3, got %d", cli.ErrUsage, cfg.JSX)
}

func (cfg *MainConfig) transformOpts() ([]jsx.Option, error) {
	v, err := cfg.version()
	if err != nil {
		return nil, err
	}
	if v == jsx.VersionUnset {
		return nil, nil
	}
	return []jsx.Option{jsx.WithVersion(v)}, nil
}

func (cfg *MainConfig) encOpts() []astjson.EncodeOption {
	return []astjson.EncodeOption{
		astjson.WithPositions(cfg.Pos),
		astjson.Indent(cfg.Indent),
	}
}

// readUnit reads one unit's raw bytes, converting from YAML when
// configured.
func (cfg *MainConfig) readUnit(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	if cfg.Y {
		j, err := yaml.YAMLToJSON(in)
		if err != nil {
			return nil, fmt.Errorf("error converting %s from yaml: %w", file, err)
		}
		in = j
	}
	return in, nil
}

// decodeUnit reads and decodes one unit.
func (cfg *MainConfig) decodeUnit(cc *cli.Context, file string) ([]ast.Decl, error) {
	in, err := cfg.readUnit(cc, file)
	if err != nil {
		return nil, err
	}
	decls, err := astjson.DecodeUnit(in)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return decls, nil
}

// orStdin makes an empty file list mean stdin.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type TransformConfig struct {
	*MainConfig

	Patch string `cli:"name=patch desc='JSON patch file applied to each unit before rewriting'"`

	Transform *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force colored output'"`

	Diff *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='expression filtering bindings, e.g. kind == \"component\"'"`

	List *cli.Command
}
