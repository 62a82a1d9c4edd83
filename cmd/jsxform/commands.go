package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: "  "}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jsxform").
		WithSynopsis("jsxform [opts] command [opts]").
		WithDescription("jsxform rewrites markup-marked units into runtime element calls.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsxformMain(cfg, cc, args)
		}).
		WithSubs(
			TransformCommand(cfg),
			DiffCommand(cfg),
			ListCommand(cfg))
}

func TransformCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TransformConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Transform, "transform").
		WithAliases("t", "tr").
		WithSynopsis("transform [opts] [files]").
		WithDescription("rewrite markup and expand components in units").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return transform(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] [files]").
		WithDescription("show what the rewrite changes in each unit").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [opts] [files]").
		WithDescription("list unit bindings with their markers").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}
