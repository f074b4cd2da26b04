package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{Ctx: ctx}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "numlit").
		WithSynopsis("numlit [opts] command [opts]").
		WithDescription("numlit validates, parses and writes numeric literals under configurable grammars.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return numlitMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			ParseCommand(cfg),
			FormatCommand(cfg),
			ListCommand(cfg),
			FlagsCommand(cfg),
			RunCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-k kind] [text...]").
		WithDescription("check texts against the preset; reads lines from stdin without arguments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("parse").
		WithAliases("p").
		WithSynopsis("parse [-k kind] [-json] [text...]").
		WithDescription("parse texts and print their values or rejections").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parse(cfg, cc, args)
		})
	cfg.Parse = cmd
	return cmd
}

func FormatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("format").
		WithAliases("f", "fmt").
		WithSynopsis("format [-k kind] value...").
		WithDescription("write values in the preset's grammar").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
	cfg.Format = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("presets").
		WithAliases("ls", "list").
		WithSynopsis("presets [-json|-yaml]").
		WithDescription("list the registered presets").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func FlagsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlagsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("flags").
		WithSynopsis("flags").
		WithDescription("list grammar flags with their short codes").
		WithRun(func(cc *cli.Context, args []string) error {
			return flags(cfg, cc, args)
		})
	cfg.Flags = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithAliases("r", "vectors").
		WithSynopsis("run [-golden file [-update]] [-color] vectors...").
		WithDescription("run vector files and print a Markdown report").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}
