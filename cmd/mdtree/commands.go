package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "mdtree").
		WithSynopsis("mdtree [opts] command [opts]").
		WithDescription("mdtree is a tool for working with Markdown document trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mdtreeMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg))
}

func mdtreeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("parse markdown files and dump their document trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select -q <predicate> [files]").
		WithDescription("dump the subtrees whose elements match a predicate").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return selectNodes(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the document trees of two markdown files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
