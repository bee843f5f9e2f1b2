package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/mdtree/query"
)

func selectNodes(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Q == "" {
		return fmt.Errorf("%w: select requires -q <predicate>", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Q)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		root, err := readTreeFile(file)
		if err != nil {
			return err
		}
		nodes, err := query.Select(root, q)
		if err != nil {
			return err
		}
		for i, n := range nodes {
			if i > 0 {
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
			if err := writeTree(cfg.MainConfig, cc.Out, n); err != nil {
				return err
			}
		}
	}
	return nil
}
