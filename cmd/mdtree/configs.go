package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/signadot/mdtree/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	YAML  bool `cli:"name=yaml aliases=y desc='output trees as yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Q string `cli:"name=q desc='expr predicate over element name/role/fields'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
