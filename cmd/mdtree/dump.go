package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/mdtree"
	"github.com/signadot/mdtree/encode"
	"github.com/signadot/mdtree/gmast"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		root, err := readTree(cc.In)
		if err != nil {
			return err
		}
		return writeTree(cfg.MainConfig, cc.Out, root)
	}
	for i, file := range args {
		root, err := readTreeFile(file)
		if err != nil {
			return err
		}
		if err := writeTree(cfg.MainConfig, cc.Out, root); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func readTreeFile(file string) (*mdtree.Node[mdtree.Empty], error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	root, err := readTree(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return root, nil
}

func readTree(r io.Reader) (*mdtree.Node[mdtree.Empty], error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	root, err := gmast.FromMarkdown(in)
	if err != nil {
		return nil, fmt.Errorf("error importing markdown: %w", err)
	}
	return root, nil
}

func writeTree(cfg *MainConfig, w io.Writer, root *mdtree.Node[mdtree.Empty]) error {
	if cfg.YAML {
		d, err := encode.ToYAML(root)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return encode.Encode(root, w, cfg.encOpts(w)...)
}
