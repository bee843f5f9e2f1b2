package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/mdtree/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	o1, err := outline(args[0])
	if err != nil {
		return err
	}
	o2, err := outline(args[1])
	if err != nil {
		return err
	}
	if o1 == o2 {
		return nil
	}

	dmp := diffpatch.New()
	c1, c2, lineArr := dmp.DiffLinesToChars(o1, o2)
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArr)
	useColor := len(cfg.encOpts(cc.Out)) > 0
	for _, d := range diffs {
		prefix, colorize := "  ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, colorize = "- ", color.RedString
		case diffpatch.DiffInsert:
			prefix, colorize = "+ ", color.GreenString
		}
		for line := range strings.Lines(d.Text) {
			out := prefix + strings.TrimSuffix(line, "\n")
			if useColor {
				out = colorize("%s", out)
			}
			if _, err := fmt.Fprintln(cc.Out, out); err != nil {
				return err
			}
		}
	}
	return cli.ExitCodeErr(1)
}

// outline renders a file's tree uncolored so the diff operates on
// stable text.
func outline(file string) (string, error) {
	root, err := readTreeFile(file)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := encode.Encode(root, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
