package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"moria.us/niffty/export"
	"moria.us/niffty/textdump"
)

// dumpColors returns the colors for the given --color mode.
func dumpColors(mode string, w io.Writer) (*textdump.Colors, error) {
	switch mode {
	case "always":
		return textdump.NewColors(), nil
	case "never":
		return nil, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return nil, nil
		}
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return textdump.NewColors(), nil
		}
		return nil, nil
	}
	return nil, fmt.Errorf("invalid color mode %q, must be auto, always, or never", mode)
}

func newDumpCommand(g *globalFlags) *cobra.Command {
	var (
		asJSON bool
		color  string
	)
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the score tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colors, err := dumpColors(color, out)
			if err != nil {
				return err
			}
			s, _, err := g.loadScore(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				data, err := export.JSON(s)
				if err != nil {
					return err
				}
				data = append(data, '\n')
				_, err = out.Write(data)
				return err
			}
			return textdump.Write(out, s, colors)
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&asJSON, "json", false, "print the tree as JSON, with hotspots")
	fl.StringVar(&color, "color", "auto", "color the output: auto, always, or never")
	return cmd
}
