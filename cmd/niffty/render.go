package main

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"moria.us/niffty/svg"
)

func pageName(n int) string {
	return fmt.Sprintf("page-%d.svg", n)
}

func writeZip(filename string, pages [][]byte, first int) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(fp)
	for i, p := range pages {
		w, err := zw.Create(pageName(first + i))
		if err != nil {
			fp.Close()
			return err
		}
		if _, err := w.Write(p); err != nil {
			fp.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// renderFlags override the render section of the configuration.
type renderFlags struct {
	margin, width, height int
	stroke                string
}

func (f *renderFlags) define(fl *pflag.FlagSet) {
	d := svg.DefaultOptions()
	fl.IntVar(&f.margin, "margin", d.Margin, "page margin")
	fl.IntVar(&f.width, "width", d.Width, "page width")
	fl.IntVar(&f.height, "height", d.Height, "page height")
	fl.StringVar(&f.stroke, "stroke", d.Stroke, "stroke and text color")
}

func (f *renderFlags) apply(fl *pflag.FlagSet, o *svg.Options) {
	if fl.Changed("margin") {
		o.Margin = f.margin
	}
	if fl.Changed("width") {
		o.Width = f.width
	}
	if fl.Changed("height") {
		o.Height = f.height
	}
	if fl.Changed("stroke") {
		o.Stroke = f.stroke
	}
}

func newRenderCommand(g *globalFlags) *cobra.Command {
	var (
		outDir  string
		zipName string
		page    int
		rf      renderFlags
	)
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw each page of the score as an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := g.loadScore(args[0])
			if err != nil {
				return err
			}
			rf.apply(cmd.Flags(), &cfg.Render)
			var pages [][]byte
			first := 1
			if page != 0 {
				n := s.Data().PageCount()
				if page < 1 || page > n {
					return fmt.Errorf("page %d out of range, score has %d pages", page, n)
				}
				p, err := svg.RenderPage(s.Data().Page(page-1), cfg.Render)
				if err != nil {
					return err
				}
				pages = [][]byte{p}
				first = page
			} else {
				pages, err = svg.Render(s, cfg.Render)
				if err != nil {
					return err
				}
			}
			if zipName != "" {
				if err := writeZip(zipName, pages, first); err != nil {
					return err
				}
				logrus.Infoln("Output:", zipName)
				return nil
			}
			if err := os.MkdirAll(outDir, 0777); err != nil {
				return err
			}
			for i, p := range pages {
				name := filepath.Join(outDir, pageName(first+i))
				if err := os.WriteFile(name, p, 0666); err != nil {
					return err
				}
				logrus.Infoln("Output:", name)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&outDir, "output", "o", ".", "directory for the SVG files")
	fl.StringVar(&zipName, "zip", "", "write the pages to a zip archive instead")
	fl.IntVar(&page, "page", 0, "render only this page, counting from 1")
	rf.define(fl)
	return cmd
}
