package svg

import (
	"fmt"

	"moria.us/niffty/score"
)

// Options control the SVG page.
type Options struct {
	Margin     int    `yaml:"margin"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Stroke     string `yaml:"stroke"`
	FontFamily string `yaml:"fontFamily"`
	FontSize   int    `yaml:"fontSize"`
}

// DefaultOptions returns options that fit the default score layout.
func DefaultOptions() Options {
	return Options{
		Margin:     10,
		Width:      660,
		Height:     860,
		Stroke:     "black",
		FontFamily: "serif",
		FontSize:   10,
	}
}

// RenderPage draws a page of a score as a standalone SVG document.
func RenderPage(p *score.Page, o Options) ([]byte, error) {
	w, err := NewWriter(nil)
	if err != nil {
		return nil, err
	}
	w.OpenTag("svg")
	w.Attr("xmlns", "http://www.w3.org/2000/svg")
	w.AttrInt("width", o.Width)
	w.AttrInt("height", o.Height)
	w.Attr("viewBox", fmt.Sprintf("%d %d %d %d", -o.Margin, -o.Margin, o.Width, o.Height))
	w.OpenTag("g")
	w.Attr("stroke", o.Stroke)
	w.Attr("stroke-width", "1")
	w.Attr("fill", "none")
	w.Attr("font-family", o.FontFamily)
	w.AttrInt("font-size", o.FontSize)
	c := NewCanvas(w)
	c.TextFill = o.Stroke
	p.Draw(c)
	w.CloseTag("g")
	w.CloseTag("svg")
	return w.Finish()
}

// Render draws every page of a score.
func Render(s *score.Score, o Options) ([][]byte, error) {
	d := s.Data()
	pages := make([][]byte, d.PageCount())
	for i := range pages {
		b, err := RenderPage(d.Page(i), o)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		pages[i] = b
	}
	return pages, nil
}
