// Package textdump writes a score as an indented outline, one node per line.
package textdump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"moria.us/niffty/score"
)

// Colors holds the formatting functions for each kind of line.
type Colors struct {
	Section func(string, ...any) string
	Slice   func(string, ...any) string
	Symbol  func(string, ...any) string
}

func enabled(attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintfFunc()
}

// NewColors returns terminal colors. They are used even when the color
// package has decided the output is not a terminal.
func NewColors() *Colors {
	return &Colors{
		Section: enabled(color.FgBlue, color.Bold),
		Slice:   enabled(color.FgYellow),
		Symbol:  enabled(color.FgGreen),
	}
}

type printer struct {
	w      *bufio.Writer
	colors *Colors
	depth  int
}

type kind int

const (
	plain kind = iota
	section
	slice
	symbol
)

// line writes text at the current depth, coloring the node name which
// precedes the first comma.
func (p *printer) line(k kind, text string) {
	p.w.WriteString(strings.Repeat(" ", p.depth))
	var paint func(string, ...any) string
	if c := p.colors; c != nil {
		switch k {
		case section:
			paint = c.Section
		case slice:
			paint = c.Slice
		case symbol:
			paint = c.Symbol
		}
	}
	if paint != nil {
		name, rest := text, ""
		if i := strings.Index(text, ", "); i >= 0 {
			name, rest = text[:i], text[i:]
		}
		text = paint("%s", name) + rest
	}
	p.w.WriteString(text)
	p.w.WriteByte('\n')
}

func (p *printer) indent(f func()) {
	p.depth++
	f()
	p.depth--
}

// Write writes the outline of a score. If colors is nil, the output is plain
// text.
func Write(w io.Writer, s *score.Score, colors *Colors) error {
	p := printer{w: bufio.NewWriter(w), colors: colors}
	p.line(section, "NIFF Score")
	p.indent(func() {
		p.setup(s.Setup())
		p.data(s.Data())
	})
	return p.w.Flush()
}

func (p *printer) setup(s *score.Setup) {
	p.line(section, "Setup")
	p.indent(func() {
		p.line(section, "Chunk-length-table")
		p.indent(func() {
			for _, e := range s.ChunkLengths {
				p.line(plain, fmt.Sprintf("%q=%d", e.ID, e.Length))
			}
		})
		p.line(plain, s.Info.String())
		p.line(section, fmt.Sprintf("Parts list, parts=%d", s.PartCount))
		if n := len(s.Strings); n > 0 {
			p.line(section, fmt.Sprintf("String-table, size=%d", n))
		}
	})
}

func (p *printer) data(d *score.Data) {
	p.line(section, "Data")
	p.indent(func() {
		for i := 0; i < d.PageCount(); i++ {
			p.page(d.Page(i))
		}
	})
}

func (p *printer) page(pg *score.Page) {
	p.line(section, "Page")
	p.indent(func() {
		p.line(plain, pg.Header().String())
		for i := 0; i < pg.SystemCount(); i++ {
			sys := pg.System(i)
			p.line(section, "System")
			p.indent(func() {
				p.line(plain, sys.Header().String())
				for j := 0; j < sys.StaffCount(); j++ {
					p.staff(sys.Staff(j))
				}
			})
		}
	})
}

func (p *printer) staff(st *score.Staff) {
	p.line(section, "Staff")
	p.indent(func() {
		p.line(plain, st.Header().String())
		for i := 0; i < st.MeasureStartCount(); i++ {
			m := st.MeasureStart(i)
			p.line(slice, m.String())
			p.indent(func() {
				for j := 0; j < m.TimeSliceCount(); j++ {
					ts := m.TimeSlice(j)
					p.line(slice, ts.String())
					p.indent(func() {
						for k := 0; k < ts.SymbolCount(); k++ {
							p.line(symbol, ts.Symbol(k).String())
						}
					})
				}
			})
		}
	})
}
