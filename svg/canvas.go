// Package svg draws scores as SVG documents.
package svg

import (
	"math"
	"strconv"
	"strings"

	"moria.us/niffty/score"
)

// A Canvas is a score.Graphics that writes each primitive as an SVG element.
// Stroke and font attributes are inherited from the enclosing group.
type Canvas struct {
	w      *Writer
	dx, dy int

	// TextFill is the fill color of text elements.
	TextFill string
}

var _ score.Graphics = (*Canvas)(nil)

// NewCanvas returns a canvas writing to w, which must have an open element.
func NewCanvas(w *Writer) *Canvas {
	return &Canvas{w: w}
}

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 int) {
	w := c.w
	w.OpenTag("line")
	w.AttrInt("x1", x1+c.dx)
	w.AttrInt("y1", y1+c.dy)
	w.AttrInt("x2", x2+c.dx)
	w.AttrInt("y2", y2+c.dy)
	w.CloseTag("line")
}

func (c *Canvas) DrawPolyline(xs, ys []int, n int) {
	n = min(n, len(xs), len(ys))
	if n <= 0 {
		return
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(xs[i] + c.dx))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(ys[i] + c.dy))
	}
	w := c.w
	w.OpenTag("polyline")
	w.Attr("points", b.String())
	w.CloseTag("polyline")
}

func (c *Canvas) DrawString(text string, x, y int) {
	w := c.w
	w.OpenTag("text")
	w.AttrInt("x", x+c.dx)
	w.AttrInt("y", y+c.dy)
	if c.TextFill != "" {
		w.Attr("fill", c.TextFill)
	}
	w.Text(text)
	w.CloseTag("text")
}

func (c *Canvas) Translate(dx, dy int) {
	c.dx += dx
	c.dy += dy
}

// DrawArc draws part of the ellipse inscribed in the rectangle at (x, y).
// Angles are in degrees, counterclockwise from three o'clock.
func (c *Canvas) DrawArc(x, y, width, height, startAngle, arcAngle int) {
	if arcAngle == 0 || width <= 0 || height <= 0 {
		return
	}
	rx, ry := float64(width)/2, float64(height)/2
	cx, cy := float64(x+c.dx)+rx, float64(y+c.dy)+ry
	w := c.w
	if arcAngle >= 360 || arcAngle <= -360 {
		w.OpenTag("ellipse")
		w.Attr("cx", num(cx))
		w.Attr("cy", num(cy))
		w.Attr("rx", num(rx))
		w.Attr("ry", num(ry))
		w.CloseTag("ellipse")
		return
	}
	point := func(deg int) (float64, float64) {
		a := float64(deg) * math.Pi / 180
		return cx + rx*math.Cos(a), cy - ry*math.Sin(a)
	}
	x0, y0 := point(startAngle)
	x1, y1 := point(startAngle + arcAngle)
	large, sweep := "0", "0"
	if arcAngle > 180 || arcAngle < -180 {
		large = "1"
	}
	// Counterclockwise on screen is the negative direction in SVG.
	if arcAngle < 0 {
		sweep = "1"
	}
	d := strings.Join([]string{
		"M", num(x0), num(y0),
		"A", num(rx), num(ry), "0", large, sweep, num(x1), num(y1),
	}, " ")
	w.OpenTag("path")
	w.Attr("d", d)
	w.CloseTag("path")
}
