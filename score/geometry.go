package score

import "fmt"

// A Point is an absolute position in screen units.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Graphics receives drawing primitives. Coordinates are screen units,
// offset by the sum of all outstanding Translate calls.
type Graphics interface {
	DrawArc(x, y, width, height, startAngle, arcAngle int)
	DrawLine(x1, y1, x2, y2 int)
	DrawString(text string, x, y int)
	Translate(dx, dy int)
	// DrawPolyline connects the first n points. It does not close the
	// figure.
	DrawPolyline(xs, ys []int, n int)
}

// Anchored is implemented by every node with a screen position.
type Anchored interface {
	Hotspot() Point
}

// staffStepOffsetY returns the vertical offset from the top staff line of
// the given staff step. Step 0 is the bottom line and the lines are five
// units apart.
func staffStepOffsetY(step int) int {
	k := 8 - step
	if k%2 == 0 {
		return 5 * (k / 2)
	}
	return 2 + 5*((k-1)/2)
}

// A glyph is a symbol outline drawn as one polyline relative to a hotspot. A nil
// glyph draws nothing and has zero edges.
type glyph struct {
	xs, ys                   []int
	left, right, top, bottom int
}

func newGlyph(points ...int) *glyph {
	n := len(points) / 2
	s := &glyph{xs: make([]int, n), ys: make([]int, n)}
	for i := 0; i < n; i++ {
		s.xs[i] = points[2*i]
		s.ys[i] = points[2*i+1]
	}
	s.left, s.top = s.xs[0], s.ys[0]
	s.right, s.bottom = s.xs[0], s.ys[0]
	for i := 1; i < n; i++ {
		s.left = min(s.left, s.xs[i])
		s.right = max(s.right, s.xs[i])
		s.top = min(s.top, s.ys[i])
		s.bottom = max(s.bottom, s.ys[i])
	}
	return s
}

func (s *glyph) draw(g Graphics, x, y int) {
	if s == nil {
		return
	}
	g.Translate(x, y)
	g.DrawPolyline(s.xs, s.ys, len(s.xs))
	g.Translate(-x, -y)
}

func (s *glyph) drawAt(g Graphics, p Point) {
	s.draw(g, p.X, p.Y)
}

func (s *glyph) leftEdge() int {
	if s == nil {
		return 0
	}
	return s.left
}

func (s *glyph) rightEdge() int {
	if s == nil {
		return 0
	}
	return s.right
}
