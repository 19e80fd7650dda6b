package score

import "fmt"

const beamSpacing = 4

// A Beam is one node of a multi-node beam. The first node of the group
// carries the group ID and node count and computes the beam line for the
// whole group.
type Beam struct {
	symbolBase
	partsToLeft, partsToRight int

	anchor cell[Anchored]
	group  cell[[]*Beam]
	layout cell[beamLayout]
}

type beamLayout struct {
	left      Point
	slope     float64
	maxParts  int
	direction int // 1 if stems point down
}

// NewBeam returns a beam node with the given number of beam parts joining
// the previous and next nodes.
func NewBeam(partsToLeft, partsToRight int, t Tags) *Beam {
	return &Beam{symbolBase: symbolBase{tags: t}, partsToLeft: partsToLeft, partsToRight: partsToRight}
}

// PartsToLeft returns the number of beam parts toward the previous node.
func (b *Beam) PartsToLeft() int { return b.partsToLeft }

// PartsToRight returns the number of beam parts toward the next node.
func (b *Beam) PartsToRight() int { return b.partsToRight }

func (b *Beam) invalidate() {
	b.anchor.reset()
	b.group.reset()
	b.layout.reset()
}

func (b *Beam) stemAnchor() Anchored {
	return b.anchor.get(func() Anchored {
		if s, ok := previousInSlice[*Stem](&b.symbolBase); ok {
			return s
		}
		return b.defaultAnchor()
	})
}

func (b *Beam) members() []*Beam {
	return b.group.get(func() []*Beam {
		g := findGroup(b)
		if len(g) == 1 {
			b.log().WithField("beam", b.String()).Warn("beam group has a single node")
		}
		return g
	})
}

// MultiNodeCount returns the number of nodes in the group this beam
// defines, or zero if it does not define a group.
func (b *Beam) MultiNodeCount() int { return len(b.members()) }

func (b *Beam) computeLayout() beamLayout {
	return b.layout.get(func() beamLayout {
		g := b.members()
		if len(g) <= 1 {
			return beamLayout{left: b.stemAnchor().Hotspot(), direction: -1}
		}
		var l beamLayout
		first := g[0].stemAnchor()
		left := first.Hotspot()
		right := g[len(g)-1].stemAnchor().Hotspot()
		if dx := right.X - left.X; dx != 0 {
			if right.Y > left.Y {
				l.slope = 5 / float64(dx)
			} else if right.Y < left.Y {
				l.slope = -5 / float64(dx)
			}
		}
		l.direction = -1
		if s, ok := first.(*Stem); ok && s.StemDown() {
			l.direction = 1
		}
		for _, m := range g[1:] {
			tip := m.stemAnchor().Hotspot()
			y := int(float64(left.Y) + l.slope*float64(tip.X-left.X))
			if l.direction > 0 && tip.Y > y {
				left.Y += tip.Y - y
			} else if l.direction < 0 && tip.Y < y {
				left.Y -= y - tip.Y
			}
		}
		for _, m := range g {
			l.maxParts = max(l.maxParts, m.partsToLeft, m.partsToRight)
		}
		left.Y += (l.maxParts - 1) * l.direction * beamSpacing
		if l.maxParts > 1 {
			left.Y -= l.direction * beamSpacing
		}
		l.left = left
		return l
	})
}

// Hotspot returns the left end of the top beam line for a defining node,
// and the anchor position otherwise.
func (b *Beam) Hotspot() Point { return b.computeLayout().left }

// Draw draws the whole beam group from its defining node. Other nodes draw
// nothing.
func (b *Beam) Draw(g Graphics) {
	group := b.members()
	if len(group) <= 1 {
		return
	}
	l := b.computeLayout()
	for i, m := range group {
		tip := m.stemAnchor().Hotspot()
		x := tip.X
		y := int(float64(l.left.Y) + l.slope*float64(x-l.left.X))
		g.DrawLine(x, y, tip.X, tip.Y)
		for part := 1; part <= l.maxParts; part++ {
			if i > 0 {
				prev := group[i-1]
				if part <= m.partsToLeft && part > prev.partsToRight {
					l.drawSegment(g, x, y, x-6)
				}
			}
			if i < len(group)-1 {
				next := group[i+1]
				if part <= m.partsToRight && part > next.partsToLeft {
					l.drawSegment(g, x, y, x+6)
				}
				if part <= m.partsToRight && part <= next.partsToLeft {
					l.drawSegment(g, x, y, next.stemAnchor().Hotspot().X)
				}
			}
			y -= l.direction * beamSpacing
		}
	}
}

func (l *beamLayout) drawSegment(g Graphics, x, y, endX int) {
	endY := int(float64(y) + l.slope*float64(endX-x))
	for i := 0; i < 3; i++ {
		g.DrawLine(x, y-i, endX, endY-i)
	}
}

func (b *Beam) String() string {
	return fmt.Sprintf("Beam, parts to left=%d, parts to right=%d%v", b.partsToLeft, b.partsToRight, b.tags)
}

// A Tie is one end of a tie between two noteheads.
type Tie struct {
	symbolBase

	anchor cell[Anchored]
	group  cell[[]*Tie]
}

// NewTie returns a tie node.
func NewTie(t Tags) *Tie {
	return &Tie{symbolBase: symbolBase{tags: t}}
}

func (t *Tie) invalidate() {
	t.anchor.reset()
	t.group.reset()
}

func (t *Tie) noteAnchor() Anchored {
	return t.anchor.get(func() Anchored {
		if n, ok := previousInSlice[*Notehead](&t.symbolBase); ok {
			return n
		}
		return t.defaultAnchor()
	})
}

func (t *Tie) members() []*Tie {
	return t.group.get(func() []*Tie {
		g := findGroup(t)
		if len(g) != 0 && len(g) != 2 {
			t.log().WithField("nodes", len(g)).Warn("tie group does not have two nodes")
		}
		return g
	})
}

// MultiNodeCount returns the number of nodes in the group this tie defines,
// or zero if it does not define a group.
func (t *Tie) MultiNodeCount() int { return len(t.members()) }

// Hotspot returns the position of the tied notehead.
func (t *Tie) Hotspot() Point { return t.noteAnchor().Hotspot() }

// RoundedAbove returns true if the tie curves upward. Without a tie
// direction tag, a tie curves away from the stem preceding its first node,
// and upward if there is none.
func (t *Tie) RoundedAbove() bool {
	if d, ok := t.tags.TieDirection(); ok {
		return d == RoundedAbove
	}
	first := t
	if g := t.members(); len(g) > 0 {
		first = g[0]
	}
	s, ok := previousInSlice[*Stem](&first.symbolBase)
	if !ok {
		return true
	}
	return !s.StemDown()
}

// Draw draws the tie from its defining node. A tie between staves is drawn
// as two arcs, one leaving the end of the system.
func (t *Tie) Draw(g Graphics) {
	group := t.members()
	if len(group) != 2 {
		return
	}
	l, r := group[0], group[1]
	lp, rp := l.noteAnchor().Hotspot(), r.noteAnchor().Hotspot()
	above := t.RoundedAbove()
	ls := l.staff()
	if ls != r.staff() {
		sys := ls.System()
		drawTie(g, lp.X+3, lp.Y, sys.Hotspot().X+sys.Width()+10, above)
		drawTie(g, rp.X-12, rp.Y, rp.X-3, above)
		return
	}
	drawTie(g, lp.X+3, lp.Y, rp.X-3, above)
}

func drawTie(g Graphics, x, y, endX int, above bool) {
	dy := min(max((endX-x)/6, 5), 15)
	start := 15
	if !above {
		start += 180
	}
	arc := 2 * (90 - 15)
	g.DrawArc(x, y-dy, endX-x, 2*dy, start, arc)
	g.DrawArc(x, y-(dy+1), endX-x, 2*(dy+1), start, arc)
}

func (t *Tie) String() string {
	return "Tie" + t.tags.String()
}
