package score

import (
	"fmt"

	"moria.us/niffty/rational"
	"moria.us/niffty/tree"
)

// A NoteheadShape is the shape of a notehead. The values match the file
// encoding.
type NoteheadShape int

const (
	NoteheadBreve NoteheadShape = iota + 1
	NoteheadWhole
	NoteheadHalf
	NoteheadFilled
	NoteheadOpenDiamond
	NoteheadSolidDiamond
	NoteheadX
	NoteheadOpenX
	NoteheadFilledGuitarSlash
	NoteheadOpenGuitarSlash
	NoteheadFilledSquare
	NoteheadOpenSquare
	NoteheadFilledTriangle
	NoteheadOpenTriangle
)

var noteheadNames = [...]string{
	"BREVE", "WHOLE", "HALF", "FILLED", "OPEN_DIAMOND", "SOLID_DIAMOND",
	"X_NOTEHEAD", "OPEN_X_NOTEHEAD", "FILLED_GUITAR_SLASH", "OPEN_GUITAR_SLASH",
	"FILLED_SQUARE", "OPEN_SQUARE", "FILLED_TRIANGLE", "OPEN_TRIANGLE",
}

func (s NoteheadShape) String() string {
	if s < NoteheadBreve || s > NoteheadOpenTriangle {
		return fmt.Sprintf("NoteheadShape(%d)", int(s))
	}
	return noteheadNames[s-1]
}

// A Notehead is a note on a staff step.
type Notehead struct {
	symbolBase
	shape    NoteheadShape
	step     int
	duration rational.Rational

	hotspot cell[Point]
	glyph   cell[*glyph]
}

// NewNotehead returns a notehead. Step 0 is the bottom staff line.
func NewNotehead(shape NoteheadShape, step int, duration rational.Rational, t Tags) *Notehead {
	return &Notehead{symbolBase: symbolBase{tags: t}, shape: shape, step: step, duration: duration}
}

// Shape returns the notehead shape.
func (n *Notehead) Shape() NoteheadShape { return n.shape }

// StaffStep returns the staff step.
func (n *Notehead) StaffStep() int { return n.step }

// Duration returns the notated duration.
func (n *Notehead) Duration() rational.Rational { return n.duration }

func (n *Notehead) invalidate() {
	n.hotspot.reset()
	n.glyph.reset()
}

// Hotspot returns the center left of the notehead on its staff step.
func (n *Notehead) Hotspot() Point {
	return n.hotspot.get(func() Point {
		ts := n.TimeSlice()
		return Point{ts.Hotspot().X, ts.Hotspot().Y + staffStepOffsetY(n.step)}
	})
}

func (n *Notehead) outline() *glyph {
	return n.glyph.get(func() *glyph {
		switch n.shape {
		case NoteheadWhole:
			return glyphNoteheadWhole
		case NoteheadHalf:
			return glyphNoteheadHalf
		case NoteheadFilled:
			return glyphNoteheadFilled
		}
		n.log().WithField("shape", n.shape).Warn("no glyph for notehead shape")
		return nil
	})
}

func (n *Notehead) leftEdge() int  { return n.outline().leftEdge() }
func (n *Notehead) rightEdge() int { return n.outline().rightEdge() }

// Draw draws the notehead and any ledger lines it needs.
func (n *Notehead) Draw(g Graphics) {
	n.outline().drawAt(g, n.Hotspot())
	top := n.TimeSlice().Hotspot()
	ledger := func(step int) {
		y := top.Y + staffStepOffsetY(step)
		g.DrawLine(top.X-4, y, top.X+6, y)
	}
	if n.step >= 10 {
		for s := 10; s <= n.step; s += 2 {
			ledger(s)
		}
	} else if n.step <= -2 {
		for s := -2; s >= n.step; s -= 2 {
			ledger(s)
		}
	}
}

func (n *Notehead) String() string {
	return fmt.Sprintf("Notehead, shape=%v, staff step=%d, duration=%v%v", n.shape, n.step, n.duration, n.tags)
}

// A RestShape is the shape of a rest. The values match the file encoding.
type RestShape int

const (
	RestBreve RestShape = iota + 1
	RestWhole
	RestHalf
	RestQuarter
	RestEighth
	RestSixteenth
	RestThirtySecond
	RestSixtyFourth
	RestOneTwentyEighth
	RestTwoFiftySixth
	RestFourMeasures
	RestMultipleMeasureThickHorizontal
	RestMultipleMeasureThickSlanted
	RestVocalComma
	RestVocalTwoSmallSlashes
)

var restNames = [...]string{
	"BREVE", "WHOLE", "HALF", "QUARTER", "EIGHTH", "SIXTEENTH", "THIRTY_SECOND",
	"SIXTY_FOURTH", "ONE_TWENTY_EIGHTH", "TWO_FIFTY_SIXTH", "FOUR_MEASURES",
	"MULTIPLE_MEASURE_THICK_HORIZONTAL", "MULTIPLE_MEASURE_THICK_SLANTED",
	"VOCAL_COMMA", "VOCAL_TWO_SMALL_SLASHES",
}

func (s RestShape) String() string {
	if s < RestBreve || s > RestVocalTwoSmallSlashes {
		return fmt.Sprintf("RestShape(%d)", int(s))
	}
	return restNames[s-1]
}

// A Rest is a rest on a staff step.
type Rest struct {
	symbolBase
	shape    RestShape
	step     int
	duration rational.Rational

	hotspot cell[Point]
	glyph   cell[*glyph]
}

// NewRest returns a rest.
func NewRest(shape RestShape, step int, duration rational.Rational, t Tags) *Rest {
	return &Rest{symbolBase: symbolBase{tags: t}, shape: shape, step: step, duration: duration}
}

// Shape returns the rest shape.
func (r *Rest) Shape() RestShape { return r.shape }

// StaffStep returns the staff step.
func (r *Rest) StaffStep() int { return r.step }

// Duration returns the notated duration.
func (r *Rest) Duration() rational.Rational { return r.duration }

func (r *Rest) invalidate() {
	r.hotspot.reset()
	r.glyph.reset()
}

func (r *Rest) Hotspot() Point {
	return r.hotspot.get(func() Point {
		ts := r.TimeSlice()
		return Point{ts.Hotspot().X, ts.Hotspot().Y + staffStepOffsetY(r.step)}
	})
}

func (r *Rest) outline() *glyph {
	return r.glyph.get(func() *glyph {
		switch r.shape {
		case RestWhole:
			return glyphRestWhole
		case RestHalf:
			return glyphRestHalf
		case RestQuarter:
			return glyphRestQuarter
		case RestEighth:
			return glyphRestEighth
		case RestSixteenth:
			return glyphRestSixteenth
		case RestThirtySecond:
			return glyphRestThirtySecond
		case RestSixtyFourth:
			return glyphRestSixtyFourth
		}
		r.log().WithField("shape", r.shape).Warn("no glyph for rest shape")
		return nil
	})
}

// Draw draws the rest unless it is tagged invisible.
func (r *Rest) Draw(g Graphics) {
	if r.tags.Invisible() {
		return
	}
	r.outline().drawAt(g, r.Hotspot())
}

func (r *Rest) String() string {
	return fmt.Sprintf("Rest, shape=%v, staff step=%d, duration=%v%v", r.shape, r.step, r.duration, r.tags)
}

// A Stem belongs to the noteheads that follow it in the time slice, up to
// the next stem.
type Stem struct {
	symbolBase

	noteheads cell[[]*Notehead]
	layout    cell[stemLayout]
}

type stemLayout struct {
	tip         Point
	top, bottom *Notehead
	down        bool
}

// NewStem returns a stem.
func NewStem(t Tags) *Stem {
	return &Stem{symbolBase: symbolBase{tags: t}}
}

func (s *Stem) invalidate() {
	s.noteheads.reset()
	s.layout.reset()
}

func (s *Stem) ownNoteheads() []*Notehead {
	return s.noteheads.get(func() []*Notehead {
		var r []*Notehead
		ts := s.TimeSlice()
		for i := tree.Index(s) + 1; i < ts.SymbolCount(); i++ {
			switch sym := ts.Symbol(i).(type) {
			case *Stem:
				return r
			case *Notehead:
				r = append(r, sym)
			}
		}
		return r
	})
}

func (s *Stem) computeLayout() stemLayout {
	return s.layout.get(func() stemLayout {
		var l stemLayout
		for _, n := range s.ownNoteheads() {
			if n.shape == NoteheadBreve || n.shape == NoteheadWhole {
				continue
			}
			if l.top == nil {
				l.top, l.bottom = n, n
				continue
			}
			y := n.Hotspot().Y
			if y < l.top.Hotspot().Y {
				l.top = n
			}
			if y > l.bottom.Hotspot().Y {
				l.bottom = n
			}
		}
		if l.top == nil {
			l.tip = s.TimeSlice().Hotspot()
			return l
		}
		if p, ok := s.tags.LogicalPlacement(); ok && p.Vertical == PlaceBelow {
			l.down = true
		}
		if l.down {
			l.tip = l.bottom.Hotspot().Add(l.bottom.leftEdge(), 16)
		} else {
			l.tip = l.top.Hotspot().Add(l.bottom.rightEdge(), -16)
		}
		return l
	})
}

// Hotspot returns the free end of the stem, or the time slice position if
// the stem has no noteheads that take a stem.
func (s *Stem) Hotspot() Point { return s.computeLayout().tip }

// StemDown returns true if the stem hangs below its noteheads.
func (s *Stem) StemDown() bool { return s.computeLayout().down }

// Draw draws the stem and its flags.
func (s *Stem) Draw(g Graphics) {
	l := s.computeLayout()
	if l.top == nil {
		return
	}
	tip := l.tip
	if l.down {
		g.DrawLine(tip.X, tip.Y, tip.X, l.top.Hotspot().Y)
	} else {
		g.DrawLine(tip.X, tip.Y, tip.X, l.bottom.Hotspot().Y)
	}
	flags, ok := s.tags.NumberOfFlags()
	if !ok {
		return
	}
	y, step, flag := tip.Y, -4, glyphFlagUp
	if l.down {
		step, flag = 4, glyphFlagDown
	}
	if flags > 1 {
		y -= step * 3 / 4
	}
	for i := 0; i < flags; i++ {
		flag.draw(g, tip.X, y)
		y += step
	}
}

func (s *Stem) String() string {
	return "Stem" + s.tags.String()
}
