package score

import (
	"fmt"
	"strconv"

	"moria.us/niffty/tree"
)

// A BarlineType is the weight of a barline.
type BarlineType int

const (
	BarlineThin BarlineType = iota + 1
	BarlineThick
)

func (t BarlineType) String() string {
	switch t {
	case BarlineThin:
		return "THIN"
	case BarlineThick:
		return "THICK"
	}
	return fmt.Sprintf("BarlineType(%d)", int(t))
}

// ExtendsTo says how far down a barline reaches.
type ExtendsTo int

const (
	BottomOfStaff ExtendsTo = iota + 1
	NextStaff
	BetweenStaves
)

func (e ExtendsTo) String() string {
	switch e {
	case BottomOfStaff:
		return "BOTTOM_OF_STAFF"
	case NextStaff:
		return "NEXT_STAFF"
	case BetweenStaves:
		return "BETWEEN_STAVES"
	}
	return fmt.Sprintf("ExtendsTo(%d)", int(e))
}

// A Barline is a vertical line at a measure boundary.
type Barline struct {
	symbolBase
	kind    BarlineType
	extends ExtendsTo
	staves  int

	hotspot cell[Point]
	bottom  cell[int]
}

// NewBarline returns a barline.
func NewBarline(kind BarlineType, extends ExtendsTo, numberOfStaves int, t Tags) *Barline {
	return &Barline{symbolBase: symbolBase{tags: t}, kind: kind, extends: extends, staves: numberOfStaves}
}

// Type returns the barline weight.
func (b *Barline) Type() BarlineType { return b.kind }

// ExtendsTo returns how far down the barline reaches.
func (b *Barline) ExtendsTo() ExtendsTo { return b.extends }

// NumberOfStaves returns the number of staves the barline spans.
func (b *Barline) NumberOfStaves() int { return b.staves }

func (b *Barline) invalidate() {
	b.hotspot.reset()
	b.bottom.reset()
}

// Hotspot returns the top of the barline. A barline at the start of a
// measure sits on the measure's left edge.
func (b *Barline) Hotspot() Point {
	return b.hotspot.get(func() Point {
		ts := b.TimeSlice()
		if ts.StartTime().Num() == 0 {
			return ts.MeasureStart().Hotspot()
		}
		return ts.Hotspot()
	})
}

func (b *Barline) bottomY() int {
	return b.bottom.get(func() int {
		y := b.Hotspot().Y + staffStepOffsetY(0)
		if b.extends == NextStaff {
			st := b.staff()
			sys := st.System()
			if i := tree.Index(st) + 1; i < sys.StaffCount() {
				y = sys.Staff(i).Hotspot().Y
			}
		}
		return y
	})
}

func (b *Barline) Draw(g Graphics) {
	top := b.Hotspot()
	bottom := b.bottomY()
	g.DrawLine(top.X, top.Y, top.X, bottom)
	if b.kind == BarlineThick {
		g.DrawLine(top.X-1, top.Y, top.X-1, bottom)
		g.DrawLine(top.X-2, top.Y, top.X-2, bottom)
	}
}

func (b *Barline) String() string {
	return fmt.Sprintf("Barline, type=%v, extends to=%v, number of staves=%d%v", b.kind, b.extends, b.staves, b.tags)
}

// A ClefShape is the shape of a clef. The values match the file encoding.
type ClefShape int

const (
	GClef ClefShape = iota + 1
	FClef
	CClef
	PercussionClef
	DoubleGClef
	TablatureClef
)

var clefNames = [...]string{"G_CLEF", "F_CLEF", "C_CLEF", "PERCUSSION", "DOUBLE_G_CLEF", "TABLATURE"}

func (s ClefShape) String() string {
	if s < GClef || s > TablatureClef {
		return fmt.Sprintf("ClefShape(%d)", int(s))
	}
	return clefNames[s-1]
}

// An OctaveNumber transposes a clef. The values match the file encoding.
type OctaveNumber int

const (
	OctaveNone OctaveNumber = iota
	OctaveAbove8
	OctaveBelow8
	OctaveAbove15
	OctaveBelow15
)

var octaveNames = [...]string{"NONE", "ABOVE_8", "BELOW_8", "ABOVE_15", "BELOW_15"}

func (o OctaveNumber) String() string {
	if o < OctaveNone || o > OctaveBelow15 {
		return fmt.Sprintf("OctaveNumber(%d)", int(o))
	}
	return octaveNames[o]
}

// A Clef is drawn to the left of its time slice.
type Clef struct {
	symbolBase
	shape  ClefShape
	step   int
	octave OctaveNumber

	hotspot cell[Point]
	warned  cell[bool]
}

// NewClef returns a clef. The staff step is the line the clef marks.
func NewClef(shape ClefShape, step int, octave OctaveNumber, t Tags) *Clef {
	return &Clef{symbolBase: symbolBase{tags: t}, shape: shape, step: step, octave: octave}
}

// Shape returns the clef shape.
func (c *Clef) Shape() ClefShape { return c.shape }

// StaffStep returns the staff step.
func (c *Clef) StaffStep() int { return c.step }

// OctaveNumber returns the octave transposition.
func (c *Clef) OctaveNumber() OctaveNumber { return c.octave }

func (c *Clef) leftPositioned() bool { return true }

func (c *Clef) invalidate() {
	c.hotspot.reset()
	c.warned.reset()
}

func (c *Clef) Hotspot() Point {
	return c.hotspot.get(func() Point {
		return Point{c.leftPositionedX(), c.TimeSlice().Hotspot().Y + staffStepOffsetY(c.step)}
	})
}

func (c *Clef) Draw(g Graphics) {
	p := c.Hotspot()
	small := c.tags.SmallSize()
	switch c.shape {
	case GClef:
		if small {
			glyphGClefSmall.drawAt(g, p)
		} else {
			glyphGClef.drawAt(g, p)
		}
	case FClef:
		if small {
			glyphFClefSmall.drawAt(g, p)
			glyphFClefDot1.draw(g, p.X, p.Y+1)
		} else {
			glyphFClef.drawAt(g, p)
			glyphFClefDot1.drawAt(g, p)
		}
		glyphFClefDot2.drawAt(g, p)
	default:
		c.warned.get(func() bool {
			c.log().WithField("shape", c.shape).Warn("no glyph for clef shape")
			return true
		})
	}
}

func (c *Clef) String() string {
	return fmt.Sprintf("Clef, shape=%v, staff step=%d, octave=%v%v", c.shape, c.step, c.octave, c.tags)
}

var (
	sharpSteps = [...]int{8, 5, 9, 6, 3, 7, 4}
	flatSteps  = [...]int{4, 7, 3, 6, 2, 5, 1}
)

// A KeySignature is drawn to the left of its time slice. Standard codes 1
// to 7 are that many sharps, and 8 to 14 are 1 to 7 flats.
type KeySignature struct {
	symbolBase
	code int

	hotspot cell[Point]
	clef    cell[ClefShape]
}

// NewKeySignature returns a key signature.
func NewKeySignature(code int, t Tags) *KeySignature {
	return &KeySignature{symbolBase: symbolBase{tags: t}, code: code}
}

// StandardCode returns the key signature code.
func (k *KeySignature) StandardCode() int { return k.code }

func (k *KeySignature) leftPositioned() bool { return true }

func (k *KeySignature) invalidate() {
	k.hotspot.reset()
	k.clef.reset()
}

// accidentals returns the glyph, staff steps, and count of the key's
// accidentals.
func (k *KeySignature) accidentals() (*glyph, []int, int) {
	switch {
	case k.code >= 1 && k.code <= 7:
		return glyphSharp, sharpSteps[:], k.code
	case k.code >= 8 && k.code <= 14:
		return glyphFlat, flatSteps[:], k.code - 7
	}
	return nil, nil, 0
}

// clefShape returns the shape of the clef in effect on the staff, which is
// a G clef if none came before.
func (k *KeySignature) clefShape() ClefShape {
	return k.clef.get(func() ClefShape {
		if c, ok := previousInStaff[*Clef](&k.symbolBase); ok {
			return c.shape
		}
		return GClef
	})
}

// Hotspot returns the left end of the key signature on the top staff line.
func (k *KeySignature) Hotspot() Point {
	return k.hotspot.get(func() Point {
		_, _, n := k.accidentals()
		return Point{k.leftPositionedX() - 5*n/2, k.TimeSlice().Hotspot().Y}
	})
}

func (k *KeySignature) Draw(g Graphics) {
	shape, steps, n := k.accidentals()
	offset := 0
	if k.clefShape() == FClef {
		offset = -2
	}
	p := k.Hotspot()
	for i := 0; i < n; i++ {
		shape.draw(g, p.X+i*5, p.Y+staffStepOffsetY(steps[i]+offset))
	}
}

func (k *KeySignature) String() string {
	return "Key-signature, code=" + strconv.Itoa(k.code) + k.tags.String()
}

// A TimeSignature is drawn to the left of its time slice as two numbers.
type TimeSignature struct {
	symbolBase
	top, bottom int

	hotspot cell[Point]
}

// NewTimeSignature returns a time signature.
func NewTimeSignature(top, bottom int, t Tags) *TimeSignature {
	return &TimeSignature{symbolBase: symbolBase{tags: t}, top: top, bottom: bottom}
}

// Top returns the upper number.
func (s *TimeSignature) Top() int { return s.top }

// Bottom returns the lower number.
func (s *TimeSignature) Bottom() int { return s.bottom }

func (s *TimeSignature) leftPositioned() bool { return true }

func (s *TimeSignature) invalidate() {
	s.hotspot.reset()
}

func (s *TimeSignature) Hotspot() Point {
	return s.hotspot.get(func() Point {
		return Point{s.leftPositionedX(), s.TimeSlice().Hotspot().Y}
	})
}

func (s *TimeSignature) Draw(g Graphics) {
	p := s.Hotspot()
	g.DrawString(strconv.Itoa(s.top), p.X, p.Y+10)
	g.DrawString(strconv.Itoa(s.bottom), p.X, p.Y+20)
}

func (s *TimeSignature) String() string {
	return fmt.Sprintf("Time-signature, top=%d, bottom=%d%v", s.top, s.bottom, s.tags)
}
