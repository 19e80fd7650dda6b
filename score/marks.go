package score

import (
	"fmt"
	"unicode/utf8"

	"moria.us/niffty/tree"
)

// An AccidentalShape is the shape of an accidental. The values match the
// file encoding.
type AccidentalShape int

const (
	DoubleFlat AccidentalShape = iota + 1
	Flat
	Natural
	Sharp
	DoubleSharp
	QuarterToneFlat
	ThreeQuarterTonesFlat
	QuarterToneSharp
	ThreeQuarterTonesSharp
)

var accidentalNames = [...]string{
	"DOUBLE_FLAT", "FLAT", "NATURAL", "SHARP", "DOUBLE_SHARP",
	"QUARTER_TONE_FLAT", "THREE_QUARTER_TONES_FLAT",
	"QUARTER_TONE_SHARP", "THREE_QUARTER_TONES_SHARP",
}

func (s AccidentalShape) String() string {
	if s < DoubleFlat || s > ThreeQuarterTonesSharp {
		return fmt.Sprintf("AccidentalShape(%d)", int(s))
	}
	return accidentalNames[s-1]
}

// An Accidental is drawn to the left of the notehead before it.
type Accidental struct {
	symbolBase
	shape AccidentalShape

	anchor  cell[Anchored]
	hotspot cell[Point]
	glyph   cell[*glyph]
}

// NewAccidental returns an accidental.
func NewAccidental(shape AccidentalShape, t Tags) *Accidental {
	return &Accidental{symbolBase: symbolBase{tags: t}, shape: shape}
}

// Shape returns the accidental shape.
func (a *Accidental) Shape() AccidentalShape { return a.shape }

func (a *Accidental) invalidate() {
	a.anchor.reset()
	a.hotspot.reset()
	a.glyph.reset()
}

func (a *Accidental) noteAnchor() Anchored {
	return a.anchor.get(func() Anchored {
		if n, ok := previousInSlice[*Notehead](&a.symbolBase); ok {
			return n
		}
		return a.defaultAnchor()
	})
}

func (a *Accidental) outline() *glyph {
	return a.glyph.get(func() *glyph {
		switch a.shape {
		case Flat:
			return glyphFlat
		case Natural:
			return glyphNatural
		case Sharp:
			return glyphSharp
		}
		a.log().WithField("shape", a.shape).Warn("no glyph for accidental shape")
		return nil
	})
}

func (a *Accidental) Hotspot() Point {
	return a.hotspot.get(func() Point {
		anchor := a.noteAnchor()
		n, ok := anchor.(*Notehead)
		if !ok {
			return anchor.Hotspot()
		}
		return n.Hotspot().Add(n.leftEdge()-(a.outline().rightEdge()+3), 0)
	})
}

func (a *Accidental) Draw(g Graphics) {
	a.outline().drawAt(g, a.Hotspot())
}

func (a *Accidental) String() string {
	return fmt.Sprintf("Accidental, shape=%v%v", a.shape, a.tags)
}

// An AugmentationDot is drawn right of the notehead or rest before it, or
// right of the previous dot.
type AugmentationDot struct {
	symbolBase

	anchor      cell[Anchored]
	previousDot cell[*AugmentationDot]
	hotspot     cell[Point]
}

// NewAugmentationDot returns an augmentation dot.
func NewAugmentationDot(t Tags) *AugmentationDot {
	return &AugmentationDot{symbolBase: symbolBase{tags: t}}
}

func (d *AugmentationDot) invalidate() {
	d.anchor.reset()
	d.previousDot.reset()
	d.hotspot.reset()
}

func (d *AugmentationDot) noteAnchor() Anchored {
	return d.anchor.get(func() Anchored {
		n, nok := previousInSlice[*Notehead](&d.symbolBase)
		r, rok := previousInSlice[*Rest](&d.symbolBase)
		switch {
		case nok && rok:
			if tree.Index(n) > tree.Index(r) {
				return n
			}
			return r
		case nok:
			return n
		case rok:
			return r
		}
		return d.defaultAnchor()
	})
}

// prevDot returns the dot before d that belongs to the same notehead, or
// nil.
func (d *AugmentationDot) prevDot() *AugmentationDot {
	return d.previousDot.get(func() *AugmentationDot {
		ts := d.TimeSlice()
		for i := tree.Index(d) - 1; i >= 0; i-- {
			switch s := ts.Symbol(i).(type) {
			case *Notehead:
				return nil
			case *AugmentationDot:
				return s
			}
		}
		return nil
	})
}

func (d *AugmentationDot) Hotspot() Point {
	return d.hotspot.get(func() Point {
		if p := d.prevDot(); p != nil {
			return p.Hotspot().Add(3, 0)
		}
		anchor := d.noteAnchor()
		dy := 0
		// Dots on lines move up into the space.
		if n, ok := anchor.(*Notehead); ok && n.step%2 == 0 {
			dy = -3
		}
		return anchor.Hotspot().Add(5, dy)
	})
}

func (d *AugmentationDot) Draw(g Graphics) {
	glyphDot.drawAt(g, d.Hotspot())
}

func (d *AugmentationDot) String() string {
	return "Augmentation-dot" + d.tags.String()
}

// A Lyric is a syllable drawn below the staff under the notehead before it.
type Lyric struct {
	symbolBase
	text  string
	verse int

	anchor  cell[Anchored]
	hotspot cell[Point]
}

// NewLyric returns a lyric.
func NewLyric(text string, verse int, t Tags) *Lyric {
	return &Lyric{symbolBase: symbolBase{tags: t}, text: text, verse: verse}
}

// Text returns the lyric text.
func (l *Lyric) Text() string { return l.text }

// VerseID returns the lyric verse ID.
func (l *Lyric) VerseID() int { return l.verse }

func (l *Lyric) invalidate() {
	l.anchor.reset()
	l.hotspot.reset()
}

func (l *Lyric) noteAnchor() Anchored {
	return l.anchor.get(func() Anchored {
		if n, ok := previousInSlice[*Notehead](&l.symbolBase); ok {
			return n
		}
		return l.defaultAnchor()
	})
}

// Hotspot returns the center of the lyric baseline: six steps below the
// notehead, and never higher than step -8.
func (l *Lyric) Hotspot() Point {
	return l.hotspot.get(func() Point {
		anchor := l.noteAnchor()
		step := 0
		if n, ok := anchor.(*Notehead); ok {
			step = n.step
		}
		step = min(step-6, -8)
		return Point{anchor.Hotspot().X, l.TimeSlice().Hotspot().Y + staffStepOffsetY(step)}
	})
}

func (l *Lyric) Draw(g Graphics) {
	p := l.Hotspot()
	g.DrawString(l.text, p.X-3*utf8.RuneCountInString(l.text), p.Y+4)
}

func (l *Lyric) String() string {
	return fmt.Sprintf("Lyric, text=\"%s\", lyricVerseID=%d%v", l.text, l.verse, l.tags)
}
