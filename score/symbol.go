package score

import (
	"github.com/sirupsen/logrus"

	"moria.us/niffty/tree"
)

// A Symbol is one of the music symbols in a time slice: *Accidental,
// *AugmentationDot, *Barline, *Beam, *Clef, *KeySignature, *Lyric,
// *Notehead, *Rest, *Stem, *Tie, or *TimeSignature.
type Symbol interface {
	tree.Node
	Anchored

	// Tags returns the tags of the symbol chunk.
	Tags() Tags
	// TimeSlice returns the time slice containing the symbol.
	TimeSlice() *TimeSlice
	Draw(g Graphics)
	String() string

	invalidate()
	leftPositioned() bool
}

type symbolBase struct {
	links tree.Links
	tags  Tags
}

func (b *symbolBase) Links() *tree.Links { return &b.links }

func (b *symbolBase) Tags() Tags { return b.tags }

func (b *symbolBase) TimeSlice() *TimeSlice { return tree.Parent(b).(*TimeSlice) }

func (b *symbolBase) leftPositioned() bool { return false }

func (b *symbolBase) staff() *Staff {
	return b.TimeSlice().MeasureStart().Staff()
}

func (b *symbolBase) log() logrus.FieldLogger {
	return b.TimeSlice().Score().log
}

// defaultAnchor returns the previous symbol in the time slice, or the time
// slice itself for the first symbol.
func (b *symbolBase) defaultAnchor() Anchored {
	ts := b.TimeSlice()
	if i := tree.Index(b); i > 0 {
		return ts.Symbol(i - 1)
	}
	return ts
}

// leftPositionedX returns the x position of a symbol drawn to the left of
// its time slice: one slot left of the next left positioned symbol in the
// slice, or of the slice itself.
func (b *symbolBase) leftPositionedX() int {
	ts := b.TimeSlice()
	next := ts.Hotspot()
	for i := tree.Index(b) + 1; i < ts.SymbolCount(); i++ {
		if s := ts.Symbol(i); s.leftPositioned() {
			next = s.Hotspot()
			break
		}
	}
	m := ts.MeasureStart()
	n := m.SymbolCount()
	if n <= 1 {
		return next.X
	}
	return next.X - (m.Width()-10)/(n-1)
}

// previousInSlice returns the nearest earlier symbol of type T in the same
// time slice.
func previousInSlice[T Symbol](b *symbolBase) (T, bool) {
	ts := b.TimeSlice()
	for i := tree.Index(b) - 1; i >= 0; i-- {
		if s, ok := ts.Symbol(i).(T); ok {
			return s, true
		}
	}
	var zero T
	return zero, false
}

// previousInScore returns the nearest earlier symbol of type T anywhere in
// the score.
func previousInScore[T Symbol](n tree.Node) (T, bool) {
	for p := tree.Previous(n); p != nil; p = tree.Previous(p) {
		if s, ok := p.(T); ok {
			return s, true
		}
	}
	var zero T
	return zero, false
}

// nextInScore returns the nearest later symbol of type T anywhere in the
// score.
func nextInScore[T Symbol](n tree.Node) (T, bool) {
	for p := tree.Next(n); p != nil; p = tree.Next(p) {
		if s, ok := p.(T); ok {
			return s, true
		}
	}
	var zero T
	return zero, false
}

// previousInStaff is like previousInScore, but only finds symbols on the
// same staff.
func previousInStaff[T Symbol](b *symbolBase) (T, bool) {
	s, ok := previousInScore[T](b)
	if ok && s.TimeSlice().MeasureStart().Staff() == b.staff() {
		return s, true
	}
	var zero T
	return zero, false
}

// findGroup returns the members of the multi-node symbol defined by s. The
// defining node carries both an ID and a number of nodes; members are later
// symbols of the same type with the same ID. The group ends after the
// declared number of nodes, or before another defining node with the same
// ID. A node that does not define a group gets an empty group.
func findGroup[T Symbol](s T) []T {
	count, ok := s.Tags().NumberOfNodes()
	if !ok {
		return nil
	}
	id, ok := s.Tags().ID()
	if !ok {
		return nil
	}
	group := []T{s}
	for n, ok := nextInScore[T](s); ok && len(group) < count; n, ok = nextInScore[T](n) {
		if nid, has := n.Tags().ID(); !has || nid != id {
			continue
		}
		if _, defines := n.Tags().NumberOfNodes(); defines {
			break
		}
		group = append(group, n)
	}
	return group
}
