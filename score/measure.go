package score

import (
	"fmt"
	"sort"

	"moria.us/niffty/rational"
	"moria.us/niffty/tree"
)

// A MeasureStart is the time slice that begins a measure. It owns the event
// time slices of the measure.
type MeasureStart struct {
	links tree.Links
	start rational.Rational
	tags  Tags

	hotspot    cell[Point]
	duration   cell[rational.Rational]
	width      cell[int]
	positioner *positioner
}

// NewMeasureStart returns an empty measure starting at the given time.
func NewMeasureStart(start rational.Rational, t Tags) *MeasureStart {
	return &MeasureStart{start: start, tags: t}
}

func (m *MeasureStart) Links() *tree.Links { return &m.links }

// Staff returns the staff containing m.
func (m *MeasureStart) Staff() *Staff { return tree.Parent(m).(*Staff) }

// Score returns the score containing m.
func (m *MeasureStart) Score() *Score { return m.Staff().System().Score() }

// StartTime returns the start time of the measure.
func (m *MeasureStart) StartTime() rational.Rational { return m.start }

// Tags returns the tags of the measure start chunk.
func (m *MeasureStart) Tags() Tags { return m.tags }

// AddTimeSlice appends an event time slice.
func (m *MeasureStart) AddTimeSlice(t *TimeSlice) { tree.Append(m, t) }

// TimeSliceCount returns the number of event time slices.
func (m *MeasureStart) TimeSliceCount() int { return tree.Len(m) }

// TimeSlice returns event time slice i.
func (m *MeasureStart) TimeSlice(i int) *TimeSlice { return tree.Child(m, i).(*TimeSlice) }

func (m *MeasureStart) invalidate() {
	for i := 0; i < m.TimeSliceCount(); i++ {
		m.TimeSlice(i).invalidate()
	}
	m.hotspot.reset()
	m.duration.reset()
	m.width.reset()
	m.positioner = nil
}

func (m *MeasureStart) next() *MeasureStart {
	st := m.Staff()
	if i := tree.Index(m) + 1; i < st.MeasureStartCount() {
		return st.MeasureStart(i)
	}
	return nil
}

// Duration returns the time until the next measure on the staff. The last
// measure of a staff lasts until its last event.
func (m *MeasureStart) Duration() rational.Rational {
	return m.duration.get(func() rational.Rational {
		next := m.next()
		if next == nil {
			if n := m.TimeSliceCount(); n > 0 {
				return m.TimeSlice(n - 1).StartTime()
			}
			return rational.Zero
		}
		r := rational.NewRatio(next.StartTime())
		r.Sub(m.start)
		return r.Rational()
	})
}

// Hotspot returns the position of the measure's left edge on the top staff
// line. Measures are spaced in proportion to their start time within the
// system.
func (m *MeasureStart) Hotspot() Point {
	return m.hotspot.get(func() Point {
		st := m.Staff()
		sys := st.System()
		x := 0
		if d := sys.Duration().Float64(); d != 0 {
			x = int((m.start.Float64() - sys.StartTime().Float64()) * float64(sys.Width()) / d)
		}
		return st.Hotspot().Add(x, 0)
	})
}

// Width returns the distance to the next measure, or to the end of the
// staves for the last measure.
func (m *MeasureStart) Width() int {
	return m.width.get(func() int {
		if next := m.next(); next != nil {
			return next.Hotspot().X - m.Hotspot().X
		}
		sys := m.Staff().System()
		return sys.Hotspot().X + sys.Width() - m.Hotspot().X
	})
}

// SymbolCount returns the number of horizontal symbol slots in the measure.
// The slots are shared with the measures of the other staves in the system
// that have the same start time and duration, so that they line up.
func (m *MeasureStart) SymbolCount() int {
	if m.positioner == nil {
		m.buildPositioner()
	}
	return m.positioner.count
}

func (m *MeasureStart) buildPositioner() {
	p := new(positioner)
	quarter := rational.Must(1, 4)
	dur := m.Duration()
	var r rational.Ratio
	for ; r.Cmp(dur) < 0; r.Add(quarter) {
		p.add(r.Rational(), 0)
	}
	sys := m.Staff().System()
	for i := 0; i < sys.StaffCount(); i++ {
		st := sys.Staff(i)
		for j := 0; j < st.MeasureStartCount(); j++ {
			o := st.MeasureStart(j)
			if o.start.Equal(m.start) && o.Duration().Equal(dur) {
				o.positioner = p
				for k := 0; k < o.TimeSliceCount(); k++ {
					ts := o.TimeSlice(k)
					p.add(ts.StartTime(), ts.LeftPositionedCount())
				}
				break
			}
		}
	}
	// Another measure on m's own staff with the same start may have been
	// matched instead of m.
	m.positioner = p
}

// SymbolPosition returns the slot index of the time slice starting at
// start, or -1 if no time slice in the shared measures starts then.
func (m *MeasureStart) SymbolPosition(start rational.Rational) int {
	m.SymbolCount()
	return m.positioner.position(start)
}

// Draw draws every time slice.
func (m *MeasureStart) Draw(g Graphics) {
	for i := 0; i < m.TimeSliceCount(); i++ {
		m.TimeSlice(i).Draw(g)
	}
}

func (m *MeasureStart) String() string {
	return fmt.Sprintf("Time-slice, type=MEASURE_START, start time=%v%v", m.start, m.tags)
}

// A TimeSlice holds the symbols at one instant of a measure.
type TimeSlice struct {
	links tree.Links
	start rational.Rational
	tags  Tags

	hotspot cell[Point]
}

// NewTimeSlice returns an empty event time slice. The start time is relative
// to the start of the measure.
func NewTimeSlice(start rational.Rational, t Tags) *TimeSlice {
	return &TimeSlice{start: start, tags: t}
}

func (t *TimeSlice) Links() *tree.Links { return &t.links }

// MeasureStart returns the measure containing t.
func (t *TimeSlice) MeasureStart() *MeasureStart { return tree.Parent(t).(*MeasureStart) }

// Score returns the score containing t.
func (t *TimeSlice) Score() *Score { return t.MeasureStart().Score() }

// StartTime returns the start time within the measure.
func (t *TimeSlice) StartTime() rational.Rational { return t.start }

// Tags returns the tags of the time slice chunk.
func (t *TimeSlice) Tags() Tags { return t.tags }

// AddSymbol appends a symbol.
func (t *TimeSlice) AddSymbol(s Symbol) { tree.Append(t, s) }

// SymbolCount returns the number of symbols.
func (t *TimeSlice) SymbolCount() int { return tree.Len(t) }

// Symbol returns symbol i.
func (t *TimeSlice) Symbol(i int) Symbol { return tree.Child(t, i).(Symbol) }

func (t *TimeSlice) invalidate() {
	for i := 0; i < t.SymbolCount(); i++ {
		t.Symbol(i).invalidate()
	}
	t.hotspot.reset()
}

// Hotspot returns the position of the time slice's symbol slot on the top
// staff line.
func (t *TimeSlice) Hotspot() Point {
	return t.hotspot.get(func() Point {
		m := t.MeasureStart()
		x := 0
		if n := m.SymbolCount(); n > 1 {
			x = 10 + (m.Width()-10)*m.SymbolPosition(t.start)/(n-1)
		}
		return m.Hotspot().Add(x, 0)
	})
}

// LeftPositionedCount returns the number of symbols that are drawn to the
// left of the time slice's slot, such as clefs and key signatures.
func (t *TimeSlice) LeftPositionedCount() int {
	n := 0
	for i := 0; i < t.SymbolCount(); i++ {
		if t.Symbol(i).leftPositioned() {
			n++
		}
	}
	return n
}

// Draw draws every symbol.
func (t *TimeSlice) Draw(g Graphics) {
	for i := 0; i < t.SymbolCount(); i++ {
		t.Symbol(i).Draw(g)
	}
}

func (t *TimeSlice) String() string {
	return fmt.Sprintf("Time-slice, type=EVENT, start time=%v%v", t.start, t.tags)
}

// A positioner assigns horizontal slots to the start times of a measure.
// Each start time takes one slot plus one for each symbol drawn to its left.
type positioner struct {
	entries []slot
	sorted  bool
	count   int
}

type slot struct {
	start    rational.Rational
	toLeft   int
	position int
}

func (p *positioner) find(start rational.Rational) int {
	for i := range p.entries {
		if p.entries[i].start.Equal(start) {
			return i
		}
	}
	return -1
}

func (p *positioner) add(start rational.Rational, toLeft int) {
	i := p.find(start)
	if i < 0 {
		p.entries = append(p.entries, slot{start: start, toLeft: toLeft})
		p.sorted = false
		p.count += 1 + toLeft
		return
	}
	e := &p.entries[i]
	if toLeft > e.toLeft {
		p.count += toLeft - e.toLeft
		e.toLeft = toLeft
	}
}

func (p *positioner) position(start rational.Rational) int {
	if !p.sorted {
		sort.SliceStable(p.entries, func(i, j int) bool {
			return p.entries[i].start.Cmp(p.entries[j].start) < 0
		})
		pos := 0
		for i := range p.entries {
			e := &p.entries[i]
			pos += e.toLeft
			e.position = pos
			pos++
		}
		p.sorted = true
	}
	i := p.find(start)
	if i < 0 {
		return -1
	}
	return p.entries[i].position
}
