package score

import (
	"moria.us/niffty/rational"
	"moria.us/niffty/tree"
)

// A Page holds staff systems.
type Page struct {
	links  tree.Links
	header Header

	spacing cell[float64]
}

// NewPage returns an empty page.
func NewPage(h Header) *Page {
	return &Page{header: h}
}

func (p *Page) Links() *tree.Links { return &p.links }

// Data returns the data section containing p.
func (p *Page) Data() *Data { return tree.Parent(p).(*Data) }

// Score returns the score containing p.
func (p *Page) Score() *Score { return p.Data().Score() }

// Header returns the page header.
func (p *Page) Header() Header { return p.header }

// AddSystem appends a staff system.
func (p *Page) AddSystem(s *System) { tree.Append(p, s) }

// SystemCount returns the number of staff systems.
func (p *Page) SystemCount() int { return tree.Len(p) }

// System returns system i.
func (p *Page) System(i int) *System { return tree.Child(p, i).(*System) }

// StaffSpacingY returns the vertical distance between staves on this page:
// the staves height shared by all staves, but no more than the layout
// maximum. A page without staves has spacing 1.
func (p *Page) StaffSpacingY() float64 {
	return p.spacing.get(func() float64 {
		n := 0
		for i := 0; i < p.SystemCount(); i++ {
			n += p.System(i).StaffCount()
		}
		if n == 0 {
			return 1
		}
		l := p.Score().layout
		return min(float64(l.StavesHeight)/float64(n), l.MaxStaffSpacing)
	})
}

func (p *Page) invalidate() {
	for i := 0; i < p.SystemCount(); i++ {
		p.System(i).invalidate()
	}
	p.spacing.reset()
}

// Draw draws the page.
func (p *Page) Draw(g Graphics) {
	for i := 0; i < p.SystemCount(); i++ {
		p.System(i).Draw(g)
	}
}

// A System is a group of staves played together.
type System struct {
	links  tree.Links
	header Header

	hotspot  cell[Point]
	start    cell[rational.Rational]
	duration cell[rational.Rational]
}

// NewSystem returns an empty staff system.
func NewSystem(h Header) *System {
	return &System{header: h}
}

func (s *System) Links() *tree.Links { return &s.links }

// Page returns the page containing s.
func (s *System) Page() *Page { return tree.Parent(s).(*Page) }

// Score returns the score containing s.
func (s *System) Score() *Score { return s.Page().Score() }

// Header returns the system header.
func (s *System) Header() Header { return s.header }

// AddStaff appends a staff.
func (s *System) AddStaff(st *Staff) { tree.Append(s, st) }

// StaffCount returns the number of staves.
func (s *System) StaffCount() int { return tree.Len(s) }

// Staff returns staff i.
func (s *System) Staff(i int) *Staff { return tree.Child(s, i).(*Staff) }

func (s *System) invalidate() {
	for i := 0; i < s.StaffCount(); i++ {
		s.Staff(i).invalidate()
	}
	s.hotspot.reset()
	s.start.reset()
	s.duration.reset()
}

// Hotspot returns the top left corner of the first staff. Systems are
// stacked below the staves of earlier systems on the page.
func (s *System) Hotspot() Point {
	return s.hotspot.get(func() Point {
		page := s.Page()
		above := 0
		for i := 0; i < tree.Index(s); i++ {
			above += page.System(i).StaffCount()
		}
		return s.Score().StavesHotspot().Add(0, int(float64(above)*page.StaffSpacingY()))
	})
}

// StartTime returns the start time of the first measure of the first staff.
func (s *System) StartTime() rational.Rational {
	return s.start.get(func() rational.Rational {
		if s.StaffCount() == 0 || s.Staff(0).MeasureStartCount() == 0 {
			return rational.Zero
		}
		return s.Staff(0).MeasureStart(0).StartTime()
	})
}

// Duration returns the time from the system start to the end of the last
// measure of the first staff.
func (s *System) Duration() rational.Rational {
	return s.duration.get(func() rational.Rational {
		if s.StaffCount() == 0 || s.Staff(0).MeasureStartCount() == 0 {
			return rational.Zero
		}
		st := s.Staff(0)
		last := st.MeasureStart(st.MeasureStartCount() - 1)
		r := rational.NewRatio(last.StartTime())
		r.Sub(s.StartTime())
		r.Add(last.Duration())
		return r.Rational()
	})
}

// Width returns the width of the staves.
func (s *System) Width() int {
	return s.Score().layout.StavesWidth
}

// Draw draws the system bracket line and every staff.
func (s *System) Draw(g Graphics) {
	n := s.StaffCount()
	if n == 0 {
		return
	}
	top := s.Hotspot()
	bottom := s.Staff(n-1).Hotspot().Y + staffStepOffsetY(0)
	g.DrawLine(top.X, top.Y, top.X, bottom)
	for i := 0; i < n; i++ {
		s.Staff(i).Draw(g)
	}
}

// A Staff holds the measures of one staff in a system.
type Staff struct {
	links  tree.Links
	header Header

	hotspot cell[Point]
}

// NewStaff returns an empty staff.
func NewStaff(h Header) *Staff {
	return &Staff{header: h}
}

func (s *Staff) Links() *tree.Links { return &s.links }

// System returns the staff system containing s.
func (s *Staff) System() *System { return tree.Parent(s).(*System) }

// Header returns the staff header.
func (s *Staff) Header() Header { return s.header }

// AddMeasureStart appends a measure.
func (s *Staff) AddMeasureStart(m *MeasureStart) { tree.Append(s, m) }

// MeasureStartCount returns the number of measures.
func (s *Staff) MeasureStartCount() int { return tree.Len(s) }

// MeasureStart returns measure i.
func (s *Staff) MeasureStart(i int) *MeasureStart { return tree.Child(s, i).(*MeasureStart) }

func (s *Staff) invalidate() {
	for i := 0; i < s.MeasureStartCount(); i++ {
		s.MeasureStart(i).invalidate()
	}
	s.hotspot.reset()
}

// Hotspot returns the position of the top staff line's left end.
func (s *Staff) Hotspot() Point {
	return s.hotspot.get(func() Point {
		sys := s.System()
		return sys.Hotspot().Add(0, int(float64(tree.Index(s))*sys.Page().StaffSpacingY()))
	})
}

// Draw draws the five staff lines and the staff content.
func (s *Staff) Draw(g Graphics) {
	p := s.Hotspot()
	w := s.System().Width()
	for y := 0; y <= 20; y += 5 {
		g.DrawLine(p.X, p.Y+y, p.X+w, p.Y+y)
	}
	for i := 0; i < s.MeasureStartCount(); i++ {
		s.MeasureStart(i).Draw(g)
	}
}
