// Package score holds the document tree of a NIFF score, the decoder that
// builds it, and the layout engine that positions and draws it.
//
// Geometry is computed lazily. Every derived value is cached on its node
// until Score.Invalidate clears the caches of the whole tree. A Score is not
// safe for concurrent use, not even by readers, because reading geometry
// fills caches.
package score

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"moria.us/niffty/tree"
)

// Layout holds the page constants used to position staves.
type Layout struct {
	StavesX         int     `yaml:"stavesX"`
	StavesY         int     `yaml:"stavesY"`
	StavesWidth     int     `yaml:"stavesWidth"`
	StavesHeight    int     `yaml:"stavesHeight"`
	MaxStaffSpacing float64 `yaml:"maxStaffSpacing"`
}

// DefaultLayout returns the standard page layout.
func DefaultLayout() Layout {
	return Layout{
		StavesX:         15,
		StavesY:         25,
		StavesWidth:     620,
		StavesHeight:    800,
		MaxStaffSpacing: 80,
	}
}

// A Score is a decoded NIFF file.
type Score struct {
	setup  *Setup
	data   *Data
	layout Layout
	log    logrus.FieldLogger

	stavesHotspot cell[Point]
}

// NewScore joins a setup section and a data section. It panics with a
// *tree.HierarchyError if data already belongs to a score.
func NewScore(setup *Setup, data *Data, opts ...Option) *Score {
	o := makeOptions(opts)
	s := &Score{
		setup:  setup,
		data:   data,
		layout: o.layout,
		log:    o.log,
	}
	data.setScore(s)
	return s
}

// Setup returns the setup section.
func (s *Score) Setup() *Setup { return s.setup }

// Data returns the data section.
func (s *Score) Data() *Data { return s.data }

// Layout returns the page layout constants.
func (s *Score) Layout() Layout { return s.layout }

// SetLayout changes the page layout and invalidates all geometry.
func (s *Score) SetLayout(l Layout) {
	s.layout = l
	s.Invalidate()
}

// Invalidate clears every cached geometry value in the score.
func (s *Score) Invalidate() {
	s.data.invalidate()
	s.stavesHotspot.reset()
}

// StavesHotspot returns the top left corner of the first staff on a page.
func (s *Score) StavesHotspot() Point {
	return s.stavesHotspot.get(func() Point {
		return Point{s.layout.StavesX, s.layout.StavesY}
	})
}

// Draw draws every page on top of each other.
func (s *Score) Draw(g Graphics) {
	for i := 0; i < s.data.PageCount(); i++ {
		s.data.Page(i).Draw(g)
	}
}

// Writing program types.
type ProgramType int

const (
	ProgramOther       ProgramType = -1
	ProgramEngraving   ProgramType = 1
	ProgramScanning    ProgramType = 2
	ProgramMIDI        ProgramType = 3
	ProgramSequencer   ProgramType = 4
	ProgramResearch    ProgramType = 5
	ProgramEducational ProgramType = 6
)

func (p ProgramType) String() string {
	switch p {
	case ProgramOther:
		return "OTHER"
	case ProgramEngraving:
		return "ENGRAVING_PROGRAM"
	case ProgramScanning:
		return "SCANNING_PROGRAM"
	case ProgramMIDI:
		return "MIDI_INTERPRETER"
	case ProgramSequencer:
		return "SEQUENCER"
	case ProgramResearch:
		return "RESEARCH_PROGRAM"
	case ProgramEducational:
		return "EDUCATIONAL_PROGRAM"
	}
	return ""
}

// Standard units.
type Units int

const (
	UnitsNone        Units = -1
	UnitsInches      Units = 1
	UnitsCentimeters Units = 2
	UnitsPoints      Units = 3
)

func (u Units) String() string {
	switch u {
	case UnitsNone:
		return "NONE"
	case UnitsInches:
		return "INCHES"
	case UnitsCentimeters:
		return "CENTIMETERS"
	case UnitsPoints:
		return "POINTS"
	}
	return ""
}

// NiffInfo is the content of the nnfo chunk.
type NiffInfo struct {
	Version             string
	WritingProgramType  ProgramType
	StandardUnits       Units
	AbsoluteUnits       int
	MidiTicksPerQuarter int
}

func (n NiffInfo) String() string {
	v := n.Version
	if i := strings.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return fmt.Sprintf("NIFF-Info, version=%s, writing program type=%v, standard units=%v, absolute units=%d, midi ticks per quarter=%d",
		v, n.WritingProgramType, n.StandardUnits, n.AbsoluteUnits, n.MidiTicksPerQuarter)
}

// A ChunkLength is one entry of the chunk length table: the size of the
// fixed part of chunks with the given id, or -1 if the chunk is a list.
type ChunkLength struct {
	ID     string
	Length int
}

// Setup is the setup section of a score.
type Setup struct {
	Info         NiffInfo
	ChunkLengths []ChunkLength
	PartCount    int
	Strings      StringTable
}

// A Header holds the tags of a page, system, or staff header chunk.
type Header struct {
	name string
	tags Tags
}

// Tags returns the header tags.
func (h Header) Tags() Tags { return h.tags }

func (h Header) String() string {
	return h.name + h.tags.String()
}

// NewPageHeader returns a page header with the given tags.
func NewPageHeader(t Tags) Header { return Header{"Page-header", t} }

// NewSystemHeader returns a staff system header with the given tags.
func NewSystemHeader(t Tags) Header { return Header{"System-header", t} }

// NewStaffHeader returns a staff header with the given tags.
func NewStaffHeader(t Tags) Header { return Header{"Staff-header", t} }

// Data is the data section of a score: the root of the page tree.
type Data struct {
	links tree.Links
	score *Score
}

// NewData returns an empty data section.
func NewData() *Data {
	return new(Data)
}

func (d *Data) Links() *tree.Links { return &d.links }

// Score returns the score that owns d, or nil.
func (d *Data) Score() *Score { return d.score }

func (d *Data) setScore(s *Score) {
	if d.score != nil {
		panic(&tree.HierarchyError{Msg: "data section already belongs to a score"})
	}
	if s.data != d {
		panic(&tree.HierarchyError{Msg: "score does not own this data section"})
	}
	d.score = s
}

// AddPage appends a page.
func (d *Data) AddPage(p *Page) {
	tree.Append(d, p)
	d.invalidate()
}

// PageCount returns the number of pages.
func (d *Data) PageCount() int { return tree.Len(d) }

// Page returns page i.
func (d *Data) Page(i int) *Page { return tree.Child(d, i).(*Page) }

func (d *Data) invalidate() {
	for i := 0; i < d.PageCount(); i++ {
		d.Page(i).invalidate()
	}
}
