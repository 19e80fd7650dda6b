package score

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"moria.us/niffty/mapfile"
	"moria.us/niffty/rational"
	"moria.us/niffty/riff"
)

// FormID is the RIFX form type of a NIFF file.
const FormID = "NIFF"

// A MergePolicy says what happens to the tags of a time slice chunk whose
// start time repeats the previous slice of the same kind. The later slice
// is always merged into the earlier one.
type MergePolicy int

const (
	// MergeKeepFirst discards the tags of the later slice.
	MergeKeepFirst MergePolicy = iota
	// MergeOverlay sets the fields present in the later slice's tags on the
	// earlier slice.
	MergeOverlay
)

var errUnknownMerge = errors.New("unknown merge policy")

func (p MergePolicy) String() string {
	switch p {
	case MergeKeepFirst:
		return "keep-first"
	case MergeOverlay:
		return "overlay"
	}
	return fmt.Sprintf("MergePolicy(%d)", int(p))
}

// ParseMergePolicy parses "keep-first" or "overlay".
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "keep-first", "":
		return MergeKeepFirst, nil
	case "overlay":
		return MergeOverlay, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownMerge, s)
}

func (p MergePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *MergePolicy) UnmarshalText(b []byte) error {
	v, err := ParseMergePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

type options struct {
	layout Layout
	merge  MergePolicy
	log    logrus.FieldLogger
}

// An Option changes how a score is loaded or laid out.
type Option func(*options)

func makeOptions(opts []Option) options {
	o := options{
		layout: DefaultLayout(),
		merge:  MergeKeepFirst,
		log:    logrus.StandardLogger(),
	}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// WithLayout sets the page layout constants.
func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

// WithMergePolicy sets how repeated time slices are merged.
func WithMergePolicy(p MergePolicy) Option {
	return func(o *options) { o.merge = p }
}

// WithLogger sets the logger for decoder and layout diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// Load decodes a NIFF file.
func Load(r io.ReadSeeker, opts ...Option) (*Score, error) {
	o := makeOptions(opts)
	root, err := riff.NewReader(r, FormID)
	if err != nil {
		return nil, err
	}
	d := decoder{merge: o.merge, log: o.log}
	setup, err := d.readSetup(root)
	if err != nil {
		return nil, err
	}
	d.strings = setup.Strings
	data, err := d.readData(root)
	if err != nil {
		return nil, err
	}
	return NewScore(setup, data, opts...), nil
}

// LoadFile decodes the NIFF file at path. The file is memory mapped where
// the platform allows it.
func LoadFile(path string, opts ...Option) (*Score, error) {
	f, err := mapfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f.Reader(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

type decoder struct {
	merge   MergePolicy
	log     logrus.FieldLogger
	strings StringTable
}

func (d *decoder) skip(c *riff.Chunk) error {
	id, err := c.PeekFOURCC()
	if err != nil {
		return err
	}
	if id == "LIST" {
		if lid, err := c.PeekListID(); err == nil {
			id += " " + lid
		}
	}
	d.log.WithField("chunk", c.ID()).Debugf("skipping chunk %q", id)
	return c.SkipChunk()
}

func (d *decoder) readSetup(root *riff.Chunk) (*Setup, error) {
	c, err := root.OpenList("setp")
	if err != nil {
		return nil, err
	}
	s := new(Setup)
	var haveLengths, haveInfo, haveParts bool
	for c.Remaining() > 0 {
		id, err := c.PeekFOURCC()
		if err != nil {
			return nil, err
		}
		switch id {
		case "clt ":
			if s.ChunkLengths, err = readChunkLengths(c); err != nil {
				return nil, err
			}
			haveLengths = true
		case "nnfo":
			if s.Info, err = readInfo(c); err != nil {
				return nil, err
			}
			haveInfo = true
		case "stbl":
			if s.Strings, err = readStringTable(c); err != nil {
				return nil, err
			}
		case "LIST":
			lid, err := c.PeekListID()
			if err != nil {
				return nil, err
			}
			if lid != "prts" {
				if err := d.skip(c); err != nil {
					return nil, err
				}
				continue
			}
			if s.PartCount, err = countParts(c); err != nil {
				return nil, err
			}
			haveParts = true
		default:
			if err := d.skip(c); err != nil {
				return nil, err
			}
		}
	}
	switch {
	case !haveLengths:
		return nil, c.Errorf("missing chunk length table")
	case !haveInfo:
		return nil, c.Errorf("missing NIFF information chunk")
	case !haveParts:
		return nil, c.Errorf("missing parts list")
	}
	return s, c.SkipRemaining()
}

func readChunkLengths(parent *riff.Chunk) ([]ChunkLength, error) {
	c, err := parent.Open("clt ")
	if err != nil {
		return nil, err
	}
	var r []ChunkLength
	for c.Remaining() >= 8 {
		id, err := c.ReadFOURCC()
		if err != nil {
			return nil, err
		}
		n, err := c.ReadLong()
		if err != nil {
			return nil, err
		}
		r = append(r, ChunkLength{id, n})
	}
	return r, c.SkipRemaining()
}

func readInfo(parent *riff.Chunk) (NiffInfo, error) {
	var n NiffInfo
	c, err := parent.Open("nnfo")
	if err != nil {
		return n, err
	}
	var v [8]byte
	for i := range v {
		if v[i], err = c.ReadByte(); err != nil {
			return n, err
		}
	}
	n.Version = string(v[:])
	p, err := c.ReadSignedByte()
	if err != nil {
		return n, err
	}
	n.WritingProgramType = ProgramType(p)
	u, err := c.ReadSignedByte()
	if err != nil {
		return n, err
	}
	n.StandardUnits = Units(u)
	if n.AbsoluteUnits, err = c.ReadShort(); err != nil {
		return n, err
	}
	if n.MidiTicksPerQuarter, err = c.ReadShort(); err != nil {
		return n, err
	}
	return n, c.SkipRemaining()
}

func readStringTable(parent *riff.Chunk) (StringTable, error) {
	c, err := parent.Open("stbl")
	if err != nil {
		return nil, err
	}
	t := make(StringTable, 0, c.Remaining())
	for c.Remaining() > 0 {
		b, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		t = append(t, b)
	}
	return t, c.SkipRemaining()
}

func countParts(parent *riff.Chunk) (int, error) {
	c, err := parent.OpenList("prts")
	if err != nil {
		return 0, err
	}
	n := 0
	for c.Remaining() > 0 {
		if err := c.SkipChunk(); err != nil {
			return 0, err
		}
		n++
	}
	return n, c.SkipRemaining()
}

func (d *decoder) readData(root *riff.Chunk) (*Data, error) {
	c, err := root.OpenList("data")
	if err != nil {
		return nil, err
	}
	data := NewData()
	for c.Remaining() > 0 {
		lid, err := c.PeekListID()
		if err != nil {
			return nil, err
		}
		if lid != "page" {
			if err := d.skip(c); err != nil {
				return nil, err
			}
			continue
		}
		p, err := d.readPage(c)
		if err != nil {
			return nil, err
		}
		data.AddPage(p)
	}
	return data, c.SkipRemaining()
}

func (d *decoder) readHeader(parent *riff.Chunk, id string) (Tags, error) {
	c, err := parent.Open(id)
	if err != nil {
		return Tags{}, err
	}
	return readTags(c, d.log)
}

func (d *decoder) readPage(parent *riff.Chunk) (*Page, error) {
	c, err := parent.OpenList("page")
	if err != nil {
		return nil, err
	}
	t, err := d.readHeader(c, "pghd")
	if err != nil {
		return nil, err
	}
	p := NewPage(NewPageHeader(t))
	for c.Remaining() > 0 {
		lid, err := c.PeekListID()
		if err != nil {
			return nil, err
		}
		if lid != "syst" {
			if err := d.skip(c); err != nil {
				return nil, err
			}
			continue
		}
		s, err := d.readSystem(c)
		if err != nil {
			return nil, err
		}
		p.AddSystem(s)
	}
	return p, c.SkipRemaining()
}

func (d *decoder) readSystem(parent *riff.Chunk) (*System, error) {
	c, err := parent.OpenList("syst")
	if err != nil {
		return nil, err
	}
	t, err := d.readHeader(c, "syhd")
	if err != nil {
		return nil, err
	}
	s := NewSystem(NewSystemHeader(t))
	for c.Remaining() > 0 {
		lid, err := c.PeekListID()
		if err != nil {
			return nil, err
		}
		if lid != "staf" {
			if err := d.skip(c); err != nil {
				return nil, err
			}
			continue
		}
		st, err := d.readStaff(c)
		if err != nil {
			return nil, err
		}
		s.AddStaff(st)
	}
	return s, c.SkipRemaining()
}

// Time slice types in the first byte of a tmsl chunk.
const (
	sliceMeasureStart = 1
	sliceEvent        = 2
)

// readStaff reads the staff header followed by measure start and event time
// slices and their symbols. A staff whose content does not begin with a
// measure start gets one at time zero.
func (d *decoder) readStaff(parent *riff.Chunk) (*Staff, error) {
	c, err := parent.OpenList("staf")
	if err != nil {
		return nil, err
	}
	t, err := d.readHeader(c, "sthd")
	if err != nil {
		return nil, err
	}
	st := NewStaff(NewStaffHeader(t))
	if c.Remaining() == 0 {
		return st, c.SkipRemaining()
	}

	m, err := d.maybeSlice(c, sliceMeasureStart)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = &timeSlice{start: rational.Zero}
	}
	for {
		var ms *MeasureStart
		if n := st.MeasureStartCount(); n > 0 && st.MeasureStart(n-1).start.Equal(m.start) {
			ms = st.MeasureStart(n - 1)
			ms.tags = d.mergeTags(ms.tags, m.tags)
		} else {
			ms = NewMeasureStart(m.start, m.tags)
			st.AddMeasureStart(ms)
		}
		if err := d.readTimeSlices(c, ms); err != nil {
			return nil, err
		}
		if c.Remaining() == 0 {
			break
		}
		if m, err = d.readSlice(c, sliceMeasureStart); err != nil {
			return nil, err
		}
	}
	return st, c.SkipRemaining()
}

// readTimeSlices reads the event time slices of a measure, stopping at the
// next measure start or the end of the staff.
func (d *decoder) readTimeSlices(c *riff.Chunk, ms *MeasureStart) error {
	if c.Remaining() == 0 {
		return nil
	}
	if kind, err := d.peekSliceType(c); err != nil || kind == sliceMeasureStart {
		return err
	}
	e, err := d.maybeSlice(c, sliceEvent)
	if err != nil {
		return err
	}
	if e == nil {
		e = &timeSlice{start: rational.Zero}
	}
	for {
		var ts *TimeSlice
		if n := ms.TimeSliceCount(); n > 0 && ms.TimeSlice(n-1).start.Equal(e.start) {
			ts = ms.TimeSlice(n - 1)
			ts.tags = d.mergeTags(ts.tags, e.tags)
		} else {
			ts = NewTimeSlice(e.start, e.tags)
			ms.AddTimeSlice(ts)
		}
		if err := d.readSymbols(c, ts); err != nil {
			return err
		}
		if c.Remaining() == 0 {
			return nil
		}
		b, err := c.PeekFirstByte()
		if err != nil {
			return err
		}
		if b == sliceMeasureStart {
			return nil
		}
		if e, err = d.readSlice(c, sliceEvent); err != nil {
			return err
		}
	}
}

func (d *decoder) mergeTags(old, t Tags) Tags {
	if d.merge == MergeOverlay {
		return old.Overlay(t)
	}
	return old
}

// peekSliceType returns the type byte of the next chunk if it is a time
// slice, or zero.
func (d *decoder) peekSliceType(c *riff.Chunk) (int, error) {
	id, err := c.PeekFOURCC()
	if err != nil || id != "tmsl" {
		return 0, err
	}
	return c.PeekFirstByte()
}

type timeSlice struct {
	start rational.Rational
	tags  Tags
}

// maybeSlice reads the next chunk if it is a time slice of the given type.
func (d *decoder) maybeSlice(c *riff.Chunk, kind int) (*timeSlice, error) {
	got, err := d.peekSliceType(c)
	if err != nil || got != kind {
		return nil, err
	}
	return d.readSlice(c, kind)
}

// readSlice reads a time slice chunk, which must have the given type.
func (d *decoder) readSlice(parent *riff.Chunk, kind int) (*timeSlice, error) {
	c, err := parent.Open("tmsl")
	if err != nil {
		return nil, err
	}
	got, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	if int(got) != kind {
		return nil, c.Errorf("expected time slice type %d, got %d", kind, got)
	}
	start, err := readRational(c, "start time")
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return &timeSlice{start, t}, nil
}

// readRational reads a numerator and denominator, each a short.
func readRational(c *riff.Chunk, what string) (rational.Rational, error) {
	n, err := c.ReadShort()
	if err != nil {
		return rational.Zero, err
	}
	den, err := c.ReadShort()
	if err != nil {
		return rational.Zero, err
	}
	r, err := rational.New(n, den)
	if err != nil {
		return rational.Zero, &riff.FormatError{Chunk: c.ID(), Msg: "bad " + what, Err: err}
	}
	return r, nil
}

// readSymbols reads symbol chunks into ts until the next time slice or the
// end of the staff.
func (d *decoder) readSymbols(c *riff.Chunk, ts *TimeSlice) error {
	for c.Remaining() > 0 {
		id, err := c.PeekFOURCC()
		if err != nil {
			return err
		}
		if id == "tmsl" {
			return nil
		}
		read, ok := symbolDecoders[id]
		if !ok {
			if err := d.skip(c); err != nil {
				return err
			}
			continue
		}
		sc, err := c.Open(id)
		if err != nil {
			return err
		}
		s, err := read(d, sc)
		if err != nil {
			return err
		}
		ts.AddSymbol(s)
	}
	return nil
}
