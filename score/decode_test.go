package score

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"moria.us/niffty/rational"
	"moria.us/niffty/riff"
	"moria.us/niffty/riff/rifftest"
)

func TestLoadMinimal(t *testing.T) {
	s, _ := load(t, niff(page(system(staff()))))
	if n := s.Data().PageCount(); n != 1 {
		t.Fatalf("PageCount() = %d, want 1", n)
	}
	if n := firstStaff(s, 0).MeasureStartCount(); n != 0 {
		t.Errorf("MeasureStartCount() = %d, want 0", n)
	}
	setup := s.Setup()
	wantInfo := NiffInfo{
		Version:             "6b\x00\x00\x00\x00\x00\x00",
		WritingProgramType:  ProgramEngraving,
		StandardUnits:       UnitsPoints,
		AbsoluteUnits:       1,
		MidiTicksPerQuarter: 240,
	}
	if setup.Info != wantInfo {
		t.Errorf("Info = %+v, want %+v", setup.Info, wantInfo)
	}
	if diff := cmp.Diff([]ChunkLength{{"nnfo", 14}}, setup.ChunkLengths); diff != "" {
		t.Errorf("ChunkLengths (-want +got):\n%s", diff)
	}
	if setup.PartCount != 1 {
		t.Errorf("PartCount = %d, want 1", setup.PartCount)
	}
	if got, want := setup.Info.String(), "NIFF-Info, version=6b, writing program type=ENGRAVING_PROGRAM, standard units=POINTS, absolute units=1, midi ticks per quarter=240"; got != want {
		t.Errorf("Info.String() = %q, want %q", got, want)
	}
}

func TestLoadStructure(t *testing.T) {
	s, _ := load(t, niff(
		page(system(
			staff(
				measure(0, 1),
				event(0, 1), note(filled, 4, 1, 4),
				event(1, 4), note(filled, 5, 1, 4), note(filled, 7, 1, 4),
				measure(1, 2),
				event(0, 1), note(filled, 2, 1, 2),
			),
			staff(note(filled, 4, 1, 1)),
		)),
		page(),
	))
	if n := s.Data().PageCount(); n != 2 {
		t.Fatalf("PageCount() = %d, want 2", n)
	}
	st := firstStaff(s, 0)
	if n := st.MeasureStartCount(); n != 2 {
		t.Fatalf("MeasureStartCount() = %d, want 2", n)
	}
	m := st.MeasureStart(0)
	if n := m.TimeSliceCount(); n != 2 {
		t.Fatalf("TimeSliceCount() = %d, want 2", n)
	}
	if n := m.TimeSlice(1).SymbolCount(); n != 2 {
		t.Errorf("SymbolCount() = %d, want 2", n)
	}
	if d := m.Duration(); !d.Equal(rational.Must(1, 2)) {
		t.Errorf("Duration() = %v, want 1/2", d)
	}
	n, ok := m.TimeSlice(0).Symbol(0).(*Notehead)
	if !ok {
		t.Fatalf("Symbol(0) is %T, want *Notehead", m.TimeSlice(0).Symbol(0))
	}
	if n.Shape() != NoteheadFilled || n.StaffStep() != 4 || !n.Duration().Equal(rational.Must(1, 4)) {
		t.Errorf("notehead = %v", n)
	}

	// Symbols before any time slice go in a default measure and slice.
	st2 := firstStaff(s, 1)
	if st2.MeasureStartCount() != 1 || st2.MeasureStart(0).TimeSliceCount() != 1 {
		t.Fatalf("second staff: %d measures", st2.MeasureStartCount())
	}
	if ts := st2.MeasureStart(0).TimeSlice(0); !ts.StartTime().IsZero() || ts.SymbolCount() != 1 {
		t.Errorf("default slice = %v with %d symbols", ts, ts.SymbolCount())
	}
}

func TestLoadSkipsUnknown(t *testing.T) {
	junk := func() node { return chunk("junk", bs(1, 2, 3)) }
	data := rifftest.Form("NIFF",
		setupList(junk(), list("xtra", junk())),
		list("data",
			junk(),
			list("page",
				chunk("pghd", tag(0x40, 9)),
				junk(),
				list("syst",
					chunk("syhd"),
					junk(),
					list("staf",
						chunk("sthd"),
						measure(0, 1),
						event(0, 1),
						junk(),
						note(filled, 4, 1, 4, tag(0x40, 1, 2, 3), idTag(7)),
						junk(),
					),
				),
			),
		),
	)
	s, hook := load(t, data)
	ts := firstStaff(s, 0).MeasureStart(0).TimeSlice(0)
	if n := ts.SymbolCount(); n != 1 {
		t.Fatalf("SymbolCount() = %d, want 1", n)
	}
	if id, ok := ts.Symbol(0).Tags().ID(); !ok || id != 7 {
		t.Errorf("ID() = %d, %t, want 7", id, ok)
	}
	skipped := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel && strings.HasPrefix(e.Message, "skipping") {
			skipped++
		}
	}
	// Six chunks, one list, two tags.
	if skipped != 9 {
		t.Errorf("%d skip messages, want 9", skipped)
	}
}

func TestLoadTrailingUnknown(t *testing.T) {
	type testcase struct {
		name string
		data []byte
	}
	cases := []testcase{
		{"data", rifftest.Form("NIFF", setupList(), list("data", page(system(staff())), chunk("junk")))},
		{"page", niff(list("page", chunk("pghd"), system(staff()), chunk("junk", bs(1))))},
		{"system", niff(page(list("syst", chunk("syhd"), staff(), chunk("junk", bs(1, 2)))))},
		{"setup", rifftest.Form("NIFF", setupList(chunk("junk", bs(1, 2, 3))), list("data", page(system(staff()))))},
	}
	for _, c := range cases {
		s, err := Load(bytes.NewReader(c.data))
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if n := s.Data().PageCount(); n != 1 {
			t.Errorf("%s: PageCount() = %d, want 1", c.name, n)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	type testcase struct {
		name string
		data []byte
		msg  string
	}
	good := niff(page(system(staff(measure(0, 1), event(0, 1), note(filled, 4, 1, 4)))))
	cases := []testcase{
		{"form", rifftest.Form("RMID"), `expected "NIFF"`},
		{"setup order", rifftest.Form("NIFF", list("data"), setupList()), `expected "setp"`},
		{"no info", rifftest.Form("NIFF",
			list("setp", chunk("clt "), list("prts")), list("data")), "missing NIFF information"},
		{"no lengths", rifftest.Form("NIFF",
			list("setp", infoChunk(), list("prts")), list("data")), "missing chunk length"},
		{"no parts", rifftest.Form("NIFF",
			list("setp", chunk("clt "), infoChunk()), list("data")), "missing parts"},
		{"clef shape", niff(page(system(staff(chunk("clef", bs(9, 0, 0)))))), "illegal value for clef shape"},
		{"barline type", niff(page(system(staff(chunk("barl", bs(3, 1), short(1)))))), "illegal value for barline type"},
		{"rest shape", niff(page(system(staff(chunk("rest", bs(0, 0), short(1), short(4)))))), "illegal value for rest shape"},
		{"slice type", niff(page(system(staff(measure(0, 1), note(filled, 4, 1, 4), slice(3, 0, 1))))), "expected time slice type 2, got 3"},
		{"short tag", niff(page(system(staff(note(filled, 4, 1, 4, tag(0x12, 1)))))), "tag too short"},
	}
	for _, c := range cases {
		_, err := Load(bytes.NewReader(c.data))
		if err == nil {
			t.Errorf("%s: no error", c.name)
			continue
		}
		var fe *riff.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s: error %v is not a FormatError", c.name, err)
		}
		if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: error %q does not contain %q", c.name, err, c.msg)
		}
	}

	if _, err := Load(bytes.NewReader([]byte("RIFF\x00\x00\x00\x04NIFF"))); !errors.Is(err, riff.ErrNotRIFX) {
		t.Errorf("RIFF input: got %v, want ErrNotRIFX", err)
	}
	if _, err := Load(bytes.NewReader(good[:len(good)-6])); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated input: got %v, want ErrUnexpectedEOF", err)
	}
	zero := niff(page(system(staff(measure(0, 0)))))
	if _, err := Load(bytes.NewReader(zero)); !errors.Is(err, rational.ErrZeroDenominator) {
		t.Errorf("zero denominator: got %v, want ErrZeroDenominator", err)
	}
}

func TestLoadMerge(t *testing.T) {
	data := niff(page(system(staff(
		measure(0, 1),
		event(0, 1), note(filled, 4, 1, 4),
		measure(0, 1, idTag(5)),
		event(1, 4), note(filled, 4, 1, 4),
		event(1, 4, tag(0x13)), note(filled, 6, 1, 4),
	))))
	type testcase struct {
		policy    MergePolicy
		measureID bool
		invisible bool
	}
	cases := []testcase{
		{MergeKeepFirst, false, false},
		{MergeOverlay, true, true},
	}
	for _, c := range cases {
		s, _ := load(t, data, WithMergePolicy(c.policy))
		st := firstStaff(s, 0)
		if n := st.MeasureStartCount(); n != 1 {
			t.Errorf("%v: MeasureStartCount() = %d, want 1", c.policy, n)
			continue
		}
		m := st.MeasureStart(0)
		if n := m.TimeSliceCount(); n != 2 {
			t.Errorf("%v: TimeSliceCount() = %d, want 2", c.policy, n)
			continue
		}
		if n := m.TimeSlice(1).SymbolCount(); n != 2 {
			t.Errorf("%v: SymbolCount() = %d, want 2", c.policy, n)
		}
		if _, ok := m.Tags().ID(); ok != c.measureID {
			t.Errorf("%v: measure ID set = %t, want %t", c.policy, ok, c.measureID)
		}
		if got := m.TimeSlice(1).Tags().Invisible(); got != c.invisible {
			t.Errorf("%v: slice invisible = %t, want %t", c.policy, got, c.invisible)
		}
	}
}

func TestParseMergePolicy(t *testing.T) {
	for _, p := range []MergePolicy{MergeKeepFirst, MergeOverlay} {
		got, err := ParseMergePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseMergePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseMergePolicy("last"); err == nil {
		t.Error(`ParseMergePolicy("last") succeeded`)
	}
}

func TestLoadLyric(t *testing.T) {
	data := rifftest.Form("NIFF",
		setupList(chunk("stbl", []byte("la\x00caf\xe9\x00"))),
		list("data", page(system(staff(
			measure(0, 1),
			event(0, 1),
			note(filled, 4, 1, 4),
			chunk("lyrc", long(3), bs(2)),
		)))),
	)
	s, _ := load(t, data)
	l, ok := firstStaff(s, 0).MeasureStart(0).TimeSlice(0).Symbol(1).(*Lyric)
	if !ok {
		t.Fatal("second symbol is not a lyric")
	}
	if l.Text() != "café" || l.VerseID() != 2 {
		t.Errorf("lyric = %q verse %d, want \"café\" verse 2", l.Text(), l.VerseID())
	}
	if got, want := l.String(), `Lyric, text="café", lyricVerseID=2`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringTable(t *testing.T) {
	table := StringTable("abc\x00x\xe9\x00\x01x\xc3\xa9\x00end")
	type testcase struct {
		offset int
		want   string
	}
	cases := []testcase{
		{0, "abc"},
		{1, "bc"},
		{4, "xé"},
		{3, ""},
		{-1, ""},
		{len(table), ""},
		{len(table) - 3, "end"},
	}
	for _, c := range cases {
		if got := table.Lookup(c.offset); got != c.want {
			t.Errorf("Lookup(%d) = %q, want %q", c.offset, got, c.want)
		}
	}
}

func TestStaffStepOffsetY(t *testing.T) {
	cases := []struct{ step, y int }{
		{8, 0}, {7, 2}, {6, 5}, {4, 10}, {1, 17}, {0, 20}, {-1, 22}, {-2, 25}, {9, -3}, {10, -5},
	}
	for _, c := range cases {
		if y := staffStepOffsetY(c.step); y != c.y {
			t.Errorf("staffStepOffsetY(%d) = %d, want %d", c.step, y, c.y)
		}
	}
}
