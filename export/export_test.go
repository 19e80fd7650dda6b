package export

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	"moria.us/niffty/score"
	"moria.us/niffty/score/scoretest"
)

func load(t *testing.T) *score.Score {
	t.Helper()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s, err := score.Load(bytes.NewReader(scoretest.Sample()), score.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStruct(t *testing.T) {
	s := load(t)
	st, err := Struct(s)
	if err != nil {
		t.Fatal(err)
	}
	setup := st.Fields["setup"].GetStructValue()
	if v := setup.Fields["version"].GetStringValue(); v != "6b" {
		t.Errorf("version = %q, want 6b", v)
	}
	if v := setup.Fields["midiTicksPerQuarter"].GetNumberValue(); v != 240 {
		t.Errorf("midiTicksPerQuarter = %v, want 240", v)
	}
	pages := st.Fields["pages"].GetListValue().GetValues()
	if len(pages) != 1 {
		t.Fatalf("%d pages, want 1", len(pages))
	}
	sys := pages[0].GetStructValue().Fields["systems"].GetListValue().GetValues()[0].GetStructValue()
	staves := sys.Fields["staves"].GetListValue().GetValues()
	if len(staves) != 2 {
		t.Fatalf("%d staves, want 2", len(staves))
	}
	m := staves[0].GetStructValue().Fields["measureStarts"].GetListValue().GetValues()[0].GetStructValue()
	if d := m.Fields["duration"].GetStringValue(); d != "1/1" {
		t.Errorf("duration = %q, want 1/1", d)
	}
	ts := m.Fields["timeSlices"].GetListValue().GetValues()[0].GetStructValue()
	sym := ts.Fields["symbols"].GetListValue().GetValues()[0].GetStructValue()
	if k := sym.Fields["type"].GetStringValue(); k != "Clef" {
		t.Errorf("first symbol type = %q, want Clef", k)
	}
	clef := s.Data().Page(0).System(0).Staff(0).MeasureStart(0).TimeSlice(0).Symbol(0)
	hs := sym.Fields["hotspot"].GetStructValue()
	want := clef.Hotspot()
	if x, y := hs.Fields["x"].GetNumberValue(), hs.Fields["y"].GetNumberValue(); x != float64(want.X) || y != float64(want.Y) {
		t.Errorf("hotspot = (%v,%v), want %v", x, y, want)
	}
}

func TestEncodings(t *testing.T) {
	s := load(t)
	want, err := Struct(s)
	if err != nil {
		t.Fatal(err)
	}

	js, err := JSON(s)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON structpb.Struct
	if err := protojson.Unmarshal(js, &fromJSON); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, &fromJSON, protocmp.Transform()); diff != "" {
		t.Errorf("JSON round trip (-want +got):\n%s", diff)
	}

	bin, err := Binary([]byte("x"), s)
	if err != nil {
		t.Fatal(err)
	}
	if bin[0] != 'x' {
		t.Fatal("Binary did not append")
	}
	var fromBinary structpb.Struct
	if err := proto.Unmarshal(bin[1:], &fromBinary); err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(want, &fromBinary) {
		t.Error("binary round trip differs")
	}
}
