// Package export converts a decoded score into a protobuf Struct, which can
// be written as JSON or in the protobuf binary format.
package export

import (
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"moria.us/niffty/score"
)

type object = map[string]interface{}

func point(p score.Point) object {
	return object{"x": p.X, "y": p.Y}
}

// kind returns the node name of a description, such as "Notehead".
func kind(desc string) string {
	if i := strings.IndexByte(desc, ','); i >= 0 {
		return desc[:i]
	}
	return desc
}

func tags(t score.Tags) string {
	return strings.TrimPrefix(t.String(), ", ")
}

func setup(s *score.Setup) object {
	lengths := make([]interface{}, len(s.ChunkLengths))
	for i, e := range s.ChunkLengths {
		lengths[i] = object{"id": e.ID, "length": e.Length}
	}
	info := s.Info
	return object{
		"version":             strings.TrimRight(info.Version, "\x00"),
		"writingProgramType":  info.WritingProgramType.String(),
		"standardUnits":       info.StandardUnits.String(),
		"absoluteUnits":       info.AbsoluteUnits,
		"midiTicksPerQuarter": info.MidiTicksPerQuarter,
		"chunkLengths":        lengths,
		"partCount":           s.PartCount,
	}
}

func symbol(sym score.Symbol) object {
	desc := sym.String()
	return object{
		"type":        kind(desc),
		"description": desc,
		"hotspot":     point(sym.Hotspot()),
	}
}

func timeSlice(ts *score.TimeSlice) object {
	syms := make([]interface{}, ts.SymbolCount())
	for i := range syms {
		syms[i] = symbol(ts.Symbol(i))
	}
	return object{
		"startTime": ts.StartTime().String(),
		"tags":      tags(ts.Tags()),
		"hotspot":   point(ts.Hotspot()),
		"symbols":   syms,
	}
}

func measure(m *score.MeasureStart) object {
	slices := make([]interface{}, m.TimeSliceCount())
	for i := range slices {
		slices[i] = timeSlice(m.TimeSlice(i))
	}
	return object{
		"startTime":  m.StartTime().String(),
		"duration":   m.Duration().String(),
		"tags":       tags(m.Tags()),
		"hotspot":    point(m.Hotspot()),
		"width":      m.Width(),
		"timeSlices": slices,
	}
}

func staff(st *score.Staff) object {
	ms := make([]interface{}, st.MeasureStartCount())
	for i := range ms {
		ms[i] = measure(st.MeasureStart(i))
	}
	return object{
		"tags":          tags(st.Header().Tags()),
		"hotspot":       point(st.Hotspot()),
		"measureStarts": ms,
	}
}

func system(sys *score.System) object {
	staves := make([]interface{}, sys.StaffCount())
	for i := range staves {
		staves[i] = staff(sys.Staff(i))
	}
	return object{
		"tags":      tags(sys.Header().Tags()),
		"hotspot":   point(sys.Hotspot()),
		"startTime": sys.StartTime().String(),
		"duration":  sys.Duration().String(),
		"staves":    staves,
	}
}

func page(p *score.Page) object {
	systems := make([]interface{}, p.SystemCount())
	for i := range systems {
		systems[i] = system(p.System(i))
	}
	return object{
		"tags":    tags(p.Header().Tags()),
		"systems": systems,
	}
}

// Struct returns the score tree, including the computed hotspots, as a
// protobuf Struct.
func Struct(s *score.Score) (*structpb.Struct, error) {
	d := s.Data()
	pages := make([]interface{}, d.PageCount())
	for i := range pages {
		pages[i] = page(d.Page(i))
	}
	return structpb.NewStruct(object{
		"setup": setup(s.Setup()),
		"pages": pages,
	})
}

// JSON returns the score tree as indented JSON.
func JSON(s *score.Score) ([]byte, error) {
	st, err := Struct(s)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
}

// Binary appends the protobuf encoding of the score tree to buf.
func Binary(buf []byte, s *score.Score) ([]byte, error) {
	st, err := Struct(s)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{}.MarshalAppend(buf, st)
}
