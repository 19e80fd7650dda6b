package score

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"moria.us/niffty/riff/rifftest"
)

type node = rifftest.Node

var (
	chunk = rifftest.Chunk
	list  = rifftest.List
	bs    = rifftest.Bytes
	short = rifftest.Short
	long  = rifftest.Long
	tag   = rifftest.Tag
)

func infoChunk() node {
	return chunk("nnfo", []byte("6b\x00\x00\x00\x00\x00\x00"), bs(1, 3), short(1), short(240))
}

func setupList(extra ...node) node {
	children := []node{chunk("clt ", []byte("nnfo"), long(14)), infoChunk(), list("prts", chunk("prt ", short(0)))}
	return list("setp", append(children, extra...)...)
}

func niff(pages ...node) []byte {
	return rifftest.Form("NIFF", setupList(), list("data", pages...))
}

func page(systems ...node) node {
	return list("page", append([]node{chunk("pghd")}, systems...)...)
}

func system(staves ...node) node {
	return list("syst", append([]node{chunk("syhd")}, staves...)...)
}

func staff(content ...node) node {
	return list("staf", append([]node{chunk("sthd")}, content...)...)
}

func slice(kind, num, den int, tags ...[]byte) node {
	return chunk("tmsl", append([][]byte{bs(kind), short(num), short(den)}, tags...)...)
}

func measure(num, den int, tags ...[]byte) node { return slice(1, num, den, tags...) }
func event(num, den int, tags ...[]byte) node   { return slice(2, num, den, tags...) }

func note(shape, step, num, den int, tags ...[]byte) node {
	return chunk("note", append([][]byte{bs(shape, step), short(num), short(den)}, tags...)...)
}

func stem(tags ...[]byte) node { return chunk("stem", tags...) }

func beam(left, right int, tags ...[]byte) node {
	return chunk("beam", append([][]byte{bs(left, right)}, tags...)...)
}

func tie(tags ...[]byte) node { return chunk("tie ", tags...) }

func idTag(v int) []byte    { return tag(0x12, short(v)...) }
func nodesTag(v int) []byte { return tag(0x1c, short(v)...) }

// stemDownTag places a stem below its noteheads.
var stemDownTag = tag(0x16, 0, PlaceBelow, 0)

const filled = int(NoteheadFilled)

// load decodes data with a logger whose entries are recorded.
func load(t *testing.T, data []byte, opts ...Option) (*Score, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s, err := Load(bytes.NewReader(data), append([]Option{WithLogger(log)}, opts...)...)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, hook
}

func firstStaff(s *Score, i int) *Staff {
	return s.Data().Page(0).System(0).Staff(i)
}

// recorder is a Graphics that records every primitive as a string.
type recorder struct {
	ops []string
	dx  int
	dy  int
}

func (r *recorder) add(format string, a ...interface{}) {
	r.ops = append(r.ops, fmt.Sprintf(format, a...))
}

func (r *recorder) DrawArc(x, y, w, h, start, arc int) {
	r.add("arc %d %d %d %d %d %d", x+r.dx, y+r.dy, w, h, start, arc)
}

func (r *recorder) DrawLine(x1, y1, x2, y2 int) {
	r.add("line %d %d %d %d", x1+r.dx, y1+r.dy, x2+r.dx, y2+r.dy)
}

func (r *recorder) DrawString(text string, x, y int) {
	r.add("string %q %d %d", text, x+r.dx, y+r.dy)
}

func (r *recorder) Translate(dx, dy int) {
	r.dx += dx
	r.dy += dy
}

func (r *recorder) DrawPolyline(xs, ys []int, n int) {
	r.add("polyline %d %d %d", n, xs[0]+r.dx, ys[0]+r.dy)
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
