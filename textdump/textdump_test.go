package textdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"moria.us/niffty/score"
	"moria.us/niffty/score/scoretest"
)

func load(t *testing.T, data []byte) *score.Score {
	t.Helper()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s, err := score.Load(bytes.NewReader(data), score.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWriteEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, load(t, scoretest.Empty()), nil); err != nil {
		t.Fatal(err)
	}
	want := `NIFF Score
 Setup
  Chunk-length-table
   "nnfo"=14
  NIFF-Info, version=6b, writing program type=ENGRAVING_PROGRAM, standard units=POINTS, absolute units=1, midi ticks per quarter=240
  Parts list, parts=1
  String-table, size=3
 Data
  Page
   Page-header
`
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteSample(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, load(t, scoretest.Sample()), nil); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := []string{
		"\n   System\n    System-header\n    Staff\n     Staff-header\n",
		"\n     Time-slice, type=MEASURE_START, start time=0/1\n      Time-slice, type=EVENT, start time=0/1\n       Clef, shape=G_CLEF, staff step=2, octave=NONE\n",
		"\n       Notehead, shape=FILLED, staff step=4, duration=1/8\n",
		"\n       Beam, parts to left=0, parts to right=1, ID=1, number of nodes=2\n",
		"\n       Lyric, text=\"la\", lyricVerseID=1\n",
		"\n     Time-slice, type=MEASURE_START, start time=1/1\n",
		"\n       Notehead, shape=WHOLE, staff step=3, duration=1/1\n",
	}
	for _, l := range lines {
		if !strings.Contains(out, l) {
			t.Errorf("output does not contain %q", l)
		}
	}
	if n := strings.Count(out, "    Staff\n"); n != 2 {
		t.Errorf("%d staves, want 2", n)
	}
}

func TestWriteColors(t *testing.T) {
	var plain, colored bytes.Buffer
	s := load(t, scoretest.Sample())
	if err := Write(&plain, s, nil); err != nil {
		t.Fatal(err)
	}
	if err := Write(&colored, s, NewColors()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output contains escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output contains no escape sequences")
	}
	// Stripping the escapes gives the plain output back.
	stripped := stripEscapes(colored.String())
	if stripped != plain.String() {
		t.Errorf("colored output differs from plain output:\n%s", stripped)
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
