package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"moria.us/niffty/score"
	"moria.us/niffty/score/scoretest"
)

func loadSample(t *testing.T, data []byte) *score.Score {
	t.Helper()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s, err := score.Load(bytes.NewReader(data), score.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// elements counts the elements in an XML document by name.
func elements(t *testing.T, doc []byte) map[string]int {
	t.Helper()
	n := make(map[string]int)
	d := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return n
		}
		if err != nil {
			t.Fatalf("invalid XML: %v", err)
		}
		if e, ok := tok.(xml.StartElement); ok {
			n[e.Name.Local]++
		}
	}
}

func TestRenderPage(t *testing.T) {
	s := loadSample(t, scoretest.Sample())
	o := DefaultOptions()
	doc, err := RenderPage(s.Data().Page(0), o)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(doc, []byte(`viewBox="-10 -10 660 860"`)) {
		t.Errorf("missing view box:\n%s", doc)
	}
	n := elements(t, doc)
	if n["svg"] != 1 || n["g"] != 1 {
		t.Errorf("got %d svg and %d g elements", n["svg"], n["g"])
	}
	// Ten staff lines plus stems, ledger and bar lines.
	if n["line"] < 10 {
		t.Errorf("%d lines, want at least 10", n["line"])
	}
	// Time signature digits and the lyric.
	if n["text"] < 3 {
		t.Errorf("%d text elements, want at least 3", n["text"])
	}
	if n["path"] == 0 {
		t.Error("tie drew no arcs")
	}
	if !strings.Contains(string(doc), ">la</text>") {
		t.Error("lyric text missing")
	}
}

func TestRender(t *testing.T) {
	s := loadSample(t, scoretest.Empty())
	pages, err := Render(s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	n := elements(t, pages[0])
	if n["line"]+n["path"]+n["text"] != 0 {
		t.Errorf("empty page drew %v", n)
	}
}
