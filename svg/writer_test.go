package svg

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func TestWriter(t *testing.T) {
	w, err := NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	w.OpenTag("svg")
	w.Attr("title", `a "b" & <c>`)
	w.OpenTag("g")
	w.CloseTag("g")
	w.OpenTag("text")
	w.AttrInt("x", -3)
	w.Text(`1 < 2 & "3"`)
	w.CloseTag("text")
	w.CloseTag("svg")
	got, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}
	want := xmlDecl + `<svg title="a &quot;b&quot; &amp; &lt;c&gt;"><g/>` +
		`<text x="-3">1 &lt; 2 &amp; "3"</text></svg>`
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriterErrors(t *testing.T) {
	type testcase struct {
		name  string
		write func(w *Writer)
		msg   string
	}
	cases := []testcase{
		{"unclosed", func(w *Writer) { w.OpenTag("svg") }, "unclosed <svg>"},
		{"mismatch", func(w *Writer) { w.OpenTag("svg"); w.CloseTag("g") }, "inside <svg>"},
		{"close nothing", func(w *Writer) { w.CloseTag("g") }, "no tag is open"},
		{"late attr", func(w *Writer) { w.OpenTag("svg"); w.Text("x"); w.Attr("a", "b") }, "no tag is open"},
		{"root text", func(w *Writer) { w.Text("x") }, "outside of the root"},
		{"tag name", func(w *Writer) { w.OpenTag("1g") }, `tag name "1g"`},
		{"empty attr", func(w *Writer) { w.OpenTag("g"); w.Attr("", "x") }, "cannot be empty"},
		{"control", func(w *Writer) { w.OpenTag("g"); w.Text("a\x01") }, "prohibited control character"},
		{"nonchar", func(w *Writer) { w.OpenTag("g"); w.Attr("a", "\ufffe") }, "prohibited Unicode character"},
	}
	for _, c := range cases {
		w, err := NewWriter(nil)
		if err != nil {
			t.Fatal(err)
		}
		c.write(w)
		_, err = w.Finish()
		if err == nil {
			t.Errorf("%s: ok (expect err)", c.name)
		} else if !strings.Contains(err.Error(), c.msg) {
			t.Errorf("%s: error %q does not contain %q", c.name, err, c.msg)
		}
	}
}

func TestWriterCharmap(t *testing.T) {
	w, err := NewWriter(charmap.ISO8859_1)
	if err != nil {
		t.Fatal(err)
	}
	w.OpenTag("text")
	w.Text("café ✓")
	w.CloseTag("text")
	got, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(got, []byte("<text>caf\xe9 &#10003;</text>")) {
		t.Errorf("got %q", got)
	}
	if bytes.Contains(got, []byte("UTF-8")) {
		t.Errorf("declaration names UTF-8: %q", got)
	}
}
