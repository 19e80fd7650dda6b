package riff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	rt "moria.us/niffty/riff/rifftest"
)

func open(t *testing.T, data []byte) *Chunk {
	t.Helper()
	c, err := NewReader(bytes.NewReader(data), "TEST")
	if err != nil {
		t.Fatal("NewReader:", err)
	}
	return c
}

func TestSignature(t *testing.T) {
	data := rt.Form("TEST")
	copy(data, "RIFF")
	_, err := NewReader(bytes.NewReader(data), "TEST")
	if !errors.Is(err, ErrNotRIFX) {
		t.Errorf("RIFF signature: err = %v, expect ErrNotRIFX", err)
	}

	_, err = NewReader(bytes.NewReader(rt.Form("NIFF")), "TEST")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("wrong form: err = %v, expect *FormatError", err)
	}
	if fe.Expected != "TEST" || fe.Got != "NIFF" {
		t.Errorf("wrong form: expected=%q got=%q", fe.Expected, fe.Got)
	}

	_, err = NewReader(bytes.NewReader([]byte("RIFX\x00")), "TEST")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated: err = %v, expect io.ErrUnexpectedEOF", err)
	}
}

func TestBudget(t *testing.T) {
	data := rt.Form("TEST",
		rt.Chunk("odd ", rt.Bytes(1, 2, 3)),
		rt.List("lst ",
			rt.Chunk("even", rt.Short(-2), rt.Long(-70000)),
		),
	)
	root := open(t, data)
	total := root.Remaining()
	if want := int64(len(data) - 12); total != want {
		t.Fatalf("root remaining = %d, expect %d", total, want)
	}

	ch, err := root.Open("odd ")
	if err != nil {
		t.Fatal(err)
	}
	if ch.Remaining() != 3 {
		t.Errorf("odd remaining = %d, expect 3", ch.Remaining())
	}
	if got := total - root.Remaining(); got != 8 {
		t.Errorf("header consumed %d bytes of parent, expect 8", got)
	}
	b, err := ch.ReadByte()
	if err != nil || b != 1 {
		t.Errorf("ReadByte = %d, %v; expect 1", b, err)
	}
	if err := ch.SkipRemaining(); err != nil {
		t.Fatal(err)
	}
	if ch.Remaining() != 0 {
		t.Errorf("after skip remaining = %d, expect 0", ch.Remaining())
	}
	if got := total - root.Remaining(); got != 12 {
		t.Errorf("odd chunk consumed %d bytes of parent, expect 12", got)
	}

	lst, err := root.OpenList("lst ")
	if err != nil {
		t.Fatal(err)
	}
	before := root.Remaining()
	even, err := lst.Open("even")
	if err != nil {
		t.Fatal(err)
	}
	s, err := even.ReadShort()
	if err != nil || s != -2 {
		t.Errorf("ReadShort = %d, %v; expect -2", s, err)
	}
	l, err := even.ReadLong()
	if err != nil || l != -70000 {
		t.Errorf("ReadLong = %d, %v; expect -70000", l, err)
	}
	if even.Remaining() != 0 || lst.Remaining() != 0 {
		t.Errorf("remaining even=%d list=%d, expect 0", even.Remaining(), lst.Remaining())
	}
	if got := before - root.Remaining(); got != 14 {
		t.Errorf("list body consumed %d bytes of root, expect 14", got)
	}
	if root.Remaining() != 0 {
		t.Errorf("root remaining = %d, expect 0", root.Remaining())
	}
}

func TestPeek(t *testing.T) {
	data := rt.Form("TEST",
		rt.List("sub ", rt.Chunk("abcd", rt.Bytes(7))),
		rt.Chunk("tmsl", rt.Bytes(2, 0)),
	)
	root := open(t, data)
	rem := root.Remaining()

	id, err := root.PeekFOURCC()
	if err != nil || id != "LIST" {
		t.Errorf("PeekFOURCC = %q, %v; expect LIST", id, err)
	}
	lid, err := root.PeekListID()
	if err != nil || lid != "sub " {
		t.Errorf("PeekListID = %q, %v; expect \"sub \"", lid, err)
	}
	if root.Remaining() != rem {
		t.Errorf("peek changed remaining to %d, expect %d", root.Remaining(), rem)
	}
	if err := root.SkipChunk(); err != nil {
		t.Fatal(err)
	}
	lid, err = root.PeekListID()
	if err != nil || lid != "" {
		t.Errorf("PeekListID on plain chunk = %q, %v; expect empty", lid, err)
	}
	fb, err := root.PeekFirstByte()
	if err != nil || fb != 2 {
		t.Errorf("PeekFirstByte = %d, %v; expect 2", fb, err)
	}
	ch, err := root.Open("tmsl")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ch.ReadByte()
	if err != nil || b != 2 {
		t.Errorf("ReadByte after peek = %d, %v; expect 2", b, err)
	}
}

func TestOpenMismatch(t *testing.T) {
	root := open(t, rt.Form("TEST", rt.Chunk("abcd")))
	_, err := root.Open("wxyz")
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, expect *FormatError", err)
	}
	if fe.Expected != "wxyz" || fe.Got != "abcd" {
		t.Errorf("expected=%q got=%q", fe.Expected, fe.Got)
	}
}

func TestSkipUnknown(t *testing.T) {
	unknown := rt.Chunk("zzzz", rt.Bytes(1, 2, 3, 4, 5))
	data := rt.Form("TEST", unknown, rt.Chunk("keep", rt.Bytes(9, 9)))
	root := open(t, data)
	before := root.Remaining()
	if err := root.SkipChunk(); err != nil {
		t.Fatal(err)
	}
	if got, want := before-root.Remaining(), int64(len(rt.Encode(unknown))); got != want {
		t.Errorf("skip consumed %d, expect %d", got, want)
	}
	if _, err := root.Open("keep"); err != nil {
		t.Error(err)
	}
}

func TestTags(t *testing.T) {
	body := rt.Cat(
		rt.Tag(0x2a, 0xfe),
		rt.Tag(0x01, 0x00, 0x05, 0xff, 0xfb),
		rt.Tag(0x18, 0, 0, 1, 0, 0xff, 0xff, 0xff, 0xff, 60, 100),
	)
	root := open(t, rt.Form("TEST", rt.Chunk("tags", body)))
	ch, err := root.Open("tags")
	if err != nil {
		t.Fatal(err)
	}

	tag, err := ch.ReadTag()
	if err != nil {
		t.Fatal(err)
	}
	if v, err := tag.SignedByte(0); err != nil || v != -2 {
		t.Errorf("SignedByte = %d, %v; expect -2", v, err)
	}
	if v, err := tag.Byte(0); err != nil || v != 254 {
		t.Errorf("Byte = %d, %v; expect 254", v, err)
	}
	_, err = tag.Short(0)
	var fe *FormatError
	if !errors.As(err, &fe) || fe.Tag != 0x2a || fe.Chunk != "tags" {
		t.Errorf("Short past end: err = %v", err)
	}

	tag, err = ch.ReadTag()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := tag.Short(0)
	b, _ := tag.Short(2)
	if a != 5 || b != -5 {
		t.Errorf("Shorts = %d, %d; expect 5, -5", a, b)
	}

	tag, err = ch.ReadTag()
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := tag.Long(0); v != 256 {
		t.Errorf("Long(0) = %d, expect 256", v)
	}
	if v, _ := tag.Long(4); v != -1 {
		t.Errorf("Long(4) = %d, expect -1", v)
	}
	if _, err := tag.Long(7); err == nil {
		t.Error("Long(7): expect error")
	}
	if ch.Remaining() != 0 {
		t.Errorf("remaining = %d, expect 0", ch.Remaining())
	}
}

func TestPeekListIDShortChunk(t *testing.T) {
	type testcase struct {
		name string
		body []byte
	}
	cases := []testcase{
		{"empty", nil},
		{"one byte", rt.Bytes(1)},
		{"three bytes", rt.Bytes(1, 2, 3)},
	}
	for _, c := range cases {
		root := open(t, rt.Form("TEST", rt.Chunk("junk", c.body)))
		rem := root.Remaining()
		lid, err := root.PeekListID()
		if err != nil || lid != "" {
			t.Errorf("%s: PeekListID = %q, %v; expect empty", c.name, lid, err)
			continue
		}
		if root.Remaining() != rem {
			t.Errorf("%s: peek changed remaining to %d", c.name, root.Remaining())
		}
		if err := root.SkipChunk(); err != nil {
			t.Errorf("%s: SkipChunk: %v", c.name, err)
		}
		if root.Remaining() != 0 {
			t.Errorf("%s: remaining = %d, expect 0", c.name, root.Remaining())
		}
	}
}

func TestTagTooLong(t *testing.T) {
	type testcase struct {
		name string
		body []byte
	}
	cases := []testcase{
		{"data", rt.Bytes(0x12, 8, 0, 1)},
		{"odd data", rt.Bytes(0x40, 3, 1, 2)},
	}
	for _, c := range cases {
		root := open(t, rt.Form("TEST", rt.Chunk("tags", c.body)))
		ch, err := root.Open("tags")
		if err != nil {
			t.Fatal(err)
		}
		_, err = ch.ReadTag()
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s: err = %v, expect *FormatError", c.name, err)
			continue
		}
		if fe.Chunk != "tags" || fe.Tag != int(c.body[0]) {
			t.Errorf("%s: error names tag %#x in chunk %q", c.name, fe.Tag, fe.Chunk)
		}
	}
}

func TestTagChunkPad(t *testing.T) {
	root := open(t, rt.Form("TEST", rt.Chunk("tags", rt.Bytes(0x40, 3, 1, 2, 3)), rt.Chunk("next")))
	ch, err := root.Open("tags")
	if err != nil {
		t.Fatal(err)
	}
	tag, err := ch.ReadTag()
	if err != nil {
		t.Fatal(err)
	}
	if len(tag.Data) != 3 || ch.Remaining() != 0 {
		t.Errorf("tag data %v, remaining %d; expect 3 bytes, 0", tag.Data, ch.Remaining())
	}
	if err := ch.SkipRemaining(); err != nil {
		t.Fatal(err)
	}
	if _, err := root.Open("next"); err != nil {
		t.Error(err)
	}
}

func TestTagString(t *testing.T) {
	root := open(t, rt.Form("TEST", rt.Chunk("anch", rt.Tag(0x01, 'n', 'o', 't', 'e'))))
	ch, err := root.Open("anch")
	if err != nil {
		t.Fatal(err)
	}
	tag, err := ch.ReadTag()
	if err != nil {
		t.Fatal(err)
	}
	if got := tag.String(); got != "note" {
		t.Errorf("String() = %q, expect \"note\"", got)
	}
	if got := tag.Chunk(); got != "anch" {
		t.Errorf("Chunk() = %q, expect \"anch\"", got)
	}
}
