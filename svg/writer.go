package svg

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

type charError struct {
	char rune
}

func (e *charError) Error() string {
	var msg string
	if isControlCharacter(e.char) {
		msg = "prohibited control character"
	} else if e.char >= 0x80 {
		msg = "prohibited Unicode character"
	} else {
		msg = "prohibited character"
	}
	return fmt.Sprintf("%s: %q (U+%04X)", msg, e.char, e.char)
}

var errEmpty = errors.New("cannot be empty")

type dataError struct {
	context string
	text    string
	err     error
}

func (e *dataError) Error() string {
	if e.text == "" {
		return e.context + ": " + e.err.Error()
	}
	return e.context + " " + strconv.Quote(e.text) + ": " + e.err.Error()
}

// A Writer writes XML tokens to a buffer.
//
// Like bufio.Writer, if an error occurs writing to a writer, all future writes
// will be ignored. The error will be returned by Finish.
type Writer struct {
	charmap   *charmap.Charmap
	buf       bytes.Buffer
	open      []string
	isTagOpen bool
	err       error
}

// NewWriter returns a writer which has written the XML declaration. With a
// nil charmap the document is UTF-8. Otherwise runes outside the charmap are
// written as character references.
func NewWriter(cm *charmap.Charmap) (*Writer, error) {
	w := &Writer{charmap: cm}
	enc := "UTF-8"
	if cm != nil {
		name, err := ianaindex.MIME.Name(cm)
		if err != nil {
			return nil, err
		}
		enc = name
	}
	w.buf.WriteString(`<?xml version="1.0" encoding="` + enc + `"?>` + "\n")
	return w, nil
}

func (w *Writer) writeString(s string) {
	cm := w.charmap
	if cm == nil {
		w.buf.WriteString(s)
		return
	}
	for _, c := range s {
		if b, ok := cm.EncodeRune(c); ok {
			w.buf.WriteByte(b)
			continue
		}
		w.buf.WriteString("&#")
		w.buf.WriteString(strconv.FormatUint(uint64(c), 10))
		w.buf.WriteByte(';')
	}
}

func isNameChar(c rune, first bool) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_', c == ':':
		return true
	case '0' <= c && c <= '9', c == '-', c == '.':
		return !first
	}
	return false
}

func (w *Writer) writeName(name string) error {
	if len(name) == 0 {
		return errEmpty
	}
	for i, c := range name {
		if !isNameChar(c, i == 0) {
			return &charError{c}
		}
	}
	w.buf.WriteString(name)
	return nil
}

func isControlCharacter(c rune) bool {
	return (c <= 0x1f && c != '\t' && c != '\n' && c != '\r') || (0x7f <= c && c <= 0x9f)
}

func isNonCharacter(c rune) bool {
	return (0xfdd0 <= c && c <= 0xfdef) || (c&0xfffe) == 0xfffe
}

func escape(b *strings.Builder, s string, attr bool) error {
	for _, c := range s {
		if isControlCharacter(c) || isNonCharacter(c) {
			return &charError{c}
		}
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if attr {
				b.WriteString("&quot;")
			} else {
				b.WriteByte('"')
			}
		default:
			b.WriteRune(c)
		}
	}
	return nil
}

func (w *Writer) finishTag() {
	if w.isTagOpen {
		w.buf.WriteByte('>')
		w.isTagOpen = false
	}
}

// OpenTag writes an opening tag to the document.
func (w *Writer) OpenTag(name string) {
	if w.err != nil {
		return
	}
	w.finishTag()
	w.buf.WriteByte('<')
	if err := w.writeName(name); err != nil {
		w.err = &dataError{
			context: "tag name",
			text:    name,
			err:     err,
		}
		return
	}
	w.open = append(w.open, name)
	w.isTagOpen = true
}

// CloseTag closes the innermost open tag, which must have the given name. A
// tag with no content is closed with "/>".
func (w *Writer) CloseTag(name string) {
	if w.err != nil {
		return
	}
	n := len(w.open)
	if n == 0 {
		w.err = fmt.Errorf("cannot close </%s>, no tag is open", name)
		return
	}
	if top := w.open[n-1]; top != name {
		w.err = fmt.Errorf("cannot close </%s> inside <%s>", name, top)
		return
	}
	w.open = w.open[:n-1]
	if w.isTagOpen {
		w.buf.WriteString("/>")
		w.isTagOpen = false
		return
	}
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

// Attr adds an attribute to the currently open tag. It is an error to write an
// attribute without a call to OpenTag first, or if any other method besides
// Attr has been called since the last call to OpenTag.
func (w *Writer) Attr(key, value string) {
	if w.err != nil {
		return
	}
	if !w.isTagOpen {
		w.err = errors.New("cannot add attribute, no tag is open")
		return
	}
	w.buf.WriteByte(' ')
	if err := w.writeName(key); err != nil {
		w.err = &dataError{
			context: "attr name",
			text:    key,
			err:     err,
		}
		return
	}
	var b strings.Builder
	if err := escape(&b, value, true); err != nil {
		w.err = &dataError{
			context: "attr",
			text:    key,
			err:     err,
		}
		return
	}
	w.buf.WriteString(`="`)
	w.writeString(b.String())
	w.buf.WriteByte('"')
}

// AttrInt adds an integer attribute to the currently open tag.
func (w *Writer) AttrInt(key string, value int) {
	w.Attr(key, strconv.Itoa(value))
}

// Text writes character data to the document.
func (w *Writer) Text(text string) {
	if w.err != nil {
		return
	}
	if len(w.open) == 0 {
		w.err = errors.New("text outside of the root element")
		return
	}
	w.finishTag()
	var b strings.Builder
	if err := escape(&b, text, false); err != nil {
		w.err = &dataError{
			context: "text",
			text:    text,
			err:     err,
		}
		return
	}
	w.writeString(b.String())
}

// Finish returns the full contents of the document, or returns an error if
// an error occurred during writing.
func (w *Writer) Finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if n := len(w.open); n > 0 {
		return nil, fmt.Errorf("unclosed <%s>", w.open[n-1])
	}
	return w.buf.Bytes(), nil
}
