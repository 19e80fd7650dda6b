package score

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// A StringTable is the shared blob of null-terminated strings from the
// setup section. Strings are referenced by byte offset.
type StringTable []byte

// Lookup returns the string at offset. Strings are ISO-8859-1, unless the
// byte after the terminator is 1, in which case the null-terminated run
// after that byte holds the same string in UTF-8. A negative offset gives
// the empty string.
func (t StringTable) Lookup(offset int) string {
	if offset < 0 || offset >= len(t) {
		return ""
	}
	run := cstring(t[offset:])
	if end := offset + len(run) + 1; end < len(t) && t[end] == 1 {
		u := cstring(t[end+1:])
		if !utf8.Valid(u) {
			return ""
		}
		return string(u)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(run)
	if err != nil {
		return ""
	}
	return string(s)
}

func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}
