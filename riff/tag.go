package riff

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// A FormatError reports malformed input. No recovery is attempted after one.
type FormatError struct {
	Chunk    string // id of the chunk being read, if known
	Tag      int    // offending tag id, or zero
	Expected string
	Got      string
	Msg      string
	Err      error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("riff: ")
	if e.Expected != "" {
		fmt.Fprintf(&b, "expected %q, got %q", e.Expected, e.Got)
	} else {
		b.WriteString(e.Msg)
	}
	if e.Tag != 0 {
		fmt.Fprintf(&b, " (tag %#02x)", e.Tag)
	}
	if e.Chunk != "" {
		fmt.Fprintf(&b, " in chunk %q", e.Chunk)
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Errorf returns a FormatError for the chunk.
func (c *Chunk) Errorf(format string, a ...interface{}) error {
	return &FormatError{Chunk: c.id, Msg: fmt.Sprintf(format, a...)}
}

// A Tag is an optional attribute record in the trailing part of a chunk.
type Tag struct {
	ID    int
	Data  []byte
	chunk string
}

// ReadTag reads the next tag: a one byte id, a one byte length, the data,
// and a pad byte if the length is odd. A length past the end of the chunk is
// a FormatError.
func (c *Chunk) ReadTag() (*Tag, error) {
	id, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	n, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	if int64(n) > c.remaining {
		return nil, &FormatError{
			Chunk: c.id,
			Tag:   int(id),
			Msg:   fmt.Sprintf("tag length %d exceeds the %d bytes left in the chunk", n, c.remaining),
		}
	}
	data := make([]byte, n)
	for i := range data {
		b, err := c.ReadByte()
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	// The chunk's own pad byte stands in for the pad of a final odd tag.
	if n%2 != 0 && c.remaining > 0 {
		if _, err := c.ReadByte(); err != nil {
			return nil, err
		}
	}
	return &Tag{ID: int(id), Data: data, chunk: c.id}, nil
}

func (t *Tag) need(i, n int) error {
	if i < 0 || i+n > len(t.Data) {
		return &FormatError{Chunk: t.chunk, Tag: t.ID, Msg: "tag too short"}
	}
	return nil
}

// Byte returns the unsigned byte at offset i.
func (t *Tag) Byte(i int) (int, error) {
	if err := t.need(i, 1); err != nil {
		return 0, err
	}
	return int(t.Data[i]), nil
}

// SignedByte returns the two's complement byte at offset i.
func (t *Tag) SignedByte(i int) (int, error) {
	if err := t.need(i, 1); err != nil {
		return 0, err
	}
	return int(int8(t.Data[i])), nil
}

// Short returns the signed 16-bit value at offset i.
func (t *Tag) Short(i int) (int, error) {
	if err := t.need(i, 2); err != nil {
		return 0, err
	}
	return int(int16(binary.BigEndian.Uint16(t.Data[i:]))), nil
}

// Long returns the signed 32-bit value at offset i.
func (t *Tag) Long(i int) (int, error) {
	if err := t.need(i, 4); err != nil {
		return 0, err
	}
	return int(int32(binary.BigEndian.Uint32(t.Data[i:]))), nil
}

// String returns the tag data as a string.
func (t *Tag) String() string {
	return string(t.Data)
}

// Chunk returns the id of the chunk the tag was read from.
func (t *Tag) Chunk() string {
	return t.chunk
}
