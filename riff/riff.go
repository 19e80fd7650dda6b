// Package riff reads big-endian RIFF ("RIFX") containers.
//
// A Chunk tracks how many bytes of its body remain. Every read through a chunk
// also counts against each open ancestor, so a parent can always tell when its
// children have consumed it.
package riff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	signature = "RIFX"
	listID    = "LIST"
)

// ErrNotRIFX is wrapped by the error returned when a stream does not start
// with the RIFX signature.
var ErrNotRIFX = errors.New("not a RIFX stream")

type input struct {
	r   io.ReadSeeker
	buf [4]byte
}

// A Chunk is an open chunk in a RIFF stream.
type Chunk struct {
	in        *input
	parent    *Chunk
	id        string
	remaining int64
	pad       bool
}

// NewReader opens the outermost chunk of a stream. The stream must start with
// the RIFX signature followed by the given form identifier.
func NewReader(r io.ReadSeeker, formID string) (*Chunk, error) {
	c := &Chunk{in: &input{r: r}}
	id, n, err := c.readHeader()
	if err != nil {
		return nil, err
	}
	c.id = id
	c.remaining = n
	c.pad = n%2 != 0
	if id != signature {
		return nil, &FormatError{Expected: signature, Got: id, Err: ErrNotRIFX}
	}
	form, err := c.ReadFOURCC()
	if err != nil {
		return nil, err
	}
	if form != formID {
		return nil, &FormatError{Chunk: id, Expected: formID, Got: form}
	}
	return c, nil
}

// ID returns the chunk identifier.
func (c *Chunk) ID() string {
	return c.id
}

// Parent returns the enclosing chunk, or nil for the outermost chunk.
func (c *Chunk) Parent() *Chunk {
	return c.parent
}

// Remaining returns the number of unread body bytes, not counting the pad
// byte of an odd-length chunk.
func (c *Chunk) Remaining() int64 {
	return c.remaining
}

func (c *Chunk) advance(n int64) {
	for p := c; p != nil; p = p.parent {
		p.remaining -= n
	}
}

func (c *Chunk) eof(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("riff: chunk %q: %w", c.id, err)
}

func (c *Chunk) read(n int) ([]byte, error) {
	b := c.in.buf[:n]
	if _, err := io.ReadFull(c.in.r, b); err != nil {
		return nil, c.eof(err)
	}
	c.advance(int64(n))
	return b, nil
}

// readHeader reads a chunk id and length through c, so that c and its
// ancestors are charged for the header.
func (c *Chunk) readHeader() (string, int64, error) {
	id, err := c.ReadFOURCC()
	if err != nil {
		return "", 0, err
	}
	n, err := c.ReadDWORD()
	if err != nil {
		return "", 0, err
	}
	return id, int64(n), nil
}

// ReadByte reads an unsigned byte.
func (c *Chunk) ReadByte() (byte, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadSignedByte reads a two's complement byte.
func (c *Chunk) ReadSignedByte() (int, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return int(int8(b[0])), nil
}

// ReadShort reads a signed 16-bit integer.
func (c *Chunk) ReadShort() (int, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, err
	}
	return int(int16(binary.BigEndian.Uint16(b))), nil
}

// ReadLong reads a signed 32-bit integer.
func (c *Chunk) ReadLong() (int, error) {
	n, err := c.ReadDWORD()
	return int(int32(n)), err
}

// ReadDWORD reads an unsigned 32-bit integer.
func (c *Chunk) ReadDWORD() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadFOURCC reads a four character code.
func (c *Chunk) ReadFOURCC() (string, error) {
	b, err := c.read(4)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// RequireFOURCC reads a four character code and fails if it is not id.
func (c *Chunk) RequireFOURCC(id string) error {
	got, err := c.ReadFOURCC()
	if err != nil {
		return err
	}
	if got != id {
		return &FormatError{Chunk: c.id, Expected: id, Got: got}
	}
	return nil
}

// OpenAny opens the next child chunk, whatever its id.
func (c *Chunk) OpenAny() (*Chunk, error) {
	id, n, err := c.readHeader()
	if err != nil {
		return nil, err
	}
	return &Chunk{
		in:        c.in,
		parent:    c,
		id:        id,
		remaining: n,
		pad:       n%2 != 0,
	}, nil
}

// Open opens the next child chunk, which must have the given id.
func (c *Chunk) Open(id string) (*Chunk, error) {
	ch, err := c.OpenAny()
	if err != nil {
		return nil, err
	}
	if ch.id != id {
		return nil, &FormatError{Chunk: c.id, Expected: id, Got: ch.id}
	}
	return ch, nil
}

// OpenList opens the next child chunk, which must be a LIST with the given
// list id.
func (c *Chunk) OpenList(id string) (*Chunk, error) {
	ch, err := c.Open(listID)
	if err != nil {
		return nil, err
	}
	if err := ch.RequireFOURCC(id); err != nil {
		return nil, err
	}
	return ch, nil
}

// peek runs f with the stream position restored afterwards. Nothing read by f
// is charged to any chunk.
func (c *Chunk) peek(f func(r io.Reader) error) error {
	pos, err := c.in.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	ferr := f(c.in.r)
	if _, err := c.in.r.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	if ferr != nil {
		return c.eof(ferr)
	}
	return nil
}

// PeekFOURCC returns the id of the next child chunk without consuming it.
func (c *Chunk) PeekFOURCC() (string, error) {
	var b [4]byte
	err := c.peek(func(r io.Reader) error {
		_, err := io.ReadFull(r, b[:])
		return err
	})
	if err != nil {
		return "", err
	}
	return string(b[:]), nil
}

// PeekListID returns the list id of the next child chunk if it is a LIST, or
// the empty string otherwise.
func (c *Chunk) PeekListID() (string, error) {
	var b [12]byte
	err := c.peek(func(r io.Reader) error {
		if _, err := io.ReadFull(r, b[:4]); err != nil {
			return err
		}
		if string(b[:4]) != listID {
			return nil
		}
		_, err := io.ReadFull(r, b[4:])
		return err
	})
	if err != nil {
		return "", err
	}
	if string(b[:4]) != listID {
		return "", nil
	}
	return string(b[8:]), nil
}

// PeekFirstByte returns the first body byte of the next child chunk.
func (c *Chunk) PeekFirstByte() (int, error) {
	var b [9]byte
	err := c.peek(func(r io.Reader) error {
		_, err := io.ReadFull(r, b[:])
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(b[8]), nil
}

// SkipRemaining discards the rest of the chunk, including its pad byte.
// Afterwards Remaining returns zero.
func (c *Chunk) SkipRemaining() error {
	if n := c.remaining; n > 0 {
		m, err := io.CopyN(io.Discard, c.in.r, n)
		c.advance(m)
		if err != nil {
			return c.eof(err)
		}
	}
	if c.pad {
		if _, err := c.ReadByte(); err != nil {
			return err
		}
		c.remaining = 0
		c.pad = false
	}
	return nil
}

// SkipChunk opens the next child chunk and discards it.
func (c *Chunk) SkipChunk() error {
	ch, err := c.OpenAny()
	if err != nil {
		return err
	}
	return ch.SkipRemaining()
}
