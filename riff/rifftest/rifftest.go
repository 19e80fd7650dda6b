// Package rifftest builds RIFX byte streams for tests.
package rifftest

import (
	"bytes"
	"encoding/binary"
)

// A Node is a chunk or list which can be encoded.
type Node interface {
	encode(b *bytes.Buffer)
}

type chunk struct {
	id   string
	body []byte
}

func (c *chunk) encode(b *bytes.Buffer) {
	writeHeader(b, c.id, len(c.body))
	b.Write(c.body)
	if len(c.body)%2 != 0 {
		b.WriteByte(0)
	}
}

type list struct {
	id       string
	children []Node
}

func (l *list) encode(b *bytes.Buffer) {
	var body bytes.Buffer
	body.WriteString(l.id)
	for _, c := range l.children {
		c.encode(&body)
	}
	writeHeader(b, "LIST", body.Len())
	b.Write(body.Bytes())
}

func writeHeader(b *bytes.Buffer, id string, n int) {
	if len(id) != 4 {
		panic("bad chunk id: " + id)
	}
	b.WriteString(id)
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(n))
	b.Write(l[:])
}

// Chunk returns a plain chunk whose body is the concatenation of parts.
func Chunk(id string, parts ...[]byte) Node {
	return &chunk{id: id, body: Cat(parts...)}
}

// List returns a LIST chunk with the given list id.
func List(id string, children ...Node) Node {
	return &list{id: id, children: children}
}

// Form returns a complete RIFX stream.
func Form(form string, children ...Node) []byte {
	var body bytes.Buffer
	body.WriteString(form)
	for _, c := range children {
		c.encode(&body)
	}
	var b bytes.Buffer
	writeHeader(&b, "RIFX", body.Len())
	b.Write(body.Bytes())
	if body.Len()%2 != 0 {
		b.WriteByte(0)
	}
	return b.Bytes()
}

// Encode returns the encoding of a single node.
func Encode(n Node) []byte {
	var b bytes.Buffer
	n.encode(&b)
	return b.Bytes()
}

// Cat concatenates byte slices.
func Cat(parts ...[]byte) []byte {
	var r []byte
	for _, p := range parts {
		r = append(r, p...)
	}
	return r
}

// Bytes returns each value as a single byte.
func Bytes(v ...int) []byte {
	r := make([]byte, len(v))
	for i, x := range v {
		r[i] = byte(x)
	}
	return r
}

// Short returns a big-endian 16-bit value.
func Short(v int) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

// Long returns a big-endian 32-bit value.
func Long(v int) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Tag returns a tag record with its pad byte.
func Tag(id int, data ...byte) []byte {
	r := append([]byte{byte(id), byte(len(data))}, data...)
	if len(data)%2 != 0 {
		r = append(r, 0)
	}
	return r
}
