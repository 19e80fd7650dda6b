// Package scoretest provides NIFF files for tests of packages that consume
// decoded scores.
package scoretest

import (
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

func setup() node {
	return list("setp",
		chunk("clt ", []byte("nnfo"), long(14)),
		chunk("nnfo", []byte("6b\x00\x00\x00\x00\x00\x00"), bs(1, 3), short(1), short(240)),
		chunk("stbl", []byte("la\x00")),
		list("prts", chunk("prt ", short(0))),
	)
}

func slice(kind, num, den int) node {
	return chunk("tmsl", bs(kind), short(num), short(den))
}

func note(step, num, den int, tags ...[]byte) node {
	return chunk("note", append([][]byte{bs(4, step), short(num), short(den)}, tags...)...)
}

func idTag(v int) []byte    { return tag(0x12, short(v)...) }
func nodesTag(v int) []byte { return tag(0x1c, short(v)...) }

// Empty returns a NIFF file with one empty page.
func Empty() []byte {
	return rifftest.Form("NIFF", setup(), list("data", list("page", chunk("pghd"))))
}

// Sample returns a NIFF file with a single two-staff system. The upper staff
// holds a treble clef, a key signature of two sharps, common time, two beamed
// eighth notes, a lyric, two tied quarter notes and a barline. The lower
// staff holds a bass clef and a whole note.
func Sample() []byte {
	upper := list("staf",
		chunk("sthd"),
		slice(1, 0, 1),
		slice(2, 0, 1),
		chunk("clef", bs(1, 2, 0)),
		chunk("keys", bs(2)),
		chunk("time", bs(4, 4)),
		chunk("stem"), note(4, 1, 8), chunk("beam", bs(0, 1), idTag(1), nodesTag(2)),
		chunk("lyrc", long(0), bs(1)),
		slice(2, 1, 8),
		chunk("stem"), note(6, 1, 8), chunk("beam", bs(1, 0), idTag(1)),
		slice(2, 1, 4),
		chunk("stem"), note(5, 1, 4), chunk("tie ", idTag(2), nodesTag(2)),
		slice(2, 1, 2),
		chunk("stem"), note(5, 1, 4), chunk("tie ", idTag(2)),
		slice(2, 3, 4),
		chunk("rest", bs(4, 4), short(1), short(4)),
		slice(1, 1, 1),
		chunk("barl", bs(1, 1), short(1)),
	)
	lower := list("staf",
		chunk("sthd"),
		slice(1, 0, 1),
		slice(2, 0, 1),
		chunk("clef", bs(2, 6, 0)),
		chunk("note", bs(2, 3), short(1), short(1)),
	)
	return rifftest.Form("NIFF", setup(), list("data",
		list("page", chunk("pghd"),
			list("syst", chunk("syhd"), upper, lower)),
	))
}
