package score

import (
	"moria.us/niffty/riff"
)

type symbolDecoder func(d *decoder, c *riff.Chunk) (Symbol, error)

// symbolDecoders maps the chunk ids of the supported music symbols to their
// decoders. Other chunks in a time slice are skipped.
var symbolDecoders = map[string]symbolDecoder{
	"acdl": (*decoder).readAccidental,
	"augd": (*decoder).readAugmentationDot,
	"barl": (*decoder).readBarline,
	"beam": (*decoder).readBeam,
	"clef": (*decoder).readClef,
	"keys": (*decoder).readKeySignature,
	"lyrc": (*decoder).readLyric,
	"note": (*decoder).readNotehead,
	"rest": (*decoder).readRest,
	"stem": (*decoder).readStem,
	"tie ": (*decoder).readTie,
	"time": (*decoder).readTimeSignature,
}

// readEnum reads an unsigned byte which must lie in [lo, hi].
func readEnum(c *riff.Chunk, name string, lo, hi int) (int, error) {
	b, err := c.ReadByte()
	if err != nil {
		return 0, err
	}
	if v := int(b); v >= lo && v <= hi {
		return v, nil
	}
	return 0, c.Errorf("illegal value for %s: %d", name, b)
}

func (d *decoder) readAccidental(c *riff.Chunk) (Symbol, error) {
	shape, err := readEnum(c, "accidental shape", int(DoubleFlat), int(ThreeQuarterTonesSharp))
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewAccidental(AccidentalShape(shape), t), nil
}

func (d *decoder) readAugmentationDot(c *riff.Chunk) (Symbol, error) {
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewAugmentationDot(t), nil
}

func (d *decoder) readBarline(c *riff.Chunk) (Symbol, error) {
	kind, err := readEnum(c, "barline type", int(BarlineThin), int(BarlineThick))
	if err != nil {
		return nil, err
	}
	ext, err := readEnum(c, "barline extends to", int(BottomOfStaff), int(BetweenStaves))
	if err != nil {
		return nil, err
	}
	n, err := c.ReadShort()
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewBarline(BarlineType(kind), ExtendsTo(ext), n, t), nil
}

func (d *decoder) readBeam(c *riff.Chunk) (Symbol, error) {
	l, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	r, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewBeam(int(l), int(r), t), nil
}

func (d *decoder) readClef(c *riff.Chunk) (Symbol, error) {
	shape, err := readEnum(c, "clef shape", int(GClef), int(TablatureClef))
	if err != nil {
		return nil, err
	}
	step, err := c.ReadSignedByte()
	if err != nil {
		return nil, err
	}
	octave, err := readEnum(c, "clef octave number", int(OctaveNone), int(OctaveBelow15))
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewClef(ClefShape(shape), step, OctaveNumber(octave), t), nil
}

func (d *decoder) readKeySignature(c *riff.Chunk) (Symbol, error) {
	code, err := c.ReadSignedByte()
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewKeySignature(code, t), nil
}

func (d *decoder) readLyric(c *riff.Chunk) (Symbol, error) {
	offset, err := c.ReadLong()
	if err != nil {
		return nil, err
	}
	verse, err := c.ReadByte()
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewLyric(d.strings.Lookup(offset), int(verse), t), nil
}

func (d *decoder) readNotehead(c *riff.Chunk) (Symbol, error) {
	shape, err := readEnum(c, "notehead shape", int(NoteheadBreve), int(NoteheadOpenTriangle))
	if err != nil {
		return nil, err
	}
	step, err := c.ReadSignedByte()
	if err != nil {
		return nil, err
	}
	dur, err := readRational(c, "duration")
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewNotehead(NoteheadShape(shape), step, dur, t), nil
}

func (d *decoder) readRest(c *riff.Chunk) (Symbol, error) {
	shape, err := readEnum(c, "rest shape", int(RestBreve), int(RestVocalTwoSmallSlashes))
	if err != nil {
		return nil, err
	}
	step, err := c.ReadSignedByte()
	if err != nil {
		return nil, err
	}
	dur, err := readRational(c, "duration")
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewRest(RestShape(shape), step, dur, t), nil
}

func (d *decoder) readStem(c *riff.Chunk) (Symbol, error) {
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewStem(t), nil
}

func (d *decoder) readTie(c *riff.Chunk) (Symbol, error) {
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewTie(t), nil
}

func (d *decoder) readTimeSignature(c *riff.Chunk) (Symbol, error) {
	top, err := c.ReadSignedByte()
	if err != nil {
		return nil, err
	}
	bottom, err := c.ReadSignedByte()
	if err != nil {
		return nil, err
	}
	t, err := readTags(c, d.log)
	if err != nil {
		return nil, err
	}
	return NewTimeSignature(top, bottom, t), nil
}
