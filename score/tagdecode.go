package score

import (
	"github.com/sirupsen/logrus"

	"moria.us/niffty/rational"
	"moria.us/niffty/riff"
)

// readTags reads tags until the chunk is exhausted, then skips the chunk's
// pad byte. Unknown tags are skipped. Enumerated tags with values outside
// their table are left unset.
func readTags(c *riff.Chunk, log logrus.FieldLogger) (Tags, error) {
	var t Tags
	for c.Remaining() > 0 {
		tag, err := c.ReadTag()
		if err != nil {
			return t, err
		}
		t, err = applyTag(t, tag)
		if err != nil {
			return t, err
		}
		if !knownTag(tag.ID) {
			log.WithField("chunk", c.ID()).Debugf("skipping unknown tag %#02x", tag.ID)
		}
	}
	return t, c.SkipRemaining()
}

func knownTag(id int) bool {
	switch id {
	case 0x08, 0x0d, 0x17, 0x2e:
		return false
	}
	return 0x01 <= id && id <= 0x30
}

func tagPlacement(tag *riff.Tag) (Placement, error) {
	h, err := tag.Short(0)
	if err != nil {
		return Placement{}, err
	}
	v, err := tag.Short(2)
	return Placement{h, v}, err
}

// tagBytes reads n consecutive values using get.
func tagBytes(tag *riff.Tag, n int, get func(int) (int, error)) ([]int, error) {
	r := make([]int, n)
	for i := range r {
		v, err := get(i)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}

func applyTag(t Tags, tag *riff.Tag) (Tags, error) {
	switch tag.ID {
	case 0x01:
		p, err := tagPlacement(tag)
		if err != nil {
			return t, err
		}
		return t.WithAbsolutePlacement(p), nil
	case 0x02:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		return t.WithAlternateEnding(v), nil
	case 0x03:
		return t.WithAnchorOverride(tag.String()), nil
	case 0x04:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		switch v {
		case 1:
			t = t.WithArticulationDirection(PointedUp)
		case 2:
			t = t.WithArticulationDirection(PointedDown)
		}
		return t, nil
	case 0x05:
		p, err := tagPlacement(tag)
		if err != nil {
			return t, err
		}
		return t.WithBezierIncoming(p), nil
	case 0x06:
		p, err := tagPlacement(tag)
		if err != nil {
			return t, err
		}
		return t.WithBezierOutgoing(p), nil
	case 0x07:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithChordSymbolOffset(v), nil
	case 0x09:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithCustomGraphic(v), nil
	case 0x0a:
		return t.WithEndOfSystem(true), nil
	case 0x0b:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		switch v {
		case 1:
			t = t.WithFannedBeam(ExpandingTowardRight)
		case 2:
			t = t.WithFannedBeam(ShrinkingTowardRight)
		}
		return t, nil
	case 0x0c:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithFiguredBass(v), nil
	case 0x0e:
		p, err := tagPlacement(tag)
		if err != nil {
			return t, err
		}
		r, err := rational.New(p.Horizontal, p.Vertical)
		if err != nil {
			return t, &riff.FormatError{Chunk: tag.Chunk(), Tag: tag.ID, Msg: "bad grace note", Err: err}
		}
		return t.WithGraceNote(r), nil
	case 0x0f:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithGuitarGridOffset(v), nil
	case 0x10:
		return t.WithGuitarTablature(true), nil
	case 0x11:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithHeight(v), nil
	case 0x12:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithID(v), nil
	case 0x13:
		return t.WithInvisible(true), nil
	case 0x14:
		return t.WithLargeSize(true), nil
	case 0x15:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		if v <= int(WavyLine) {
			t = t.WithLineQuality(LineQuality(v))
		}
		return t, nil
	case 0x16:
		v, err := tagBytes(tag, 3, tag.Byte)
		if err != nil {
			return t, err
		}
		return t.WithLogicalPlacement(LogicalPlacement{v[0], v[1], v[2]}), nil
	case 0x18:
		start, err := tag.Long(0)
		if err != nil {
			return t, err
		}
		dur, err := tag.Long(4)
		if err != nil {
			return t, err
		}
		pitch, err := tag.Byte(8)
		if err != nil {
			return t, err
		}
		vel, err := tag.Byte(9)
		if err != nil {
			return t, err
		}
		return t.WithMidiPerformance(MidiPerformance{start, dur, pitch, vel}), nil
	case 0x19:
		return t.WithMultiNodeEndOfSystem(true), nil
	case 0x1a:
		return t.WithMultiNodeStartOfSystem(true), nil
	case 0x1b:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		return t.WithNumberOfFlags(v), nil
	case 0x1c:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithNumberOfNodes(v), nil
	case 0x1d:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		return t.WithNumberOfStaffLines(v), nil
	case 0x1e:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		if v <= int(PlayBack) {
			t = t.WithOssia(Ossia(v))
		}
		return t, nil
	case 0x1f:
		v, err := tagBytes(tag, 3, tag.SignedByte)
		if err != nil {
			return t, err
		}
		return t.WithPartDescriptionOverride(PartDescriptionOverride{v[0], v[1], v[2]}), nil
	case 0x20:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithPartID(v), nil
	case 0x21:
		v, err := tagBytes(tag, 4, tag.Byte)
		if err != nil {
			return t, err
		}
		return t.WithReferencePointOverride(ReferencePointOverride{v[0], v[1], v[2], v[3]}), nil
	case 0x22:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithRehearsalMarkOffset(v), nil
	case 0x23:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithRestNumeral(v), nil
	case 0x24:
		return t.WithSilent(true), nil
	case 0x25:
		return t.WithSlashedStem(true), nil
	case 0x26:
		return t.WithSmallSize(true), nil
	case 0x27:
		return t.WithSpacingByPart(true), nil
	case 0x28:
		return t.WithSplitStem(true), nil
	case 0x29:
		return t.WithStaffName(true), nil
	case 0x2a:
		v, err := tag.SignedByte(0)
		if err != nil {
			return t, err
		}
		return t.WithStaffStep(v), nil
	case 0x2b:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithThickness(v), nil
	case 0x2c:
		v, err := tag.Byte(0)
		if err != nil {
			return t, err
		}
		switch v {
		case 1:
			t = t.WithTieDirection(RoundedAbove)
		case 2:
			t = t.WithTieDirection(RoundedBelow)
		}
		return t, nil
	case 0x2d:
		v, err := tagBytes(tag, 4, func(i int) (int, error) { return tag.Short(2 * i) })
		if err != nil {
			return t, err
		}
		g, err := tag.Byte(8)
		if err != nil {
			return t, err
		}
		return t.WithTupletDescription(TupletDescription{v[0], v[1], v[2], v[3], GroupingSymbol(g)}), nil
	case 0x2f:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithVoiceID(v), nil
	case 0x30:
		v, err := tag.Short(0)
		if err != nil {
			return t, err
		}
		return t.WithWidth(v), nil
	}
	return t, nil
}
