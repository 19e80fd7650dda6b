package score

import "fmt"

// A Placement is a horizontal and vertical offset, used for absolute
// placement and Bezier control points.
type Placement struct {
	Horizontal, Vertical int
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d,%d)", p.Horizontal, p.Vertical)
}

// Logical placement values. The horizontal and vertical fields share the
// DEFAULT, STEM_SIDE, NOTE_SIDE and CENTERED values.
const (
	PlaceDefault  = 0
	PlaceLeft     = 1
	PlaceRight    = 2
	PlaceAbove    = 1
	PlaceBelow    = 2
	PlaceStemSide = 3
	PlaceNoteSide = 4
	PlaceCentered = 5

	ProximityTouching       = 1
	ProximityOffsetSlightly = 2
)

// A LogicalPlacement positions a symbol relative to its anchor.
type LogicalPlacement struct {
	Horizontal, Vertical, Proximity int
}

func placementName(v int, low, high string) string {
	switch v {
	case PlaceDefault:
		return "DEFAULT"
	case 1:
		return low
	case 2:
		return high
	case PlaceStemSide:
		return "STEM_SIDE"
	case PlaceNoteSide:
		return "NOTE_SIDE"
	case PlaceCentered:
		return "CENTERED"
	}
	return ""
}

func (p LogicalPlacement) String() string {
	var prox string
	switch p.Proximity {
	case PlaceDefault:
		prox = "DEFAULT"
	case ProximityTouching:
		prox = "TOUCHING"
	case ProximityOffsetSlightly:
		prox = "OFFSET_SLIGHTLY"
	}
	return fmt.Sprintf("(horizontal:%s, vertical:%s, proximity:%s)",
		placementName(p.Horizontal, "LEFT", "RIGHT"),
		placementName(p.Vertical, "ABOVE", "BELOW"),
		prox)
}

// A MidiPerformance records how a symbol was actually played.
type MidiPerformance struct {
	StartTime int
	Duration  int
	Pitch     int
	Velocity  int
}

func (m MidiPerformance) String() string {
	return fmt.Sprintf("(start time:%d, duration:%d, pitch:%d, velocity:%d)",
		m.StartTime, m.Duration, m.Pitch, m.Velocity)
}

// A PartDescriptionOverride overrides MIDI settings of the part.
type PartDescriptionOverride struct {
	MidiChannel int
	MidiCable   int
	Transpose   int
}

func (p PartDescriptionOverride) String() string {
	return fmt.Sprintf("(MIDI channel:%d, MIDI cable:%d, transpose:%d)",
		p.MidiChannel, p.MidiCable, p.Transpose)
}

// Reference point values.
const (
	RefDefault          = 0
	RefLeft             = 1
	RefRight            = 2
	RefHorizontalCenter = 3
	RefTop              = 1
	RefBottom           = 2
	RefVerticalCenter   = 3
)

// A ReferencePointOverride changes which points of the anchor and dependent
// symbol are aligned.
type ReferencePointOverride struct {
	AnchorHorizontal    int
	DependentHorizontal int
	AnchorVertical      int
	DependentVertical   int
}

func refName(v int, low, high, center string) string {
	switch v {
	case RefDefault:
		return "DEFAULT"
	case 1:
		return low
	case 2:
		return high
	case 3:
		return center
	}
	return ""
}

func (r ReferencePointOverride) String() string {
	return fmt.Sprintf("(anchor horizontal:%s, dependent horizontal:%s, anchor vertical:%s, dependent vertical:%s)",
		refName(r.AnchorHorizontal, "LEFT", "RIGHT", "HORIZONTAL_CENTER"),
		refName(r.DependentHorizontal, "LEFT", "RIGHT", "HORIZONTAL_CENTER"),
		refName(r.AnchorVertical, "TOP", "BOTTOM", "VERTICAL_CENTER"),
		refName(r.DependentVertical, "TOP", "BOTTOM", "VERTICAL_CENTER"))
}

// A GroupingSymbol is drawn around a tuplet.
type GroupingSymbol int

const (
	GroupingDefault GroupingSymbol = iota
	GroupingNumberOnly
	GroupingNumberWithBrokenSlur
	GroupingNumberOutsideSlur
	GroupingNumberInsideSlur
	GroupingNumberWithBrokenBracket
	GroupingNumberOutsideBracket
	GroupingNumberInsideBracket
	GroupingBracketOnly
	GroupingSlurOnly
	GroupingNoSymbol
)

var groupingNames = [...]string{
	"DEFAULT",
	"NUMBER_ONLY",
	"NUMBER_WITH_BROKEN_SLUR",
	"NUMBER_OUTSIDE_SLUR",
	"NUMBER_INSIDE_SLUR",
	"NUMBER_WITH_BROKEN_BRACKET",
	"NUMBER_OUTSIDE_BRACKET",
	"NUMBER_INSIDE_BRACKET",
	"BRACKET_ONLY",
	"SLUR_ONLY",
	"NO_SYMBOL",
}

func (g GroupingSymbol) String() string {
	if g < 0 || int(g) >= len(groupingNames) {
		return ""
	}
	return groupingNames[g]
}

// A TupletDescription means "A notes of duration B take the time of C notes
// of duration D".
type TupletDescription struct {
	A, B, C, D     int
	GroupingSymbol GroupingSymbol
}

func (t TupletDescription) String() string {
	return fmt.Sprintf("(a:%d, b:%d, c:%d, d:%d, grouping symbol:%v)",
		t.A, t.B, t.C, t.D, t.GroupingSymbol)
}

// An ArticulationDirection says which way an articulation points.
type ArticulationDirection int

const (
	PointedUp ArticulationDirection = iota + 1
	PointedDown
)

func (a ArticulationDirection) String() string {
	switch a {
	case PointedUp:
		return "POINTED_UP"
	case PointedDown:
		return "POINTED_DOWN"
	}
	return fmt.Sprintf("ArticulationDirection(%d)", int(a))
}

// A FannedBeam says how a fanned beam spreads.
type FannedBeam int

const (
	ExpandingTowardRight FannedBeam = iota + 1
	ShrinkingTowardRight
)

func (f FannedBeam) String() string {
	switch f {
	case ExpandingTowardRight:
		return "EXPANDING_TOWARD_RIGHT"
	case ShrinkingTowardRight:
		return "SHRINKING_TOWARD_RIGHT"
	}
	return fmt.Sprintf("FannedBeam(%d)", int(f))
}

// A LineQuality is the style of a line.
type LineQuality int

const (
	NoLine LineQuality = iota
	DottedLine
	DashedLine
	WavyLine
)

func (l LineQuality) String() string {
	switch l {
	case NoLine:
		return "NO_LINE"
	case DottedLine:
		return "DOTTED_LINE"
	case DashedLine:
		return "DASHED_LINE"
	case WavyLine:
		return "WAVY_LINE"
	}
	return fmt.Sprintf("LineQuality(%d)", int(l))
}

// An Ossia says whether an ossia passage is played back.
type Ossia int

const (
	DoNotPlayBack Ossia = iota
	PlayBack
)

func (o Ossia) String() string {
	switch o {
	case DoNotPlayBack:
		return "DO_NOT_PLAY_BACK"
	case PlayBack:
		return "PLAY_BACK"
	}
	return fmt.Sprintf("Ossia(%d)", int(o))
}

// A TieDirection says which way a tie curves.
type TieDirection int

const (
	RoundedAbove TieDirection = iota + 1
	RoundedBelow
)

func (t TieDirection) String() string {
	switch t {
	case RoundedAbove:
		return "ROUNDED_ABOVE"
	case RoundedBelow:
		return "ROUNDED_BELOW"
	}
	return fmt.Sprintf("TieDirection(%d)", int(t))
}
