package score

import (
	"strconv"
	"strings"

	"moria.us/niffty/rational"
)

// Tags is an immutable set of optional attributes attached to a chunk. The
// With methods return a modified copy; unchanged fields are shared. The zero
// value has no tags set.
type Tags struct {
	absolutePlacement       *Placement
	alternateEnding         *int
	anchorOverride          *string
	articulationDirection   *ArticulationDirection
	bezierIncoming          *Placement
	bezierOutgoing          *Placement
	chordSymbolOffset       *int
	customGraphic           *int
	endOfSystem             bool
	fannedBeam              *FannedBeam
	figuredBass             *int
	graceNote               *rational.Rational
	guitarGridOffset        *int
	guitarTablature         bool
	height                  *int
	id                      *int
	invisible               bool
	largeSize               bool
	lineQuality             *LineQuality
	logicalPlacement        *LogicalPlacement
	midiPerformance         *MidiPerformance
	multiNodeEndOfSystem    bool
	multiNodeStartOfSystem  bool
	numberOfFlags           *int
	numberOfNodes           *int
	numberOfStaffLines      *int
	ossia                   *Ossia
	partDescriptionOverride *PartDescriptionOverride
	partID                  *int
	referencePointOverride  *ReferencePointOverride
	rehearsalMarkOffset     *int
	restNumeral             *int
	silent                  bool
	slashedStem             bool
	smallSize               bool
	spacingByPart           bool
	splitStem               bool
	staffName               bool
	staffStep               *int
	thickness               *int
	tieDirection            *TieDirection
	tupletDescription       *TupletDescription
	voiceID                 *int
	width                   *int
}

// AbsolutePlacement returns the absolute placement tag, if present.
func (t Tags) AbsolutePlacement() (Placement, bool) {
	if t.absolutePlacement == nil {
		return Placement{}, false
	}
	return *t.absolutePlacement, true
}

// WithAbsolutePlacement returns a copy with the absolute placement tag set.
func (t Tags) WithAbsolutePlacement(v Placement) Tags {
	t.absolutePlacement = &v
	return t
}

// AlternateEnding returns the alternate ending tag, if present.
func (t Tags) AlternateEnding() (int, bool) {
	if t.alternateEnding == nil {
		return 0, false
	}
	return *t.alternateEnding, true
}

// WithAlternateEnding returns a copy with the alternate ending tag set.
func (t Tags) WithAlternateEnding(v int) Tags {
	t.alternateEnding = &v
	return t
}

// AnchorOverride returns the anchor override tag, if present.
func (t Tags) AnchorOverride() (string, bool) {
	if t.anchorOverride == nil {
		return "", false
	}
	return *t.anchorOverride, true
}

// WithAnchorOverride returns a copy with the anchor override tag set.
func (t Tags) WithAnchorOverride(v string) Tags {
	t.anchorOverride = &v
	return t
}

// ArticulationDirection returns the articulation direction tag, if present.
func (t Tags) ArticulationDirection() (ArticulationDirection, bool) {
	if t.articulationDirection == nil {
		return 0, false
	}
	return *t.articulationDirection, true
}

// WithArticulationDirection returns a copy with the articulation direction tag set.
func (t Tags) WithArticulationDirection(v ArticulationDirection) Tags {
	t.articulationDirection = &v
	return t
}

// BezierIncoming returns the bezier incoming tag, if present.
func (t Tags) BezierIncoming() (Placement, bool) {
	if t.bezierIncoming == nil {
		return Placement{}, false
	}
	return *t.bezierIncoming, true
}

// WithBezierIncoming returns a copy with the bezier incoming tag set.
func (t Tags) WithBezierIncoming(v Placement) Tags {
	t.bezierIncoming = &v
	return t
}

// BezierOutgoing returns the bezier outgoing tag, if present.
func (t Tags) BezierOutgoing() (Placement, bool) {
	if t.bezierOutgoing == nil {
		return Placement{}, false
	}
	return *t.bezierOutgoing, true
}

// WithBezierOutgoing returns a copy with the bezier outgoing tag set.
func (t Tags) WithBezierOutgoing(v Placement) Tags {
	t.bezierOutgoing = &v
	return t
}

// ChordSymbolOffset returns the chord symbol offset tag, if present.
func (t Tags) ChordSymbolOffset() (int, bool) {
	if t.chordSymbolOffset == nil {
		return 0, false
	}
	return *t.chordSymbolOffset, true
}

// WithChordSymbolOffset returns a copy with the chord symbol offset tag set.
func (t Tags) WithChordSymbolOffset(v int) Tags {
	t.chordSymbolOffset = &v
	return t
}

// CustomGraphic returns the custom graphic tag, if present.
func (t Tags) CustomGraphic() (int, bool) {
	if t.customGraphic == nil {
		return 0, false
	}
	return *t.customGraphic, true
}

// WithCustomGraphic returns a copy with the custom graphic tag set.
func (t Tags) WithCustomGraphic(v int) Tags {
	t.customGraphic = &v
	return t
}

// EndOfSystem reports whether the end of system tag is present.
func (t Tags) EndOfSystem() bool {
	return t.endOfSystem
}

// WithEndOfSystem returns a copy with the end of system tag set.
func (t Tags) WithEndOfSystem(v bool) Tags {
	t.endOfSystem = v
	return t
}

// FannedBeam returns the fanned beam tag, if present.
func (t Tags) FannedBeam() (FannedBeam, bool) {
	if t.fannedBeam == nil {
		return 0, false
	}
	return *t.fannedBeam, true
}

// WithFannedBeam returns a copy with the fanned beam tag set.
func (t Tags) WithFannedBeam(v FannedBeam) Tags {
	t.fannedBeam = &v
	return t
}

// FiguredBass returns the figured bass tag, if present.
func (t Tags) FiguredBass() (int, bool) {
	if t.figuredBass == nil {
		return 0, false
	}
	return *t.figuredBass, true
}

// WithFiguredBass returns a copy with the figured bass tag set.
func (t Tags) WithFiguredBass(v int) Tags {
	t.figuredBass = &v
	return t
}

// GraceNote returns the grace note tag, if present.
func (t Tags) GraceNote() (rational.Rational, bool) {
	if t.graceNote == nil {
		return rational.Zero, false
	}
	return *t.graceNote, true
}

// WithGraceNote returns a copy with the grace note tag set.
func (t Tags) WithGraceNote(v rational.Rational) Tags {
	t.graceNote = &v
	return t
}

// GuitarGridOffset returns the guitar grid offset tag, if present.
func (t Tags) GuitarGridOffset() (int, bool) {
	if t.guitarGridOffset == nil {
		return 0, false
	}
	return *t.guitarGridOffset, true
}

// WithGuitarGridOffset returns a copy with the guitar grid offset tag set.
func (t Tags) WithGuitarGridOffset(v int) Tags {
	t.guitarGridOffset = &v
	return t
}

// GuitarTablature reports whether the guitar tablature tag is present.
func (t Tags) GuitarTablature() bool {
	return t.guitarTablature
}

// WithGuitarTablature returns a copy with the guitar tablature tag set.
func (t Tags) WithGuitarTablature(v bool) Tags {
	t.guitarTablature = v
	return t
}

// Height returns the height tag, if present.
func (t Tags) Height() (int, bool) {
	if t.height == nil {
		return 0, false
	}
	return *t.height, true
}

// WithHeight returns a copy with the height tag set.
func (t Tags) WithHeight(v int) Tags {
	t.height = &v
	return t
}

// ID returns the ID tag, if present.
func (t Tags) ID() (int, bool) {
	if t.id == nil {
		return 0, false
	}
	return *t.id, true
}

// WithID returns a copy with the ID tag set.
func (t Tags) WithID(v int) Tags {
	t.id = &v
	return t
}

// Invisible reports whether the invisible tag is present.
func (t Tags) Invisible() bool {
	return t.invisible
}

// WithInvisible returns a copy with the invisible tag set.
func (t Tags) WithInvisible(v bool) Tags {
	t.invisible = v
	return t
}

// LargeSize reports whether the large size tag is present.
func (t Tags) LargeSize() bool {
	return t.largeSize
}

// WithLargeSize returns a copy with the large size tag set.
func (t Tags) WithLargeSize(v bool) Tags {
	t.largeSize = v
	return t
}

// LineQuality returns the line quality tag, if present.
func (t Tags) LineQuality() (LineQuality, bool) {
	if t.lineQuality == nil {
		return 0, false
	}
	return *t.lineQuality, true
}

// WithLineQuality returns a copy with the line quality tag set.
func (t Tags) WithLineQuality(v LineQuality) Tags {
	t.lineQuality = &v
	return t
}

// LogicalPlacement returns the logical placement tag, if present.
func (t Tags) LogicalPlacement() (LogicalPlacement, bool) {
	if t.logicalPlacement == nil {
		return LogicalPlacement{}, false
	}
	return *t.logicalPlacement, true
}

// WithLogicalPlacement returns a copy with the logical placement tag set.
func (t Tags) WithLogicalPlacement(v LogicalPlacement) Tags {
	t.logicalPlacement = &v
	return t
}

// MidiPerformance returns the MIDI performance tag, if present.
func (t Tags) MidiPerformance() (MidiPerformance, bool) {
	if t.midiPerformance == nil {
		return MidiPerformance{}, false
	}
	return *t.midiPerformance, true
}

// WithMidiPerformance returns a copy with the MIDI performance tag set.
func (t Tags) WithMidiPerformance(v MidiPerformance) Tags {
	t.midiPerformance = &v
	return t
}

// MultiNodeEndOfSystem reports whether the multi node end of system tag is present.
func (t Tags) MultiNodeEndOfSystem() bool {
	return t.multiNodeEndOfSystem
}

// WithMultiNodeEndOfSystem returns a copy with the multi node end of system tag set.
func (t Tags) WithMultiNodeEndOfSystem(v bool) Tags {
	t.multiNodeEndOfSystem = v
	return t
}

// MultiNodeStartOfSystem reports whether the multi node start of system tag is present.
func (t Tags) MultiNodeStartOfSystem() bool {
	return t.multiNodeStartOfSystem
}

// WithMultiNodeStartOfSystem returns a copy with the multi node start of system tag set.
func (t Tags) WithMultiNodeStartOfSystem(v bool) Tags {
	t.multiNodeStartOfSystem = v
	return t
}

// NumberOfFlags returns the number of flags tag, if present.
func (t Tags) NumberOfFlags() (int, bool) {
	if t.numberOfFlags == nil {
		return 0, false
	}
	return *t.numberOfFlags, true
}

// WithNumberOfFlags returns a copy with the number of flags tag set.
func (t Tags) WithNumberOfFlags(v int) Tags {
	t.numberOfFlags = &v
	return t
}

// NumberOfNodes returns the number of nodes tag, if present.
func (t Tags) NumberOfNodes() (int, bool) {
	if t.numberOfNodes == nil {
		return 0, false
	}
	return *t.numberOfNodes, true
}

// WithNumberOfNodes returns a copy with the number of nodes tag set.
func (t Tags) WithNumberOfNodes(v int) Tags {
	t.numberOfNodes = &v
	return t
}

// NumberOfStaffLines returns the number of staff lines tag, if present.
func (t Tags) NumberOfStaffLines() (int, bool) {
	if t.numberOfStaffLines == nil {
		return 0, false
	}
	return *t.numberOfStaffLines, true
}

// WithNumberOfStaffLines returns a copy with the number of staff lines tag set.
func (t Tags) WithNumberOfStaffLines(v int) Tags {
	t.numberOfStaffLines = &v
	return t
}

// Ossia returns the ossia tag, if present.
func (t Tags) Ossia() (Ossia, bool) {
	if t.ossia == nil {
		return 0, false
	}
	return *t.ossia, true
}

// WithOssia returns a copy with the ossia tag set.
func (t Tags) WithOssia(v Ossia) Tags {
	t.ossia = &v
	return t
}

// PartDescriptionOverride returns the part description override tag, if present.
func (t Tags) PartDescriptionOverride() (PartDescriptionOverride, bool) {
	if t.partDescriptionOverride == nil {
		return PartDescriptionOverride{}, false
	}
	return *t.partDescriptionOverride, true
}

// WithPartDescriptionOverride returns a copy with the part description override tag set.
func (t Tags) WithPartDescriptionOverride(v PartDescriptionOverride) Tags {
	t.partDescriptionOverride = &v
	return t
}

// PartID returns the part ID tag, if present.
func (t Tags) PartID() (int, bool) {
	if t.partID == nil {
		return 0, false
	}
	return *t.partID, true
}

// WithPartID returns a copy with the part ID tag set.
func (t Tags) WithPartID(v int) Tags {
	t.partID = &v
	return t
}

// ReferencePointOverride returns the reference point override tag, if present.
func (t Tags) ReferencePointOverride() (ReferencePointOverride, bool) {
	if t.referencePointOverride == nil {
		return ReferencePointOverride{}, false
	}
	return *t.referencePointOverride, true
}

// WithReferencePointOverride returns a copy with the reference point override tag set.
func (t Tags) WithReferencePointOverride(v ReferencePointOverride) Tags {
	t.referencePointOverride = &v
	return t
}

// RehearsalMarkOffset returns the rehearsal mark offset tag, if present.
func (t Tags) RehearsalMarkOffset() (int, bool) {
	if t.rehearsalMarkOffset == nil {
		return 0, false
	}
	return *t.rehearsalMarkOffset, true
}

// WithRehearsalMarkOffset returns a copy with the rehearsal mark offset tag set.
func (t Tags) WithRehearsalMarkOffset(v int) Tags {
	t.rehearsalMarkOffset = &v
	return t
}

// RestNumeral returns the rest numeral tag, if present.
func (t Tags) RestNumeral() (int, bool) {
	if t.restNumeral == nil {
		return 0, false
	}
	return *t.restNumeral, true
}

// WithRestNumeral returns a copy with the rest numeral tag set.
func (t Tags) WithRestNumeral(v int) Tags {
	t.restNumeral = &v
	return t
}

// Silent reports whether the silent tag is present.
func (t Tags) Silent() bool {
	return t.silent
}

// WithSilent returns a copy with the silent tag set.
func (t Tags) WithSilent(v bool) Tags {
	t.silent = v
	return t
}

// SlashedStem reports whether the slashed stem tag is present.
func (t Tags) SlashedStem() bool {
	return t.slashedStem
}

// WithSlashedStem returns a copy with the slashed stem tag set.
func (t Tags) WithSlashedStem(v bool) Tags {
	t.slashedStem = v
	return t
}

// SmallSize reports whether the small size tag is present.
func (t Tags) SmallSize() bool {
	return t.smallSize
}

// WithSmallSize returns a copy with the small size tag set.
func (t Tags) WithSmallSize(v bool) Tags {
	t.smallSize = v
	return t
}

// SpacingByPart reports whether the spacing by part tag is present.
func (t Tags) SpacingByPart() bool {
	return t.spacingByPart
}

// WithSpacingByPart returns a copy with the spacing by part tag set.
func (t Tags) WithSpacingByPart(v bool) Tags {
	t.spacingByPart = v
	return t
}

// SplitStem reports whether the split stem tag is present.
func (t Tags) SplitStem() bool {
	return t.splitStem
}

// WithSplitStem returns a copy with the split stem tag set.
func (t Tags) WithSplitStem(v bool) Tags {
	t.splitStem = v
	return t
}

// StaffName reports whether the staff name tag is present.
func (t Tags) StaffName() bool {
	return t.staffName
}

// WithStaffName returns a copy with the staff name tag set.
func (t Tags) WithStaffName(v bool) Tags {
	t.staffName = v
	return t
}

// StaffStep returns the staff step tag, if present.
func (t Tags) StaffStep() (int, bool) {
	if t.staffStep == nil {
		return 0, false
	}
	return *t.staffStep, true
}

// WithStaffStep returns a copy with the staff step tag set.
func (t Tags) WithStaffStep(v int) Tags {
	t.staffStep = &v
	return t
}

// Thickness returns the thickness tag, if present.
func (t Tags) Thickness() (int, bool) {
	if t.thickness == nil {
		return 0, false
	}
	return *t.thickness, true
}

// WithThickness returns a copy with the thickness tag set.
func (t Tags) WithThickness(v int) Tags {
	t.thickness = &v
	return t
}

// TieDirection returns the tie direction tag, if present.
func (t Tags) TieDirection() (TieDirection, bool) {
	if t.tieDirection == nil {
		return 0, false
	}
	return *t.tieDirection, true
}

// WithTieDirection returns a copy with the tie direction tag set.
func (t Tags) WithTieDirection(v TieDirection) Tags {
	t.tieDirection = &v
	return t
}

// TupletDescription returns the tuplet description tag, if present.
func (t Tags) TupletDescription() (TupletDescription, bool) {
	if t.tupletDescription == nil {
		return TupletDescription{}, false
	}
	return *t.tupletDescription, true
}

// WithTupletDescription returns a copy with the tuplet description tag set.
func (t Tags) WithTupletDescription(v TupletDescription) Tags {
	t.tupletDescription = &v
	return t
}

// VoiceID returns the voice ID tag, if present.
func (t Tags) VoiceID() (int, bool) {
	if t.voiceID == nil {
		return 0, false
	}
	return *t.voiceID, true
}

// WithVoiceID returns a copy with the voice ID tag set.
func (t Tags) WithVoiceID(v int) Tags {
	t.voiceID = &v
	return t
}

// Width returns the width tag, if present.
func (t Tags) Width() (int, bool) {
	if t.width == nil {
		return 0, false
	}
	return *t.width, true
}

// WithWidth returns a copy with the width tag set.
func (t Tags) WithWidth(v int) Tags {
	t.width = &v
	return t
}

// Overlay returns a copy of t with every tag that is set in o replacing
// the value in t.
func (t Tags) Overlay(o Tags) Tags {
	if o.absolutePlacement != nil {
		t.absolutePlacement = o.absolutePlacement
	}
	if o.alternateEnding != nil {
		t.alternateEnding = o.alternateEnding
	}
	if o.anchorOverride != nil {
		t.anchorOverride = o.anchorOverride
	}
	if o.articulationDirection != nil {
		t.articulationDirection = o.articulationDirection
	}
	if o.bezierIncoming != nil {
		t.bezierIncoming = o.bezierIncoming
	}
	if o.bezierOutgoing != nil {
		t.bezierOutgoing = o.bezierOutgoing
	}
	if o.chordSymbolOffset != nil {
		t.chordSymbolOffset = o.chordSymbolOffset
	}
	if o.customGraphic != nil {
		t.customGraphic = o.customGraphic
	}
	t.endOfSystem = t.endOfSystem || o.endOfSystem
	if o.fannedBeam != nil {
		t.fannedBeam = o.fannedBeam
	}
	if o.figuredBass != nil {
		t.figuredBass = o.figuredBass
	}
	if o.graceNote != nil {
		t.graceNote = o.graceNote
	}
	if o.guitarGridOffset != nil {
		t.guitarGridOffset = o.guitarGridOffset
	}
	t.guitarTablature = t.guitarTablature || o.guitarTablature
	if o.height != nil {
		t.height = o.height
	}
	if o.id != nil {
		t.id = o.id
	}
	t.invisible = t.invisible || o.invisible
	t.largeSize = t.largeSize || o.largeSize
	if o.lineQuality != nil {
		t.lineQuality = o.lineQuality
	}
	if o.logicalPlacement != nil {
		t.logicalPlacement = o.logicalPlacement
	}
	if o.midiPerformance != nil {
		t.midiPerformance = o.midiPerformance
	}
	t.multiNodeEndOfSystem = t.multiNodeEndOfSystem || o.multiNodeEndOfSystem
	t.multiNodeStartOfSystem = t.multiNodeStartOfSystem || o.multiNodeStartOfSystem
	if o.numberOfFlags != nil {
		t.numberOfFlags = o.numberOfFlags
	}
	if o.numberOfNodes != nil {
		t.numberOfNodes = o.numberOfNodes
	}
	if o.numberOfStaffLines != nil {
		t.numberOfStaffLines = o.numberOfStaffLines
	}
	if o.ossia != nil {
		t.ossia = o.ossia
	}
	if o.partDescriptionOverride != nil {
		t.partDescriptionOverride = o.partDescriptionOverride
	}
	if o.partID != nil {
		t.partID = o.partID
	}
	if o.referencePointOverride != nil {
		t.referencePointOverride = o.referencePointOverride
	}
	if o.rehearsalMarkOffset != nil {
		t.rehearsalMarkOffset = o.rehearsalMarkOffset
	}
	if o.restNumeral != nil {
		t.restNumeral = o.restNumeral
	}
	t.silent = t.silent || o.silent
	t.slashedStem = t.slashedStem || o.slashedStem
	t.smallSize = t.smallSize || o.smallSize
	t.spacingByPart = t.spacingByPart || o.spacingByPart
	t.splitStem = t.splitStem || o.splitStem
	t.staffName = t.staffName || o.staffName
	if o.staffStep != nil {
		t.staffStep = o.staffStep
	}
	if o.thickness != nil {
		t.thickness = o.thickness
	}
	if o.tieDirection != nil {
		t.tieDirection = o.tieDirection
	}
	if o.tupletDescription != nil {
		t.tupletDescription = o.tupletDescription
	}
	if o.voiceID != nil {
		t.voiceID = o.voiceID
	}
	if o.width != nil {
		t.width = o.width
	}
	return t
}

// String returns each tag that is set, each preceded by a comma.
func (t Tags) String() string {
	var b strings.Builder
	flag := func(set bool, name string) {
		if set {
			b.WriteString(", ")
			b.WriteString(name)
		}
	}
	value := func(name, v string) {
		b.WriteString(", ")
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(v)
	}
	if t.absolutePlacement != nil {
		value("absolute placement", t.absolutePlacement.String())
	}
	if t.alternateEnding != nil {
		value("alternate ending", strconv.Itoa(*t.alternateEnding))
	}
	if t.anchorOverride != nil {
		value("anchor override", *t.anchorOverride)
	}
	if t.articulationDirection != nil {
		value("articulation direction", t.articulationDirection.String())
	}
	if t.bezierIncoming != nil {
		value("bezier incoming", t.bezierIncoming.String())
	}
	if t.bezierOutgoing != nil {
		value("bezier outgoing", t.bezierOutgoing.String())
	}
	if t.chordSymbolOffset != nil {
		value("chord symbol offset", strconv.Itoa(*t.chordSymbolOffset))
	}
	if t.customGraphic != nil {
		value("custom graphic", strconv.Itoa(*t.customGraphic))
	}
	flag(t.endOfSystem, "end of system")
	if t.fannedBeam != nil {
		value("fanned beam", t.fannedBeam.String())
	}
	if t.figuredBass != nil {
		value("figured bass", strconv.Itoa(*t.figuredBass))
	}
	if t.graceNote != nil {
		value("grace note", t.graceNote.String())
	}
	if t.guitarGridOffset != nil {
		value("guitar grid offset", strconv.Itoa(*t.guitarGridOffset))
	}
	flag(t.guitarTablature, "guitar tablature")
	if t.height != nil {
		value("height", strconv.Itoa(*t.height))
	}
	if t.id != nil {
		value("ID", strconv.Itoa(*t.id))
	}
	flag(t.invisible, "invisible")
	flag(t.largeSize, "large size")
	if t.lineQuality != nil {
		value("line quality", t.lineQuality.String())
	}
	if t.logicalPlacement != nil {
		value("logical placement", t.logicalPlacement.String())
	}
	if t.midiPerformance != nil {
		value("MIDI performance", t.midiPerformance.String())
	}
	flag(t.multiNodeEndOfSystem, "multi node end of system")
	flag(t.multiNodeStartOfSystem, "multi node start of system")
	if t.numberOfFlags != nil {
		value("number of flags", strconv.Itoa(*t.numberOfFlags))
	}
	if t.numberOfNodes != nil {
		value("number of nodes", strconv.Itoa(*t.numberOfNodes))
	}
	if t.numberOfStaffLines != nil {
		value("number of staff lines", strconv.Itoa(*t.numberOfStaffLines))
	}
	if t.ossia != nil {
		value("ossia", t.ossia.String())
	}
	if t.partDescriptionOverride != nil {
		value("part description override", t.partDescriptionOverride.String())
	}
	if t.partID != nil {
		value("part ID", strconv.Itoa(*t.partID))
	}
	if t.referencePointOverride != nil {
		value("reference point override", t.referencePointOverride.String())
	}
	if t.rehearsalMarkOffset != nil {
		value("rehearsal mark offset", strconv.Itoa(*t.rehearsalMarkOffset))
	}
	if t.restNumeral != nil {
		value("rest numeral", strconv.Itoa(*t.restNumeral))
	}
	flag(t.silent, "silent")
	flag(t.slashedStem, "slashed stem")
	flag(t.smallSize, "small size")
	flag(t.spacingByPart, "spacing by part")
	flag(t.splitStem, "split stem")
	flag(t.staffName, "staff name")
	if t.staffStep != nil {
		value("staff step", strconv.Itoa(*t.staffStep))
	}
	if t.thickness != nil {
		value("thickness", strconv.Itoa(*t.thickness))
	}
	if t.tieDirection != nil {
		value("tie direction", t.tieDirection.String())
	}
	if t.tupletDescription != nil {
		value("tuplet description", t.tupletDescription.String())
	}
	if t.voiceID != nil {
		value("voice ID", strconv.Itoa(*t.voiceID))
	}
	if t.width != nil {
		value("width", strconv.Itoa(*t.width))
	}
	return b.String()
}
