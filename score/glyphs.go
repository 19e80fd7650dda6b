package score

// Glyph outlines, in screen units relative to the symbol hotspot.
var (
	glyphNoteheadWhole = newGlyph(
		-1, 0, -3, 0, -3, -1, -1, -1, -1, -2, 2, -2, 2, -1, 4, -1, 4, 0, 2, 0, 2, 1,
		4, 1, 4, 2, 2, 2, 2, 3, -1, 3, -1, 2, -3, 2, -3, 1, -1, 1, -1, 0)
	glyphNoteheadHalf = newGlyph(
		-2, 2, -2, 0, -1, 0, -1, -1, 0, -1, 0, -2, 2, -2, 3, -1, 3, 1, 2, 1, 2, 2,
		1, 2, 1, 3, -1, 3, -2, 2, -1, 3)
	glyphNoteheadFilled = newGlyph(
		-1, 3, 1, 3, 2, 2, -2, 2, -2, 1, 3, 1, 3, 0, -2, 0, -1, -1, 3, -1, 2, -2,
		0, -2, 1, -2)

	glyphRestWhole = newGlyph(-2, -3, 3, -3, 3, -4, -2, -4, -2, -5, 4, -5)
	glyphRestHalf  = newGlyph(-2, 0, 3, 0, 3, -1, -2, -1, -2, -2, 4, -2)
	glyphRestQuarter = newGlyph(
		0, 7, -2, 5, -2, 3, -1, 5, -1, 3, 2, 3, 1, 3, 1, 1, 0, 1, 0, -1,
		-2, -1, -1, -2, 0, -2, 0, -3, 1, -3, 2, -4, 1, -4, 1, -5, -1, -7, -1, -6)
	glyphRestEighth = newGlyph(
		-2, -3, 0, -3, 0, -2, -2, -2, -1, -1, 1, -1, 2, -2, 2, -3, 2, -2,
		1, -1, 1, 2, 0, 3, 0, 5)
	glyphRestSixteenth = newGlyph(
		-2, -3, 0, -3, 0, -2, -2, -2, -1, -1, 1, -1, 2, -2, 2, -3, 2, -2,
		1, -1, 1, 1, 0, 2, 0, 3, -1, 4, -2, 4, -2, 2, -4, 2, -4, 3, -3, 3, -3, 4, -1, 4,
		-1, 7, -2, 8, -2, 11)
	glyphRestThirtySecond = newGlyph(
		4, -8, 3, -8, 3, -6, 1, -6, 1, -8, -1, -8, -1, -7, 0, -7, 0, -6,
		2, -6, 2, -2, 1, -1, 0, -1, 0, -3, -2, -3, -2, -2, -1, -2, -1, -1, 1, -1, 1, 2, 0, 2,
		0, 4, -2, 4, -2, 2, -4, 2, -4, 3, -3, 3, -3, 4, -1, 4, -1, 8, -2, 9, -2, 11)
	glyphRestSixtyFourth = newGlyph(
		4, -8, 3, -8, 3, -6, 1, -6, 1, -8, -1, -8, -1, -7, 0, -7, 0, -6,
		2, -6, 2, -2, 1, -1, 0, -1, 0, -3, -2, -3, -2, -2, -1, -2, -1, -1, 1, -1, 1, 2, 0, 2,
		0, 4, -2, 4, -2, 2, -4, 2, -4, 3, -3, 3, -3, 4, -1, 4, -1, 8, -2, 9,
		-3, 9, -3, 7, -5, 7, -5, 8, -4, 8, -4, 9, -2, 9, -2, 12, -3, 13, -3, 15)

	glyphFlagUp = newGlyph(
		0, 0, 0, 1, 0, 2, 0, 3, 1, 2, 1, 3, 2, 3, 2, 4, 4, 6, 4, 10,
		3, 11, 3, 13)
	glyphFlagDown = newGlyph(
		0, 0, 0, -1, 0, -2, 0, -3, 1, -2, 1, -3, 5, -7, 5, -10,
		4, -11, 5, -10)

	glyphFlat    = newGlyph(-1, -8, -1, 3, 2, 0, 2, -2, -1, -2)
	glyphNatural = newGlyph(-1, -5, -1, 3, 2, 3, 2, 6, 2, -2, -1, -2, -1, 2, 2, 2, 2, -1, -1, -1)
	glyphSharp   = newGlyph(
		-1, 7, -1, -5, -1, -2, -2, -2, 2, -2, 2, -1, -2, -1, 1, -1, 1, -5, 1, 6,
		1, 2, -1, 2, 2, 2, 2, 3, -2, 3, -2, 4, -1, 4)

	glyphDot = newGlyph(0, 0, 1, 0, 1, 1, 0, 1, 0, 0)

	glyphGClef = newGlyph(
		-2, 8, 0, 8, 0, 9, -3, 9, -3, 10, -1, 10, -3, 10, -3, 11, -2, 12, 1, 12, 3, 10,
		3, 5, -1, -12, -1, -19, 0, -18, 0, -21, 1, -21, 1, -23, 2, -23, 2, -21, 3, -21,
		3, -16, 2, -15, 2, -12, 1, -15, 1, -11, 0, -11, 0, -13, -1, -12, -1, -10,
		-2, -11, -2, -9, -3, -10, -3, -8, -4, -9, -4, -7, -5, -7, -5, -5, -6, -5,
		-6, 0, -5, 0, -5, 2, -4, 2, -4, 3, -3, 3, -2, 4, 2, 4, 5, 1, 5, -3, 4, -2, 4, -4,
		-2, -4, 3, -3, -3, -3, -2, -2, -3, -2, -3, 0, -1, 2, -3, 0)
	glyphGClefSmall = newGlyph(
		-1, 8, -3, 8, -3, 9, -2, 9, -2, 10, 0, 10, 1, 9, 1, 4, 0, 3, 0, -1, -1, -1,
		-1, -15, 0, -16, 1, -15, 1, -9, 0, -9, 0, -7, -2, -6, -3, -4, -4, -4, -4, -3,
		-5, -2, -5, 1, -4, 2, -4, 3, -3, 3, -3, 4, -1, 4, -1, 5, 0, 5, 3, 2, 3, -1,
		2, -1, 2, -2, 0, -2, 1, -3, 0, -3, -2, -1, -2, 2, -1, 3, -1, 4)
	glyphFClef = newGlyph(
		-3, 1, -5, 1, -5, 0, -3, 0, -3, -1, -6, -1, -6, -2, -4, -4, 0, -4, 0, -3, 2, -3,
		1, -2, 3, -2, 3, 2, 2, -2, 2, 4, 1, 3, 1, 5, 0, 6, -1, 6, -1, 7, -2, 7, -4, 9,
		-5, 9, -4, 9)
	glyphFClefSmall = newGlyph(
		0, 1, -1, 1, 0, 0, -1, 0, -1, -1, 0, -2, 3, -2, 3, -1, 4, -1, 5, 0, 5, 2, 4, 0,
		4, 4, 3, 4, 2, 6, 1, 6, 0, 7, -1, 8, -2, 8)
	glyphFClefDot1 = newGlyph(6, -3, 7, -3, 7, -2, 6, -2, 6, -3)
	glyphFClefDot2 = newGlyph(6, 2, 7, 2, 7, 3, 6, 3, 6, 2)
)
