package fraction

// glyphs maps every recognized fraction or digit glyph to its value in inches.
var glyphs = map[rune]float64{
	'½': 0.5, '¼': 0.25, '¾': 0.75,
	'⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,

	'¹': 1, '²': 2, '³': 3, '⁴': 4, '⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,

	'₁': 1, '₂': 2, '₃': 3, '₄': 4, '₅': 5, '₆': 6, '₇': 7, '₈': 8, '₉': 9,
}

// vulgarGlyphs is the character class of glyphs usable in structural forms.
const vulgarGlyphs = "½¼¾⅛⅜⅝⅞"

// ratio is a reduced numerator/denominator pair.
type ratio struct{ num, den int }

// glyphByRatio is the reverse of the vulgar part of glyphs.
var glyphByRatio = map[ratio]string{
	{1, 2}: "½", {1, 4}: "¼", {3, 4}: "¾",
	{1, 8}: "⅛", {3, 8}: "⅜", {5, 8}: "⅝", {7, 8}: "⅞",
}

// GlyphValue returns the value of a glyph from the glyph table.
func GlyphValue(r rune) (float64, bool) {
	v, ok := glyphs[r]
	return v, ok
}

// IsVulgar reports whether r is one of the seven vulgar fraction glyphs.
func IsVulgar(r rune) bool {
	for _, g := range vulgarGlyphs {
		if g == r {
			return true
		}
	}
	return false
}

// containsGlyph reports whether s has any rune from the glyph table.
func containsGlyph(s string) bool {
	for _, r := range s {
		if _, ok := glyphs[r]; ok {
			return true
		}
	}
	return false
}
