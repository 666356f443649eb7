package themes

// Pattern identifiers mirror the fill patterns available in habit forms. Each
// maps to a glyph used when rendering completed cells in the terminal.
const (
	PatternNone          = "none"
	PatternDiagonalRight = "diagonal-right"
	PatternDiagonalLeft  = "diagonal-left"
	PatternCrosshatch    = "crosshatch"
	PatternDots          = "dots"
	PatternDashedH       = "dashed-h"
	PatternDashedV       = "dashed-v"
	PatternCircles       = "circles"
	PatternWaves         = "waves"
)

var patternGlyphs = map[string]rune{
	PatternNone:          '█',
	PatternDiagonalRight: '╱',
	PatternDiagonalLeft:  '╲',
	PatternCrosshatch:    '╳',
	PatternDots:          '·',
	PatternDashedH:       '╌',
	PatternDashedV:       '╎',
	PatternCircles:       '○',
	PatternWaves:         '~',
}

// ValidPattern reports whether name is a known pattern identifier.
func ValidPattern(name string) bool {
	_, ok := patternGlyphs[name]
	return ok
}

// PatternGlyph returns the terminal glyph for a pattern, defaulting to the
// solid block for unknown names.
func PatternGlyph(name string) rune {
	if g, ok := patternGlyphs[name]; ok {
		return g
	}
	return patternGlyphs[PatternNone]
}

// PatternNames returns the pattern identifiers in form display order.
func PatternNames() []string {
	return []string{
		PatternNone,
		PatternDiagonalRight,
		PatternDiagonalLeft,
		PatternCrosshatch,
		PatternDots,
		PatternDashedH,
		PatternDashedV,
		PatternCircles,
		PatternWaves,
	}
}
