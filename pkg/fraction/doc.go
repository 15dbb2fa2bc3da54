// Package fraction converts between carpenter-style measurement text and
// decimal inches.
//
// # Overview
//
// Tape measures are read in whole inches plus a fraction, and people type
// those readings in many ways: "1½", "1 1/2", "1-1/2", "2,125" or a plain
// decimal. [Parse] normalizes all of these into a float64 number of inches.
// [Format] goes the other way, rounding a decimal to the nearest sixteenth and
// rendering it the way it would be written on a cut list ("4 ½", "3 3/16").
//
// # Parsing
//
// [Parse] tries a fixed, ordered list of structural forms and the first match
// wins:
//
//  1. whole plus slash fraction: "1 1/2", "1-1/2"
//  2. whole plus glyph with a separator: "1 ½", "1-½"
//  3. whole plus glyph without a separator: "1½"
//  4. bare slash fraction: "3/4"
//  5. lone glyph: "¾"
//  6. whole number: "2"
//  7. decimal: "2.125"
//
// Anything else is tried as a plain decimal literal. If that fails and the
// text contains a glyph from the glyph table, the characters are scanned left
// to right and every number and glyph encountered is summed, so loosely typed
// input such as "1 1½" or "2-¼-⅛" still produces a value. Text that none of
// these steps accept yields an error with code [errors.ErrCodeParse].
//
// A comma decimal separator is accepted in place of a period.
//
// # Glyphs
//
// The glyph table holds the seven vulgar fractions a tape-measure reading
// needs (½ ¼ ¾ ⅛ ⅜ ⅝ ⅞) together with the superscript (¹–⁹) and subscript
// (₁–₉) digits. Superscript and subscript digits count as their face value and
// are only reachable through the left-to-right scan; they are not combined
// into numerator/denominator pairs.
//
// # Formatting
//
// [Format] rounds to sixteenths; [FormatUnit] accepts another denominator.
// Halves, quarters and eighths are written with their glyph:
//
//	fraction.Format(1.5)    // "1 ½"
//	fraction.Format(0.75)   // "¾"
//	fraction.Format(3.1875) // "3 3/16"
//	fraction.Format(4)      // "4"
package fraction
