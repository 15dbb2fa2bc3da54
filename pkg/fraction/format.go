package fraction

import (
	"math"
	"strconv"
)

// DefaultUnit is the construction rounding unit: sixteenths of an inch.
const DefaultUnit = 16

// epsilon is the remainder below which a value counts as a whole number.
const epsilon = 1e-4

// Format renders inches as a construction fraction rounded to sixteenths.
func Format(decimal float64) string {
	return FormatUnit(decimal, DefaultUnit)
}

// FormatUnit renders inches as a construction fraction rounded to 1/unit.
// Halves, quarters and eighths use their glyph; other fractions are written
// as "num/den". A non-positive unit falls back to [DefaultUnit].
func FormatUnit(decimal float64, unit int) string {
	if unit <= 0 {
		unit = DefaultUnit
	}
	if decimal == 0 {
		return "0"
	}

	whole := math.Floor(decimal)
	remainder := decimal - whole
	if math.Abs(remainder) < epsilon {
		return formatWhole(whole)
	}

	num := int(roundHalfUp(remainder * float64(unit)))
	d := GCD(num, unit)
	r := ratio{num / d, unit / d}

	if glyph, ok := glyphByRatio[r]; ok {
		if whole == 0 {
			return glyph
		}
		return formatWhole(whole) + " " + glyph
	}

	if r.den == 1 {
		return formatWhole(whole + float64(r.num))
	}

	frac := strconv.Itoa(r.num) + "/" + strconv.Itoa(r.den)
	if whole == 0 {
		return frac
	}
	return formatWhole(whole) + " " + frac
}

// GCD returns the greatest common divisor of a and b. GCD(a, 0) is a.
func GCD(a, b int) int {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// Round rounds decimal to the nearest 1/unit, with halves rounding up.
func Round(decimal float64, unit int) float64 {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return roundHalfUp(decimal*float64(unit)) / float64(unit)
}

// roundHalfUp rounds x to the nearest integer, breaking ties toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
