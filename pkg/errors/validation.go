package errors

import (
	"math"
	"strings"
)

// ValidateSpan checks that a total span is a usable measurement.
//
// The validation rules mirror what the calculator form always enforced:
//   - The span must be a finite number greater than zero
//   - The span must not be shorter than minSpan (skipped when minSpan <= 0)
func ValidateSpan(span, minSpan float64) error {
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		return New(ErrCodeInvalidInput, "please enter a valid positive number for total distance")
	}
	if minSpan > 0 && span < minSpan {
		return New(ErrCodeInvalidInput, "total distance should be at least %g inches", minSpan)
	}
	return nil
}

// ValidateThickness checks that a parsed baluster thickness is positive and finite.
func ValidateThickness(thickness float64) error {
	if math.IsNaN(thickness) || math.IsInf(thickness, 0) || thickness <= 0 {
		return New(ErrCodeInvalidInput, "please enter a valid baluster thickness (e.g., 1.5, 1½, 1 1/2, 2¼)")
	}
	return nil
}

// ValidateThicknessText rejects empty thickness input before it reaches the parser.
func ValidateThicknessText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "please enter baluster thickness")
	}
	return nil
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	"text": true,
	"json": true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return New(ErrCodeInvalidFormat, "unsupported output format: %q (want text or json)", format)
	}
	return nil
}
