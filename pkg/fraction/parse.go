package fraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/balustrade/pkg/errors"
)

// form is one structural shape of measurement text. Forms are tried in order
// and the first one whose pattern matches decides the value.
type form struct {
	name    string
	pattern *regexp.Regexp
	value   func(m []string) float64
}

// separator is the run allowed between the whole part and the fraction. It
// admits every Unicode space and line separator plus the byte order mark, so
// pasted text with no-break or thin spaces reads like a plain space.
const separator = `[\s\p{Zs}\x0b\x{2028}\x{2029}\x{feff}-]*`

var forms = []form{
	{
		name:    "mixed",
		pattern: regexp.MustCompile(`^(\d+)` + separator + `(\d+)/(\d+)$`),
		value: func(m []string) float64 {
			return number(m[1]) + number(m[2])/number(m[3])
		},
	},
	{
		name:    "mixed-glyph",
		pattern: regexp.MustCompile(`^(\d+)` + separator + `([` + vulgarGlyphs + `])$`),
		value: func(m []string) float64 {
			return number(m[1]) + glyphOf(m[2])
		},
	},
	{
		name:    "joined-glyph",
		pattern: regexp.MustCompile(`^(\d+)([` + vulgarGlyphs + `])$`),
		value: func(m []string) float64 {
			return number(m[1]) + glyphOf(m[2])
		},
	},
	{
		name:    "fraction",
		pattern: regexp.MustCompile(`^(\d+)/(\d+)$`),
		value: func(m []string) float64 {
			return number(m[1]) / number(m[2])
		},
	},
	{
		name:    "glyph",
		pattern: regexp.MustCompile(`^([` + vulgarGlyphs + `])$`),
		value: func(m []string) float64 {
			return glyphOf(m[1])
		},
	},
	{
		name:    "whole",
		pattern: regexp.MustCompile(`^(\d+)$`),
		value: func(m []string) float64 {
			return number(m[1])
		},
	},
	{
		name:    "decimal",
		pattern: regexp.MustCompile(`^(\d+\.\d+)$`),
		value: func(m []string) float64 {
			return number(m[1])
		},
	},
}

// decimalLiteral is the whole-string shape accepted after all forms miss.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Parse converts measurement text such as "1½", "1 1/2" or "2.125" into
// decimal inches. It returns an error with code [errors.ErrCodeParse] when
// the text has no recognizable form.
func Parse(input string) (float64, error) {
	s := normalize(input)

	for _, f := range forms {
		if m := f.pattern.FindStringSubmatch(s); m != nil {
			return f.value(m), nil
		}
	}

	if decimalLiteral.MatchString(s) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, nil
		}
	}

	if containsGlyph(s) {
		if v, ok := scan(s); ok {
			return v, nil
		}
	}

	return 0, errors.New(errors.ErrCodeParse, "cannot parse fraction: %s", input)
}

// Classify names the form Parse would use for input: one of the structural
// form names ("mixed", "mixed-glyph", "joined-glyph", "fraction", "glyph",
// "whole", "decimal"), "literal" for a plain decimal literal, "scan" for the
// left-to-right glyph scan, or "" when the input does not parse.
func Classify(input string) string {
	s := normalize(input)
	for _, f := range forms {
		if f.pattern.MatchString(s) {
			return f.name
		}
	}
	if decimalLiteral.MatchString(s) {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return "literal"
		}
	}
	if containsGlyph(s) {
		if _, ok := scan(s); ok {
			return "scan"
		}
	}
	return ""
}

// ParseValue parses v when it is text and passes numbers through unchanged.
func ParseValue(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case string:
		return Parse(x)
	case fmt.Stringer:
		return Parse(x.String())
	}
	return 0, errors.New(errors.ErrCodeParse, "cannot parse fraction: %v", v)
}

// scan sums every number and glyph in s from left to right. Whitespace and
// hyphens separate numbers; other characters are skipped. It reports false
// when a buffered run holds no digits (for example a stray ".").
func scan(s string) (float64, bool) {
	var (
		total float64
		buf   strings.Builder
	)

	flush := func() bool {
		if buf.Len() == 0 {
			return true
		}
		v, ok := leadingNumber(buf.String())
		buf.Reset()
		total += v
		return ok
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			buf.WriteRune(r)
		case r == '.' || r == ',':
			buf.WriteByte('.')
		case isSpace(r) || r == '-':
			if !flush() {
				return 0, false
			}
		default:
			v, ok := glyphs[r]
			if !ok {
				continue
			}
			if !flush() {
				return 0, false
			}
			total += v
		}
	}

	if !flush() {
		return 0, false
	}
	return total, true
}

// normalize trims surrounding space and turns the first comma into a
// decimal point.
func normalize(input string) string {
	return strings.Replace(strings.TrimFunc(input, isSpace), ",", ".", 1)
}

// isSpace reports whether r is whitespace: any Unicode space or line
// separator and the byte order mark, but not U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// leadingNumber reads the longest "digits[.digits]" prefix of a buffer made
// of digits and periods, so "1.2.3" reads as 1.2.
func leadingNumber(s string) (float64, bool) {
	end := 0
	seenDot, seenDigit := false, false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else {
			seenDigit = true
		}
		end++
	}
	if !seenDigit {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// number converts a run of ASCII digits. Overlong runs saturate to +Inf
// rather than failing, matching float semantics.
func number(digits string) float64 {
	v, _ := strconv.ParseFloat(digits, 64)
	return v
}

func glyphOf(s string) float64 {
	r, _ := utf8.DecodeRuneInString(s)
	return glyphs[r]
}
