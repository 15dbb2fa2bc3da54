package fraction

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/balustrade/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		form  string
	}{
		{"joined glyph", "1½", 1.5, "mixed-glyph"},
		{"mixed space", "1 1/2", 1.5, "mixed"},
		{"mixed hyphen", "1-1/2", 1.5, "mixed"},
		{"mixed spaced hyphen", "1 - 1/2", 1.5, "mixed"},
		{"mixed sixteenths", "12 3/16", 12.1875, "mixed"},
		{"glyph with space", "2 ¼", 2.25, "mixed-glyph"},
		{"glyph with hyphen", "3-¾", 3.75, "mixed-glyph"},
		{"lone glyph", "¾", 0.75, "glyph"},
		{"eighth glyph", "⅝", 0.625, "glyph"},
		{"bare fraction", "3/4", 0.75, "fraction"},
		{"whole", "2", 2, "whole"},
		{"decimal", "2.125", 2.125, "decimal"},
		{"comma decimal", "2,125", 2.125, "decimal"},
		{"surrounding space", "  5  ", 5, "whole"},
		{"leading dot", ".5", 0.5, "literal"},
		{"trailing dot", "3.", 3, "literal"},
		{"exponent", "1e1", 10, "literal"},
		{"signed", "-2", -2, "literal"},
		{"scan mixed", "1 1½", 2.5, "scan"},
		{"scan hyphens", "2-¼-⅛", 2.375, "scan"},
		{"scan superscript", "²", 2, "scan"},
		{"scan subscript", "1₂", 3, "scan"},
		{"scan ignores letters", "abc½", 0.5, "scan"},
		{"scan unit suffix", "1½in", 1.5, "scan"},
		{"scan repeated dots", "1.2.3 ½", 1.7, "scan"},
		{"no-break space", "1\u00a01/2", 1.5, "mixed"},
		{"thin space", "1\u20091/2", 1.5, "mixed"},
		{"narrow no-break space", "1\u202f1/2", 1.5, "mixed"},
		{"ideographic space", "1\u30001/2", 1.5, "mixed"},
		{"vertical tab", "1\v1/2", 1.5, "mixed"},
		{"no-break space glyph", "1\u00a0½", 1.5, "mixed-glyph"},
		{"byte order mark", "\ufeff2 1/4\ufeff", 2.25, "mixed"},
		{"trim no-break space", "\u00a03/4\u2009", 0.75, "fraction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if form := Classify(tt.input); form != tt.form {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, form, tt.form)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"garbage",
		"",
		"   ",
		"1/2/3",
		"1,5,5",
		"½ .",
		"inf",
		"NaN",
		"0x10",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", input)
			}
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("Parse(%q) code = %v, want %v", input, errors.GetCode(err), errors.ErrCodeParse)
			}
			if !strings.Contains(err.Error(), input) {
				t.Errorf("error %q should name the input %q", err.Error(), input)
			}
			if Classify(input) != "" {
				t.Errorf("Classify(%q) = %q, want empty", input, Classify(input))
			}
		})
	}
}

func TestParseFormOrder(t *testing.T) {
	// "1½" also fits the joined form, but the separator form comes first.
	if got := Classify("1½"); got != "mixed-glyph" {
		t.Errorf("Classify(1½) = %q, want mixed-glyph", got)
	}
	// A slash fraction wins over the generic decimal literal.
	if got := Classify("5/8"); got != "fraction" {
		t.Errorf("Classify(5/8) = %q, want fraction", got)
	}
}

func TestParseDivideByZero(t *testing.T) {
	got, err := Parse("1/0")
	if err != nil {
		t.Fatalf("Parse(1/0) error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("Parse(1/0) = %v, want +Inf", got)
	}
}

type measurement string

func (m measurement) String() string { return string(m) }

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr bool
	}{
		{"float64", 2.5, 2.5, false},
		{"float32", float32(0.25), 0.25, false},
		{"int", 3, 3, false},
		{"int64", int64(7), 7, false},
		{"string", "1 1/2", 1.5, false},
		{"stringer", measurement("2¼"), 2.25, false},
		{"bad string", "nope", 0, true},
		{"bool", true, 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseValue(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGlyphTable(t *testing.T) {
	for _, r := range vulgarGlyphs {
		if !IsVulgar(r) {
			t.Errorf("IsVulgar(%q) = false, want true", r)
		}
		if _, ok := GlyphValue(r); !ok {
			t.Errorf("GlyphValue(%q) missing", r)
		}
	}

	for i, r := range []rune("¹²³⁴⁵⁶⁷⁸⁹") {
		v, ok := GlyphValue(r)
		if !ok || v != float64(i+1) {
			t.Errorf("GlyphValue(%q) = %v, %v, want %d", r, v, ok, i+1)
		}
		if IsVulgar(r) {
			t.Errorf("IsVulgar(%q) = true, want false", r)
		}
	}

	for i, r := range []rune("₁₂₃₄₅₆₇₈₉") {
		if v, _ := GlyphValue(r); v != float64(i+1) {
			t.Errorf("GlyphValue(%q) = %v, want %d", r, v, i+1)
		}
	}

	if _, ok := GlyphValue('⅓'); ok {
		t.Error("GlyphValue(⅓) should not be in the table")
	}
}
