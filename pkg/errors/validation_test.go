package errors

import (
	"math"
	"testing"
)

func TestValidateSpan(t *testing.T) {
	tests := []struct {
		name    string
		span    float64
		min     float64
		wantErr bool
	}{
		{"valid", 42, 10, false},
		{"exactly minimum", 10, 10, false},
		{"no minimum", 2, 0, false},

		{"zero", 0, 10, true},
		{"negative", -5, 0, true},
		{"below minimum", 9.5, 10, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpan(tt.span, tt.min)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpan(%v, %v) error = %v, wantErr %v", tt.span, tt.min, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateSpan error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateThickness(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"valid", 1.5, false},
		{"small", 0.0625, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThickness(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThickness(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateThicknessText(t *testing.T) {
	if err := ValidateThicknessText("1 1/2"); err != nil {
		t.Errorf("ValidateThicknessText() error = %v, want nil", err)
	}
	for _, input := range []string{"", "   ", "\t"} {
		if err := ValidateThicknessText(input); err == nil {
			t.Errorf("ValidateThicknessText(%q) should fail", input)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", true},
		{"", true},
		{"JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat error code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}
