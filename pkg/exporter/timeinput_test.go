package exporter

import (
	"errors"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"4.15", 4.15},
		{" 12 ", 12},
		{"999", 999},
		{"1e1", 10},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if err != nil {
				t.Fatalf("ParseTime(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "4,15", "1:30", "-1", "NaN", "inf"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTime(input)
			if !errors.Is(err, ErrInvalidTimeInput) {
				t.Errorf("ParseTime(%q): expected ErrInvalidTimeInput, got %v", input, err)
			}
		})
	}
}
