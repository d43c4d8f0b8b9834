package timeutil

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "00:00:00.00"},
		{"seconds only", 45, "00:00:45.00"},
		{"minutes", 90, "00:01:30.00"},
		{"hours", 3661, "01:01:01.00"},
		{"fractional", 30.53, "00:00:30.53"},
		{"sub-second", 0.79, "00:00:00.79"},
		{"long duration", 7325.25, "02:02:05.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSeconds(tt.seconds)
			if got != tt.expected {
				t.Errorf("FormatSeconds(%v) = %q, expected %q", tt.seconds, got, tt.expected)
			}
		})
	}
}
