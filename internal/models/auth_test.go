package models

import "testing"

func TestIsMFACode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12a456", false},
		{" 23456", false},
		{"١٢٣٤٥٦", false}, // non-ASCII digits
		{"", false},
	}

	for _, tt := range tests {
		if got := IsMFACode(tt.code); got != tt.want {
			t.Errorf("IsMFACode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
