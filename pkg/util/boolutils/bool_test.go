package boolutils

import "testing"

func TestIsTrueText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", false},
		{" true ", false},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsTrueText(tt.in); got != tt.want {
			t.Errorf("IsTrueText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToBoolPtr(t *testing.T) {
	if ToBoolPtr("") != nil {
		t.Error("empty text must yield nil")
	}
	if got := ToBoolPtr("true"); got == nil || !*got {
		t.Errorf("ToBoolPtr(true) = %v, want pointer to true", got)
	}
	if got := ToBoolPtr("nope"); got == nil || *got {
		t.Errorf("ToBoolPtr(nope) = %v, want pointer to false", got)
	}
}
