package translate

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!!", "hello world"},
		{"", ""},
		{"   ", ""},
		{"...!!!", ""},
		{"Don't  Panic", "don't panic"},
		{"UPPER lower 42", "upper lower 42"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"--dash--separated--", "dash separated"},
		{"déjà vu", "d j vu"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
