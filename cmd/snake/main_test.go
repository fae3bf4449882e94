package main

import "testing"

func TestIsEasy(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"no args", nil, false},
		{"easy", []string{"easy"}, true},
		{"easy among others", []string{"fast", "easy", "x"}, true},
		{"case sensitive", []string{"EASY"}, false},
		{"unknown only", []string{"hard"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isEasy(tc.args, "easy"); got != tc.expected {
				t.Errorf("isEasy(%v) = %v, expected %v", tc.args, got, tc.expected)
			}
		})
	}
}
