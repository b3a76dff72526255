package handler

import "testing"

func TestClampLimit(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"absent", "", 10},
		{"non-numeric", "abc", 10},
		{"float", "12.5", 10},
		{"zero", "0", 1},
		{"negative", "-3", 1},
		{"one", "1", 1},
		{"in range", "25", 25},
		{"max", "50", 50},
		{"over max", "51", 50},
		{"way over max", "100000", 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampLimit(tc.raw); got != tc.want {
				t.Fatalf("clampLimit(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}
