package handler

import "strconv"

const (
	defaultLimit = 10
	maxLimit     = 50
)

// clampLimit parses a raw limit parameter and clamps it into [1, maxLimit].
// An absent or non-numeric value yields defaultLimit; the caller can never
// push the effective limit outside the range.
func clampLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if n < 1 {
		return 1
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
