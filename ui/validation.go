package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIntOrDefault attempts to parse a string as an integer.
// Returns the parsed value or defaultValue if parsing fails.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return val
}

// parseIntInRange parses a string as an integer and validates it's within the given range.
// Returns the parsed value, or an error if parsing fails or value is out of range.
func parseIntInRange(s string, min, max int, fieldName string) (int, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}

	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}

	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %d and %d", fieldName, min, max)
	}

	return val, nil
}

// countOptions returns the split-count choices "1".."limit".
func countOptions(limit int) []string {
	opts := make([]string, limit)
	for i := range opts {
		opts[i] = strconv.Itoa(i + 1)
	}
	return opts
}
