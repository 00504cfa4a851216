package question

import "strings"

// NormalizeInput trims surrounding whitespace from user input.
// Expected answers are never normalized.
func NormalizeInput(value string) string {
	return strings.TrimSpace(value)
}
