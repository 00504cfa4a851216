package question

// MatchAnswer reports whether input equals expected once the input is trimmed.
// The comparison is case-sensitive.
func MatchAnswer(input, expected string) bool {
	return NormalizeInput(input) == expected
}

// IsBlank reports whether input is empty or whitespace only.
func IsBlank(input string) bool {
	return NormalizeInput(input) == ""
}
