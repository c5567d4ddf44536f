package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Fold lowercases a string, trims it and collapses inner whitespace so two
// strings that only differ in case or spacing compare equal.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return s
}

// ContainsFold reports whether substr is within s after folding both.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// EqualFold reports whether s and t are equal after folding both.
func EqualFold(s, t string) bool {
	return Fold(s) == Fold(t)
}

// Title uppercases the first letter of every space separated word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
