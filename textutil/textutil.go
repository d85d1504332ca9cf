// Package textutil provides small string helpers used by the packages
// and testing examples. All functions are rune-aware.
package textutil

import (
	"strings"
	"unicode"
)

// CountWords reports the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// ignoring case and any non-alphanumeric runes. The empty string is a
// palindrome.
func IsPalindrome(s string) bool {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	cleaned := b.String()
	return cleaned == Reverse(cleaned)
}

// CapitalizeWords upper-cases the first rune of every word and
// lower-cases the rest.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
