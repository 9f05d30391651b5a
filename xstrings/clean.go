package xstrings

import (
	"strings"
	"unicode"
)

// StringClean trims non-graphic characters, such as control codes and
// byte order marks, from both ends of input.
func StringClean(input string) string {
	return strings.TrimFunc(input, func(r rune) bool {
		return !unicode.IsGraphic(r)
	})
}

// StripPunctuation removes every Unicode punctuation rune from input.
func StripPunctuation(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, input)
}

// SplitSpace splits on each single space. Runs of spaces produce empty
// fields, unlike strings.Fields.
func SplitSpace(input string) []string {
	return strings.Split(input, " ")
}
