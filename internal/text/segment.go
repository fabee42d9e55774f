package text

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

func isBoundary(r rune) bool {
	switch r {
	case '.', '!', '?', '…':
		return true
	}
	return false
}

// Sentences yields the speakable sentences of s, one at a time. The text is
// split right after any of ". ! ? …", with the punctuation kept on the
// preceding sentence and any whitespace that follows swallowed by the split.
// Fragments that trim down to one rune or less are dropped.
func Sentences(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i, r := range s {
			if !isBoundary(r) {
				continue
			}
			end := i + utf8.RuneLen(r)
			if !emit(s[start:end], yield) {
				return
			}
			start = end
			for start < len(s) {
				r, size := utf8.DecodeRuneInString(s[start:])
				if !unicode.IsSpace(r) {
					break
				}
				start += size
			}
		}
		if start < len(s) {
			emit(s[start:], yield)
		}
	}
}

func emit(fragment string, yield func(string) bool) bool {
	trimmed := strings.TrimSpace(fragment)
	if utf8.RuneCountInString(trimmed) <= 1 {
		return true
	}
	return yield(trimmed)
}
