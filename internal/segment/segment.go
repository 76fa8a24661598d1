// Package segment splits running text into checkable word spans.
// Offsets are byte positions into the original string so callers can
// slice the text directly.
package segment

import (
	"unicode"
	"unicode/utf8"
)

type Span struct {
	Start int
	End   int
}

// In returns the text covered by the span.
func (s Span) In(text string) string {
	if s.Start < 0 || s.End > len(text) || s.Start > s.End {
		return ""
	}
	return text[s.Start:s.End]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

// Words returns the non-overlapping word spans of text, in order.
// Apostrophes and hyphens stay inside a word only when flanked by word
// runes on both sides, so trailing quotes and dashes are not captured.
func Words(text string) []Span {
	var spans []Span
	start := -1
	for i, r := range text {
		switch {
		case isWordRune(r):
			if start < 0 {
				start = i
			}
		case start >= 0 && isJoiner(r):
			next, _ := utf8.DecodeRuneInString(text[i+utf8.RuneLen(r):])
			if !isWordRune(next) {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
		default:
			if start >= 0 {
				spans = append(spans, Span{Start: start, End: i})
				start = -1
			}
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(text)})
	}
	return spans
}
