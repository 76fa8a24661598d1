// Package script classifies words and language tags into a small closed
// set of writing scripts. Routing decisions in the rest of the module
// key off this enumeration, so it deliberately stays coarse: anything
// outside the listed scripts lands in Other, and tokens that are not a
// single-script word land in Skip.
package script

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

type Script int

const (
	// Skip marks mixed-script or non-word tokens. They are never
	// routed to an engine and are dropped from the custom dictionary
	// on load.
	Skip Script = iota
	Other
	Latin
	Cyrillic
	Greek
	Arabic
	Hebrew
	Han
	Hangul
	Kana
	Thai
	Devanagari

	scriptCount
)

var names = [...]string{
	Skip:       "skip",
	Other:      "other",
	Latin:      "latin",
	Cyrillic:   "cyrillic",
	Greek:      "greek",
	Arabic:     "arabic",
	Hebrew:     "hebrew",
	Han:        "han",
	Hangul:     "hangul",
	Kana:       "kana",
	Thai:       "thai",
	Devanagari: "devanagari",
}

func (s Script) String() string {
	if s < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

// All returns every script in enumeration order. The word store relies
// on this order to serialize partitions deterministically.
func All() []Script {
	out := make([]Script, 0, scriptCount)
	for s := Script(0); s < scriptCount; s++ {
		out = append(out, s)
	}
	return out
}

func ofRune(r rune) Script {
	switch {
	case unicode.In(r, unicode.Hangul):
		return Hangul
	case unicode.In(r, unicode.Hiragana), unicode.In(r, unicode.Katakana):
		return Kana
	case unicode.In(r, unicode.Han):
		return Han
	case unicode.In(r, unicode.Arabic):
		return Arabic
	case unicode.In(r, unicode.Hebrew):
		return Hebrew
	case unicode.In(r, unicode.Thai):
		return Thai
	case unicode.In(r, unicode.Greek):
		return Greek
	case unicode.In(r, unicode.Cyrillic):
		return Cyrillic
	case unicode.In(r, unicode.Devanagari):
		return Devanagari
	case unicode.In(r, unicode.Latin):
		return Latin
	default:
		return Other
	}
}

// wordJoiner reports runes allowed inside a word without contributing
// a script of their own: apostrophes and hyphens.
func wordJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

// ForWord returns the script of a word, or Skip when the token mixes
// scripts, contains non-word characters, or has no letters at all.
func ForWord(word string) Script {
	found := Skip
	for _, r := range word {
		if wordJoiner(r) || unicode.In(r, unicode.Mn) {
			continue
		}
		if !unicode.IsLetter(r) {
			return Skip
		}
		s := ofRune(r)
		if found == Skip {
			found = s
			continue
		}
		if s != found {
			return Skip
		}
	}
	return found
}

// ForLanguage infers the script an engine for the given language tag
// will serve. Tags the parser rejects fall into Other, which keeps
// such an engine addressable without pretending to know its script.
func ForLanguage(tag string) Script {
	t, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return Other
	}
	scr, _ := t.Script()
	switch scr.String() {
	case "Latn":
		return Latin
	case "Cyrl":
		return Cyrillic
	case "Grek":
		return Greek
	case "Arab":
		return Arabic
	case "Hebr":
		return Hebrew
	case "Hans", "Hant", "Hani":
		return Han
	case "Kore", "Hang":
		return Hangul
	case "Jpan", "Hira", "Kana":
		return Kana
	case "Thai":
		return Thai
	case "Deva":
		return Devanagari
	default:
		return Other
	}
}
