package wordlist

import (
	"strings"

	"github.com/sajari/fuzzy"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/kepka-app/lib-spellcheck/internal/engine"
)

// checker serves spell and suggest queries from an in-memory word
// census. Internally everything is UTF-8; the Checker contract speaks
// native-encoding bytes, so queries are decoded on the way in and
// suggestions encoded on the way out.
type checker struct {
	encName string
	enc     encoding.Encoding
	words   map[string]struct{}
	model   *fuzzy.Model
}

// NewChecker builds a census-backed checker. It is shared with the
// stardict provider, which feeds it a UTF-8 census.
func NewChecker(encName string, words []string) (engine.Checker, error) {
	enc, err := engine.ResolveEncoding(encName)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(words)
	return &checker{
		encName: encName,
		enc:     enc,
		words:   set,
		model:   model,
	}, nil
}

func (c *checker) EncodingName() string {
	return c.encName
}

func (c *checker) Spell(word []byte) bool {
	w, err := c.decode(word)
	if err != nil || w == "" {
		return false
	}
	if _, ok := c.words[w]; ok {
		return true
	}
	// Dictionaries list proper nouns capitalized and everything else
	// lower-cased; accept a sentence-case query either way.
	_, ok := c.words[strings.ToLower(w)]
	return ok
}

func (c *checker) Suggest(word []byte, max int) [][]byte {
	if max <= 0 {
		return nil
	}
	w, err := c.decode(word)
	if err != nil || w == "" {
		return nil
	}
	var out [][]byte
	for _, guess := range c.model.Suggestions(strings.ToLower(w), true) {
		if len(out) >= max {
			break
		}
		if guess == "" {
			continue
		}
		raw, _, err := transform.Bytes(c.enc.NewEncoder(), []byte(guess))
		if err != nil {
			continue
		}
		out = append(out, raw)
	}
	return out
}

func (c *checker) decode(raw []byte) (string, error) {
	b, _, err := transform.Bytes(c.enc.NewDecoder(), raw)
	return string(b), err
}
