// Package engine wraps one language's dictionary behind a uniform
// spell/suggest surface. The underlying checker is an opaque
// collaborator obtained from a Provider; the engine's job is validity
// tracking, script pinning, and marshalling words to and from the
// checker's native text encoding.
package engine

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/kepka-app/lib-spellcheck/internal/script"
)

// Checker is the opaque per-language spell engine. It operates on
// bytes in its own native encoding; EncodingName reports which one.
type Checker interface {
	Spell(word []byte) bool
	Suggest(word []byte, max int) [][]byte
	EncodingName() string
}

// Provider constructs a Checker for a language out of the dictionary
// directory. Each provider owns its file-layout requirements and
// returns an error when they are not met.
type Provider interface {
	Name() string
	Open(lang, dir string) (Checker, error)
}

type Engine struct {
	lang    string
	script  script.Script
	checker Checker
	enc     encoding.Encoding
}

// New builds an engine for lang, trying providers in order. A missing
// dictionary or an unresolvable encoding leaves the engine invalid
// rather than returning an error; callers discard invalid engines.
func New(lang, dir string, providers ...Provider) *Engine {
	e := &Engine{
		lang:   lang,
		script: script.ForLanguage(lang),
	}
	if dir == "" {
		return e
	}
	for _, p := range providers {
		c, err := p.Open(lang, dir)
		if err != nil {
			continue
		}
		enc, err := ResolveEncoding(c.EncodingName())
		if err != nil {
			continue
		}
		e.checker = c
		e.enc = enc
		break
	}
	return e
}

func (e *Engine) Valid() bool {
	return e.checker != nil
}

func (e *Engine) Lang() string {
	return e.lang
}

func (e *Engine) Script() script.Script {
	return e.script
}

// Spell reports whether the checker accepts the word. Words that
// cannot be represented in the native encoding are misspelled by
// definition.
func (e *Engine) Spell(word string) bool {
	raw, err := e.encode(word)
	if err != nil {
		return false
	}
	return e.checker.Spell(raw)
}

// Suggest appends ranked corrections for word to out, stopping when
// the checker runs dry or len(out) reaches max. The same slice is
// handed across engines so the cap is shared by the whole query.
func (e *Engine) Suggest(word string, out []string, max int) []string {
	if len(out) >= max {
		return out
	}
	raw, err := e.encode(word)
	if err != nil {
		return out
	}
	for _, guess := range e.checker.Suggest(raw, max-len(out)) {
		if len(out) >= max {
			break
		}
		s, err := e.decode(guess)
		if err != nil || s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (e *Engine) encode(word string) ([]byte, error) {
	b, _, err := transform.Bytes(e.enc.NewEncoder(), []byte(word))
	return b, err
}

func (e *Engine) decode(raw []byte) (string, error) {
	b, _, err := transform.Bytes(e.enc.NewDecoder(), raw)
	return string(b), err
}
