// Package spellcheck orchestrates per-language dictionary engines
// behind one spell-checking API: words are routed to engines by their
// writing script, a user-editable custom dictionary is kept in sync on
// disk, and suggestions are aggregated across engines under a shared
// cap. The spell algorithm itself lives behind an engine provider; this
// package decides who gets asked and what the user has overridden.
//
// A Checker is an explicitly constructed instance; the package-level
// functions operate on a lazily built shared default for drop-in use.
package spellcheck

import (
	"sync"

	"github.com/kepka-app/lib-spellcheck/internal/segment"
	"github.com/kepka-app/lib-spellcheck/internal/service"
	"github.com/kepka-app/lib-spellcheck/internal/wordstore"
)

// Span is a misspelled word's byte range within the checked text.
type Span struct {
	Start int
	End   int
}

type Checker struct {
	svc    *service.Service
	queue  *queue
	maxSug int
}

// New builds a Checker. The custom dictionary is loaded (and its file
// normalized) right away; engines appear on the first UpdateLanguages
// call. No constructor error: a missing dictionary tree just means no
// engine ever activates.
func New(opts ...Option) *Checker {
	o := buildOptions(opts)
	store := wordstore.Open(o.customDict, o.logger)
	svc := service.New(service.Params{
		Dir:            o.dir,
		Store:          store,
		Providers:      o.providers,
		MaxSuggestions: o.maxSuggestions,
		Logger:         o.logger,
	})
	return &Checker{
		svc:    svc,
		queue:  newQueue(),
		maxSug: o.maxSuggestions,
	}
}

// Close drains the pending mutation queue and stops its worker. The
// Checker must not be used afterwards.
func (c *Checker) Close() {
	c.queue.close()
}

// IsAvailable reports whether spellchecking is supported at all.
// Always true with the built-in providers; kept as an extension point
// for platforms without them.
func (c *Checker) IsAvailable() bool {
	return true
}

// UpdateLanguages reconciles the active engine set against langs.
// Unloadable languages are skipped silently.
func (c *Checker) UpdateLanguages(langs []string) {
	c.svc.UpdateLanguages(langs)
}

// ActiveLanguages returns the language tags with a live engine.
func (c *Checker) ActiveLanguages() []string {
	return c.svc.ActiveLanguages()
}

// CheckSpelling reports whether word is acceptable to the custom
// dictionary, the ignore list, or any engine of the word's script.
func (c *Checker) CheckSpelling(word string) bool {
	return c.svc.CheckSpelling(word)
}

// Suggestions returns up to limit ranked corrections for word; a
// non-positive or oversized limit means the global cap.
func (c *Checker) Suggestions(word string, limit int) []string {
	return c.svc.Suggestions(word, limit)
}

// FillSuggestionList appends corrections for word to *out until the
// global cap is reached, accumulating across calls that share out.
func (c *Checker) FillSuggestionList(word string, out *[]string) {
	if out == nil {
		return
	}
	for _, s := range c.svc.Suggestions(word, -1) {
		if len(*out) >= c.maxSug {
			return
		}
		*out = append(*out, s)
	}
}

// AddWord schedules word for addition to the custom dictionary.
// Fire-and-forget: the write happens on the mutation queue, in order
// with other scheduled mutations.
func (c *Checker) AddWord(word string) {
	c.queue.enqueue(func() { c.svc.AddWord(word) })
}

// RemoveWord schedules removal of every occurrence of word from the
// custom dictionary. Ordered after any previously scheduled AddWord.
func (c *Checker) RemoveWord(word string) {
	c.queue.enqueue(func() { c.svc.RemoveWord(word) })
}

// IgnoreWord marks word acceptable for the rest of the process
// lifetime. Synchronous and never persisted.
func (c *Checker) IgnoreWord(word string) {
	c.svc.IgnoreWord(word)
}

// IsWordInDictionary reports whether word was added to the custom
// dictionary (ignored words do not count).
func (c *Checker) IsWordInDictionary(word string) bool {
	return c.svc.IsWordInDictionary(word)
}

// Sync blocks until every mutation scheduled so far has run. Mostly
// useful in tests and on shutdown paths.
func (c *Checker) Sync() {
	c.queue.sync()
}

// CheckText returns the byte spans of misspelled words in text, in
// order. The skip predicate exempts spans from checking entirely;
// nil checks everything.
func (c *Checker) CheckText(text string, skip func(Span) bool) []Span {
	var inner func(segment.Span) bool
	if skip != nil {
		inner = func(sp segment.Span) bool {
			return skip(Span{Start: sp.Start, End: sp.End})
		}
	}
	miss := c.svc.CheckText(text, inner)
	out := make([]Span, 0, len(miss))
	for _, sp := range miss {
		out = append(out, Span{Start: sp.Start, End: sp.End})
	}
	return out
}

var (
	defaultOnce    sync.Once
	defaultChecker *Checker
)

// Default returns the shared process-wide Checker, building it on
// first use from DefaultDir.
func Default() *Checker {
	defaultOnce.Do(func() {
		defaultChecker = New()
	})
	return defaultChecker
}

// Init warms the shared Checker in the background so the first
// CheckSpelling call does not pay the dictionary-load cost.
func Init() {
	go Default()
}

func CheckSpelling(word string) bool { return Default().CheckSpelling(word) }

func Suggestions(word string, limit int) []string { return Default().Suggestions(word, limit) }

func FillSuggestionList(word string, out *[]string) { Default().FillSuggestionList(word, out) }

func AddWord(word string) { Default().AddWord(word) }

func RemoveWord(word string) { Default().RemoveWord(word) }

func IgnoreWord(word string) { Default().IgnoreWord(word) }

func IsWordInDictionary(word string) bool { return Default().IsWordInDictionary(word) }

func UpdateLanguages(langs []string) { Default().UpdateLanguages(langs) }

func ActiveLanguages() []string { return Default().ActiveLanguages() }

func CheckText(text string, skip func(Span) bool) []Span { return Default().CheckText(text, skip) }

func IsAvailable() bool { return Default().IsAvailable() }
