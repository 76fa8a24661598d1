// Package service is the orchestration layer: it owns the live engine
// set and the custom dictionary store, reconciles engines against the
// requested language list, and routes every query by the word's
// script. No method returns an error; failures degrade to "no active
// engines" or "not found" and are reported through counters and logs.
package service

import (
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/kepka-app/lib-spellcheck/internal/cache"
	"github.com/kepka-app/lib-spellcheck/internal/engine"
	"github.com/kepka-app/lib-spellcheck/internal/engine/registry"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
	"github.com/kepka-app/lib-spellcheck/internal/script"
	"github.com/kepka-app/lib-spellcheck/internal/segment"
	"github.com/kepka-app/lib-spellcheck/internal/wordstore"
)

// DefaultMaxSuggestions is the global suggestion cap shared by every
// caller; engines stop being consulted once a query's list is full.
const DefaultMaxSuggestions = 10

type Params struct {
	Dir            string
	Store          *wordstore.Store
	Providers      []engine.Provider
	MaxSuggestions int
	Logger         *slog.Logger
}

type Service struct {
	dir       string
	providers []engine.Provider
	maxSug    int
	log       *slog.Logger

	reg   *registry.Registry
	store *wordstore.Store
	sug   *cache.Cache
}

func New(p Params) *Service {
	if p.MaxSuggestions <= 0 {
		p.MaxSuggestions = DefaultMaxSuggestions
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	if p.Store == nil {
		p.Store = wordstore.Open("", p.Logger)
	}
	return &Service{
		dir:       p.Dir,
		providers: p.Providers,
		maxSug:    p.MaxSuggestions,
		log:       p.Logger,
		reg:       registry.New(),
		store:     p.Store,
		sug:       cache.New(1024, 5*time.Minute),
	}
}

// UpdateLanguages reconciles the live engine set against langs: engines
// for languages no longer requested are dropped, newly requested
// languages get an engine, and languages whose dictionaries fail to
// load stay silently inactive. Calling it twice with the same list
// constructs nothing the second time.
func (s *Service) UpdateLanguages(langs []string) {
	have := make(map[string]struct{})
	for _, l := range s.reg.Keep(langs) {
		have[l] = struct{}{}
	}
	for _, lang := range langs {
		if lang == "" {
			continue
		}
		if _, ok := have[lang]; ok {
			continue
		}
		have[lang] = struct{}{}
		e := engine.New(lang, s.dir, s.providers...)
		if !e.Valid() {
			observability.EngineLoadFailures.Add(1)
			s.log.Debug("engine unavailable", "lang", lang, "dir", s.dir)
			continue
		}
		if err := s.reg.Add(e); err != nil {
			s.log.Warn("engine not registered", "lang", lang, "error", err)
		}
	}
	s.sug.Reset()
	s.log.Info("languages reconciled", "active", s.reg.Langs())
}

func (s *Service) ActiveLanguages() []string {
	return s.reg.Langs()
}

// CheckSpelling reports whether word is acceptable: ignored or added
// words short-circuit, then every engine of the word's script gets a
// say. Tokens classified Skip are never misspellings.
func (s *Service) CheckSpelling(word string) bool {
	sc := script.ForWord(word)
	if sc == script.Skip {
		return true
	}
	if s.store.Known(word) {
		return true
	}
	for _, e := range s.reg.List() {
		if e.Script() != sc {
			continue
		}
		if e.Spell(word) {
			return true
		}
	}
	return false
}

// Suggestions returns up to limit ranked corrections for word,
// aggregated across matching-script engines in registry order. The
// limit is clamped to the global cap. Results are cached until the
// language set changes or the entry expires.
func (s *Service) Suggestions(word string, limit int) []string {
	if limit <= 0 || limit > s.maxSug {
		limit = s.maxSug
	}
	sc := script.ForWord(word)
	if sc == script.Skip {
		return nil
	}
	key := strconv.Itoa(limit) + "|" + word
	if v, ok := s.sug.Get(key); ok {
		if res, ok := v.([]string); ok {
			// Callers may append to the result; never hand out the
			// cached slice itself.
			return slices.Clone(res)
		}
	}
	out := make([]string, 0, limit)
	for _, e := range s.reg.List() {
		if len(out) >= limit {
			break
		}
		if e.Script() != sc {
			continue
		}
		out = e.Suggest(word, out, limit)
	}
	s.sug.Set(key, slices.Clone(out))
	return out
}

func (s *Service) AddWord(word string) {
	s.store.Add(word)
}

func (s *Service) RemoveWord(word string) {
	s.store.Remove(word)
}

func (s *Service) IgnoreWord(word string) {
	s.store.Ignore(word)
}

func (s *Service) IsWordInDictionary(word string) bool {
	return s.store.Contains(word)
}

// CheckText segments text into word spans and returns the spans that
// fail CheckSpelling, in order. Spans accepted by skip are not checked
// at all (URLs, code, whatever the caller filters).
func (s *Service) CheckText(text string, skip func(segment.Span) bool) []segment.Span {
	var miss []segment.Span
	for _, sp := range segment.Words(text) {
		if skip != nil && skip(sp) {
			continue
		}
		if !s.CheckSpelling(sp.In(text)) {
			miss = append(miss, sp)
		}
	}
	return miss
}
