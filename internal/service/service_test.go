package service

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kepka-app/lib-spellcheck/internal/engine"
	"github.com/kepka-app/lib-spellcheck/internal/segment"
	"github.com/kepka-app/lib-spellcheck/internal/wordstore"
)

type fakeChecker struct {
	known   map[string]bool
	guesses []string
}

func (f *fakeChecker) Spell(word []byte) bool {
	return f.known[string(word)]
}

func (f *fakeChecker) Suggest(word []byte, max int) [][]byte {
	out := make([][]byte, 0, len(f.guesses))
	for _, g := range f.guesses {
		if len(out) >= max {
			break
		}
		out = append(out, []byte(g))
	}
	return out
}

func (f *fakeChecker) EncodingName() string {
	return "UTF-8"
}

// fakeProvider serves per-language fixtures and counts constructions,
// so reconciliation tests can assert engines are not rebuilt.
type fakeProvider struct {
	dicts map[string]*fakeChecker
	opens map[string]int
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Open(lang, dir string) (engine.Checker, error) {
	p.opens[lang]++
	if c, ok := p.dicts[lang]; ok {
		return c, nil
	}
	return nil, errNoDict
}

var errNoDict = errors.New("no dictionary")

func newService(t *testing.T, dicts map[string]*fakeChecker) (*Service, *fakeProvider) {
	t.Helper()
	p := &fakeProvider{dicts: dicts, opens: make(map[string]int)}
	store := wordstore.Open(filepath.Join(t.TempDir(), "custom"), nil)
	svc := New(Params{
		Dir:       "/dicts",
		Store:     store,
		Providers: []engine.Provider{p},
	})
	return svc, p
}

func TestUpdateLanguagesReconciles(t *testing.T) {
	svc, p := newService(t, map[string]*fakeChecker{
		"en": {known: map[string]bool{"hello": true}},
		"ru": {known: map[string]bool{"привет": true}},
	})

	svc.UpdateLanguages([]string{"en", "ru", "xx", "en"})
	if got := svc.ActiveLanguages(); !reflect.DeepEqual(got, []string{"en", "ru"}) {
		t.Fatalf("active = %v", got)
	}

	// Same list again: nothing is reconstructed.
	svc.UpdateLanguages([]string{"en", "ru", "xx"})
	if p.opens["en"] != 1 || p.opens["ru"] != 1 {
		t.Fatalf("engines rebuilt: opens = %v", p.opens)
	}
	if got := svc.ActiveLanguages(); !reflect.DeepEqual(got, []string{"en", "ru"}) {
		t.Fatalf("active after repeat = %v", got)
	}

	svc.UpdateLanguages([]string{"en"})
	if got := svc.ActiveLanguages(); !reflect.DeepEqual(got, []string{"en"}) {
		t.Fatalf("active after shrink = %v", got)
	}

	// Re-requesting a dropped language constructs it anew.
	svc.UpdateLanguages([]string{"en", "ru"})
	if p.opens["ru"] != 2 {
		t.Fatalf("opens = %v", p.opens)
	}
}

func TestCheckSpellingRoutesByScript(t *testing.T) {
	svc, _ := newService(t, map[string]*fakeChecker{
		// The en checker claims to know a cyrillic word; it must never
		// be asked about one.
		"en": {known: map[string]bool{"hello": true, "хлеб": true}},
		"ru": {known: map[string]bool{"привет": true}},
	})
	svc.UpdateLanguages([]string{"en", "ru"})

	if !svc.CheckSpelling("hello") {
		t.Error("hello should be accepted")
	}
	if !svc.CheckSpelling("привет") {
		t.Error("привет should be accepted")
	}
	if svc.CheckSpelling("хлеб") {
		t.Error("cyrillic word must not reach the latin engine")
	}
	if svc.CheckSpelling("goodbye") {
		t.Error("unknown word should be rejected")
	}
	if !svc.CheckSpelling("123") {
		t.Error("non-word tokens are never misspellings")
	}
}

func TestCustomWordsShortCircuit(t *testing.T) {
	svc, _ := newService(t, nil)

	if svc.CheckSpelling("xyzzy") {
		t.Fatal("unknown word accepted with no engines")
	}
	svc.AddWord("xyzzy")
	if !svc.CheckSpelling("xyzzy") {
		t.Fatal("added word rejected")
	}
	if !svc.IsWordInDictionary("xyzzy") {
		t.Fatal("IsWordInDictionary(xyzzy) = false")
	}
	svc.RemoveWord("xyzzy")
	if svc.CheckSpelling("xyzzy") {
		t.Fatal("removed word still accepted")
	}

	svc.IgnoreWord("plugh")
	if !svc.CheckSpelling("plugh") {
		t.Fatal("ignored word rejected")
	}
	if svc.IsWordInDictionary("plugh") {
		t.Fatal("ignored word reported as added")
	}
}

func TestSuggestionsCapAcrossEngines(t *testing.T) {
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	svc, _ := newService(t, map[string]*fakeChecker{
		"en": {guesses: many},
		"de": {guesses: many},
	})
	svc.UpdateLanguages([]string{"en", "de"})

	got := svc.Suggestions("qqq", 0)
	if len(got) != DefaultMaxSuggestions {
		t.Fatalf("got %d suggestions, want the cap %d", len(got), DefaultMaxSuggestions)
	}
	// First engine fills 8, second contributes the remaining 2.
	if got[7] != "h" || got[8] != "a" || got[9] != "b" {
		t.Fatalf("aggregation order off: %q", got)
	}

	if got := svc.Suggestions("qqq", 3); len(got) != 3 {
		t.Fatalf("limit 3 returned %d", len(got))
	}
	if got := svc.Suggestions("qqq", 500); len(got) != DefaultMaxSuggestions {
		t.Fatalf("limit above cap returned %d", len(got))
	}
	if got := svc.Suggestions("123", 5); got != nil {
		t.Fatalf("skippable token produced suggestions: %q", got)
	}
}

func TestSuggestionsCachedResultIsIsolated(t *testing.T) {
	svc, _ := newService(t, map[string]*fakeChecker{
		"en": {guesses: []string{"the", "then"}},
	})
	svc.UpdateLanguages([]string{"en"})

	first := svc.Suggestions("teh", 5)
	if len(first) != 2 {
		t.Fatalf("suggestions = %q", first)
	}
	first[0] = "mangled"
	_ = append(first[:1], "clipped")

	again := svc.Suggestions("teh", 5)
	if !reflect.DeepEqual(again, []string{"the", "then"}) {
		t.Fatalf("cache entry corrupted by caller mutation: %q", again)
	}
}

func TestSuggestionsResetOnReconcile(t *testing.T) {
	svc, _ := newService(t, map[string]*fakeChecker{
		"en": {guesses: []string{"the"}},
	})
	svc.UpdateLanguages([]string{"en"})
	if got := svc.Suggestions("teh", 5); len(got) != 1 {
		t.Fatalf("suggestions = %q", got)
	}
	svc.UpdateLanguages(nil)
	if got := svc.Suggestions("teh", 5); len(got) != 0 {
		t.Fatalf("stale cached suggestions after reconcile: %q", got)
	}
}

func TestCheckText(t *testing.T) {
	svc, _ := newService(t, map[string]*fakeChecker{
		"en": {known: map[string]bool{"so": true, "cat": true}},
	})
	svc.UpdateLanguages([]string{"en"})

	text := "so teh cat"
	miss := svc.CheckText(text, nil)
	if len(miss) != 1 || miss[0].In(text) != "teh" {
		t.Fatalf("misspellings = %+v", miss)
	}

	skipAll := func(segment.Span) bool { return true }
	if miss := svc.CheckText(text, skipAll); len(miss) != 0 {
		t.Fatalf("skip predicate ignored: %+v", miss)
	}
}
