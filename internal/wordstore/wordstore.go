// Package wordstore keeps the user's custom dictionary: words the user
// added (persisted to a flat file) and words ignored for the session
// (memory only). Both collections are partitioned by script so lookups
// stay on the routing path the engines use.
package wordstore

import (
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/kepka-app/lib-spellcheck/internal/observability"
	"github.com/kepka-app/lib-spellcheck/internal/script"
)

// MaxWords caps the custom dictionary; adds beyond it are dropped.
const MaxWords = 1300

func lineBreak() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

type Store struct {
	mu      sync.RWMutex
	path    string
	log     *slog.Logger
	added   map[script.Script][]string
	ignored map[script.Script][]string
}

// Open loads the custom dictionary at path and immediately rewrites it,
// which scrubs duplicates, skippable entries, and overflow out of the
// persisted copy. A missing or unreadable file starts the store empty.
func Open(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		path:    path,
		log:     log,
		added:   make(map[script.Script][]string),
		ignored: make(map[script.Script][]string),
	}
	s.load()
	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			observability.CustomDictLoadFailures.Add(1)
			s.log.Warn("custom dictionary unreadable", "path", s.path, "error", err)
		}
		return
	}
	if len(data) == 0 {
		return
	}

	words := strings.Split(string(data), "\n")
	for i, w := range words {
		words[i] = strings.TrimRight(w, "\r")
	}
	slices.Sort(words)
	words = slices.Compact(words)
	words = slices.DeleteFunc(words, func(w string) bool {
		return w == "" || script.ForWord(w) == script.Skip
	})
	if len(words) > MaxWords {
		words = words[:MaxWords]
	}

	// Group adjacent same-script runs; runs for a script that already
	// has a partition are appended, so lexicographic order survives
	// inside every run and interleaved runs lose nothing.
	s.mu.Lock()
	var (
		runScript script.Script
		run       []string
	)
	flush := func() {
		if len(run) > 0 {
			s.added[runScript] = append(s.added[runScript], run...)
			run = nil
		}
	}
	for _, w := range words {
		sc := script.ForWord(w)
		if len(run) > 0 && sc != runScript {
			flush()
		}
		runScript = sc
		run = append(run, w)
	}
	flush()
	s.write()
	s.mu.Unlock()
}

// write flattens the added partitions in script enumeration order.
// Callers hold s.mu. A write failure is counted and logged, never
// surfaced.
func (s *Store) write() {
	if s.path == "" {
		return
	}
	var b strings.Builder
	br := lineBreak()
	for _, sc := range script.All() {
		for _, w := range s.added[sc] {
			b.WriteString(w)
			b.WriteString(br)
		}
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		observability.CustomDictWriteFailures.Add(1)
		s.log.Warn("custom dictionary write failed", "path", s.path, "error", err)
	}
}

// Add appends word to its script partition and persists. It is a no-op
// once the dictionary holds MaxWords entries. Duplicates are kept; the
// next load deduplicates.
func (s *Store) Add(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countLocked() >= MaxWords {
		return
	}
	sc := script.ForWord(word)
	s.added[sc] = append(s.added[sc], word)
	s.write()
}

// Remove deletes every exact occurrence of word from its script
// partition and persists.
func (s *Store) Remove(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := script.ForWord(word)
	s.added[sc] = slices.DeleteFunc(s.added[sc], func(w string) bool {
		return w == word
	})
	s.write()
}

// Ignore marks word correct for the rest of the session. Never
// persisted.
func (s *Store) Ignore(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := script.ForWord(word)
	s.ignored[sc] = append(s.ignored[sc], word)
}

// Contains reports whether word is in the added partition of its own
// script.
func (s *Store) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.added[script.ForWord(word)], word)
}

// Known reports whether word is ignored or added; the spell check
// short-circuit.
func (s *Store) Known(word string) bool {
	sc := script.ForWord(word)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ignored[sc], word) || slices.Contains(s.added[sc], word)
}

// Count returns the total number of added words across all scripts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked()
}

func (s *Store) countLocked() int {
	n := 0
	for _, words := range s.added {
		n += len(words)
	}
	return n
}
