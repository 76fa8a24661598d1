package wordstore

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/kepka-app/lib-spellcheck/internal/script"
)

func storeAt(t *testing.T, contents string) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return Open(path, nil), path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

func TestOpenMissingFile(t *testing.T) {
	s, path := storeAt(t, "")
	if s.Count() != 0 {
		t.Fatalf("count = %d", s.Count())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("empty store should not create the file on load")
	}
}

func TestAddPersistsAndReloads(t *testing.T) {
	s, path := storeAt(t, "")
	s.Add("xyzzy")
	if !s.Contains("xyzzy") {
		t.Fatal("added word missing")
	}

	reloaded := Open(path, nil)
	if !reloaded.Contains("xyzzy") {
		t.Fatal("added word lost across reload")
	}
}

func TestLoadNormalizes(t *testing.T) {
	s, path := storeAt(t, "beta\nalpha\nbeta\n\nmix999\nгамма\n")
	if got := readLines(t, path); len(got) != 3 {
		t.Fatalf("normalized file = %q", got)
	}
	for _, w := range []string{"alpha", "beta", "гамма"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	if s.Contains("mix999") {
		t.Error("skippable entry survived load")
	}
	if s.Count() != 3 {
		t.Fatalf("count = %d", s.Count())
	}
}

func TestLoadInterleavedScripts(t *testing.T) {
	// Byte order interleaves the scripts: basic Cyrillic sorts before
	// Armenian (the Other bucket), Cyrillic Extended-B after it. The
	// second Cyrillic run must append to the first, not replace it.
	s, _ := storeAt(t, "ꙁꙁ\nաա\nаа\n")
	if got := script.ForWord("աա"); got != script.Other {
		t.Fatalf("fixture assumption broken: ForWord(աա) = %v", got)
	}
	for _, w := range []string{"аа", "աա", "ꙁꙁ"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	if got := s.added[script.Cyrillic]; len(got) != 2 {
		t.Fatalf("cyrillic partition = %q, want both runs", got)
	}
	if s.Count() != 3 {
		t.Fatalf("count = %d", s.Count())
	}
}

func TestLoadEnforcesCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxWords+50; i++ {
		b.WriteString("word" + alpha(i) + "\n")
	}
	s, path := storeAt(t, b.String())
	if s.Count() != MaxWords {
		t.Fatalf("count = %d, want %d", s.Count(), MaxWords)
	}
	if got := readLines(t, path); len(got) != MaxWords {
		t.Fatalf("persisted %d lines, want %d", len(got), MaxWords)
	}
}

// alpha encodes i with letters only, so the word survives the
// non-word filter.
func alpha(i int) string {
	digits := strconv.Itoa(i)
	out := make([]byte, len(digits))
	for j := 0; j < len(digits); j++ {
		out[j] = 'a' + digits[j] - '0'
	}
	return string(out)
}

func TestAddAtCapIsNoop(t *testing.T) {
	s, _ := storeAt(t, "")
	for i := 0; i < MaxWords; i++ {
		s.Add("word" + alpha(i))
	}
	if s.Count() != MaxWords {
		t.Fatalf("count = %d", s.Count())
	}
	s.Add("overflow")
	if s.Count() != MaxWords {
		t.Fatalf("count after overflow add = %d", s.Count())
	}
	if s.Contains("overflow") {
		t.Fatal("overflow word should have been rejected")
	}
}

func TestRemoveDeletesAllOccurrences(t *testing.T) {
	s, path := storeAt(t, "")
	s.Add("dup")
	s.Add("dup")
	s.Add("keep")
	s.Remove("dup")
	if s.Contains("dup") {
		t.Fatal("dup still present")
	}
	if !s.Contains("keep") {
		t.Fatal("keep lost")
	}
	if got := readLines(t, path); len(got) != 1 || got[0] != "keep" {
		t.Fatalf("file = %q", got)
	}
}

func TestIgnoreIsSessionOnly(t *testing.T) {
	s, path := storeAt(t, "")
	s.Ignore("tmpword")
	if !s.Known("tmpword") {
		t.Fatal("ignored word not known")
	}
	if s.Contains("tmpword") {
		t.Fatal("ignored word leaked into added")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("ignore must not persist")
	}
	if Open(path, nil).Known("tmpword") {
		t.Fatal("ignored word survived restart")
	}
}

func TestContainsIsScriptScoped(t *testing.T) {
	s, _ := storeAt(t, "")
	s.Add("слово")
	if !s.Contains("слово") {
		t.Fatal("cyrillic word missing from its partition")
	}
	if s.Contains("slovo") {
		t.Fatal("latin lookup must not hit the cyrillic partition")
	}
	if got := s.added[script.Latin]; len(got) != 0 {
		t.Fatalf("latin partition = %q", got)
	}
}

func TestLoadPersistRoundTripIdempotent(t *testing.T) {
	_, path := storeAt(t, "beta\nalpha\nbeta\nгамма\n")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	Open(path, nil)
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatalf("reload changed an already-normalized file:\n%q\n%q", first, second)
	}
}

func TestWriteFailureIsSilent(t *testing.T) {
	dir := t.TempDir()
	s := Open(filepath.Join(dir, "missing", "custom"), nil)
	s.Add("word") // no panic, no error; the write is skipped
	if !s.Contains("word") {
		t.Fatal("in-memory state should still mutate")
	}
}
