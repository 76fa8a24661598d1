// Package stardict sources an engine's word census from a StarDict
// index at <dir>/<lang>/<lang>.ifo. Only the index headwords are used;
// definitions stay on disk. StarDict indexes are UTF-8 by format.
package stardict

import (
	"fmt"
	"os"
	"path/filepath"

	std "github.com/ianlewis/go-stardict"

	"github.com/kepka-app/lib-spellcheck/internal/engine"
	"github.com/kepka-app/lib-spellcheck/internal/engine/wordlist"
)

type Provider struct{}

func (Provider) Name() string {
	return "stardict"
}

func (Provider) Open(lang, dir string) (engine.Checker, error) {
	ifoPath := filepath.Join(dir, lang, lang+".ifo")
	if info, err := os.Stat(ifoPath); err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("stardict %s: index not found", lang)
	}
	sd, err := std.Open(ifoPath, nil)
	if err != nil {
		return nil, fmt.Errorf("stardict %s: %w", lang, err)
	}
	sc, err := sd.IndexScanner()
	if err != nil {
		return nil, fmt.Errorf("stardict %s: %w", lang, err)
	}
	defer sc.Close()

	words := make([]string, 0, 1024)
	for sc.Scan() {
		w := sc.Word()
		if w.Word == "" {
			continue
		}
		words = append(words, w.Word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stardict %s: %w", lang, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("stardict %s: empty index", lang)
	}
	return wordlist.NewChecker("UTF-8", words)
}
