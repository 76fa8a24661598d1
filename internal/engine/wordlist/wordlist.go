// Package wordlist is the default engine provider. It reads the
// hunspell-layout dictionary pair <dir>/<lang>/<lang>.aff and
// <dir>/<lang>/<lang>.dic, takes the charmap from the affix file's SET
// line, and serves membership plus ranked suggestions from the word
// census. Affix expansion is out of scope here; the .dic stems are the
// vocabulary.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/transform"

	"github.com/kepka-app/lib-spellcheck/internal/engine"
)

type Provider struct{}

func (Provider) Name() string {
	return "wordlist"
}

func (Provider) Open(lang, dir string) (engine.Checker, error) {
	affPath := filepath.Join(dir, lang, lang+".aff")
	dicPath := filepath.Join(dir, lang, lang+".dic")
	if !isFile(affPath) || !isFile(dicPath) {
		return nil, fmt.Errorf("wordlist %s: dictionary pair not found", lang)
	}
	encName, err := readCharmap(affPath)
	if err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", lang, err)
	}
	words, err := readWords(dicPath, encName)
	if err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", lang, err)
	}
	return NewChecker(encName, words)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// readCharmap scans the affix file for its SET line. Absent means
// UTF-8, which is what modern dictionaries ship anyway.
func readCharmap(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if name, ok := strings.CutPrefix(line, "SET"); ok {
			return strings.TrimSpace(name), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "UTF-8", nil
}

// readWords decodes the .dic word census. The first line is an entry
// count hint; every other line is "stem[/flags]" with optional
// tab-separated morphology fields, both of which are stripped.
func readWords(path, encName string) ([]string, error) {
	enc, err := engine.ResolveEncoding(encName)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(transform.NewReader(f, enc.NewDecoder()))
	words := make([]string, 0, 1024)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			line = line[:i]
		}
		if i := strings.IndexByte(line, '/'); i >= 0 {
			line = line[:i]
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("empty word census")
	}
	return words, nil
}
