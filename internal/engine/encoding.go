package engine

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Hunspell affix files spell some charmap names differently from the
// registry htmlindex understands.
var encodingAliases = map[string]string{
	"microsoft-cp1250": "windows-1250",
	"microsoft-cp1251": "windows-1251",
	"microsoft-cp1252": "windows-1252",
	"tis620-2533":      "windows-874",
	"iso-8859-10":      "iso-8859-4",
}

// ResolveEncoding maps a checker-reported charmap name to an encoding.
// An empty name means UTF-8.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "utf8" {
		n = "utf-8"
	}
	if alias, ok := encodingAliases[n]; ok {
		n = alias
	}
	enc, err := htmlindex.Get(n)
	if err != nil {
		return nil, fmt.Errorf("resolve encoding %q: %w", name, err)
	}
	return enc, nil
}
