package spellcheck

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kepka-app/lib-spellcheck/internal/engine"
	"github.com/kepka-app/lib-spellcheck/internal/engine/stardict"
	"github.com/kepka-app/lib-spellcheck/internal/engine/wordlist"
	"github.com/kepka-app/lib-spellcheck/internal/service"
)

type options struct {
	dir            string
	customDict     string
	logger         *slog.Logger
	maxSuggestions int
	providers      []engine.Provider
}

type Option func(*options)

// WithDir sets the directory holding per-language dictionary
// subfolders (<dir>/<lang>/<lang>.aff and .dic).
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithCustomDictionary sets the path of the flat custom dictionary
// file. Defaults to <dir>/custom.
func WithCustomDictionary(path string) Option {
	return func(o *options) { o.customDict = path }
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithMaxSuggestions overrides the global suggestion cap.
func WithMaxSuggestions(n int) Option {
	return func(o *options) { o.maxSuggestions = n }
}

// WithProviders replaces the default engine providers. Providers are
// tried in the given order when a language is loaded.
func WithProviders(ps ...engine.Provider) Option {
	return func(o *options) { o.providers = ps }
}

// DefaultDir resolves the dictionary directory: the SPELLCHECK_DIR
// environment variable when set, otherwise a "spellcheck" folder under
// the user config dir. An unresolvable directory yields "", which
// leaves every engine inactive but keeps the API answering.
func DefaultDir() string {
	if dir := os.Getenv("SPELLCHECK_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "spellcheck")
}

func buildOptions(opts []Option) options {
	o := options{
		dir:            DefaultDir(),
		logger:         slog.Default(),
		maxSuggestions: service.DefaultMaxSuggestions,
		providers: []engine.Provider{
			wordlist.Provider{},
			stardict.Provider{},
		},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.customDict == "" && o.dir != "" {
		o.customDict = filepath.Join(o.dir, "custom")
	}
	return o
}
