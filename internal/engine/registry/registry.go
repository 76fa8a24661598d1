// Package registry holds the live engine set: at most one engine per
// language tag, insertion order preserved for deterministic fan-out.
package registry

import (
	"errors"
	"sync"

	"github.com/kepka-app/lib-spellcheck/internal/engine"
)

type Registry struct {
	mu     sync.RWMutex
	byLang map[string]*engine.Engine
	order  []*engine.Engine
}

func New() *Registry {
	return &Registry{
		byLang: make(map[string]*engine.Engine),
		order:  nil,
	}
}

func (r *Registry) Add(e *engine.Engine) error {
	if e == nil {
		return errors.New("engine is nil")
	}
	lang := e.Lang()
	if lang == "" {
		return errors.New("engine language is empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byLang[lang]; exists {
		return errors.New("duplicate engine language: " + lang)
	}
	r.byLang[lang] = e
	r.order = append(r.order, e)
	return nil
}

func (r *Registry) Get(lang string) (*engine.Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byLang[lang]
	return e, ok
}

func (r *Registry) List() []*engine.Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*engine.Engine, 0, len(r.order))
	out = append(out, r.order...)
	return out
}

func (r *Registry) Langs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, e.Lang())
	}
	return out
}

// Keep drops every engine whose language is not in langs and returns
// the surviving languages.
func (r *Registry) Keep(langs []string) []string {
	want := make(map[string]struct{}, len(langs))
	for _, l := range langs {
		want[l] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.order[:0]
	survivors := make([]string, 0, len(r.order))
	for _, e := range r.order {
		if _, ok := want[e.Lang()]; ok {
			kept = append(kept, e)
			survivors = append(survivors, e.Lang())
			continue
		}
		delete(r.byLang, e.Lang())
	}
	r.order = kept
	return survivors
}
