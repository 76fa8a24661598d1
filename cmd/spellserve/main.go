package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kepka-app/lib-spellcheck/internal/config"
	"github.com/kepka-app/lib-spellcheck/internal/engine"
	"github.com/kepka-app/lib-spellcheck/internal/engine/stardict"
	"github.com/kepka-app/lib-spellcheck/internal/engine/wordlist"
	"github.com/kepka-app/lib-spellcheck/internal/httpx"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
	"github.com/kepka-app/lib-spellcheck/internal/service"
	"github.com/kepka-app/lib-spellcheck/internal/wordstore"
)

func main() {
	cfgPath := flag.String("config", "./configs/spellserve.json", "path to JSON config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal("config", err)
	}

	log := observability.New(cfg.Log.Level)

	store := wordstore.Open(cfg.CustomDict, log.Logger)
	svc := service.New(service.Params{
		Dir:            cfg.DictDir,
		Store:          store,
		Providers:      providers(cfg.Providers),
		MaxSuggestions: cfg.MaxSuggestions,
		Logger:         log.Logger,
	})
	svc.UpdateLanguages(cfg.Languages)
	log.Info("spellcheck ready",
		"dict_dir", cfg.DictDir,
		"custom_dict", cfg.CustomDict,
		"requested", cfg.Languages,
		"active", svc.ActiveLanguages(),
		"custom_words", store.Count(),
	)

	h := httpx.NewRouter(svc, log)
	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("server listening", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("server stopped")
}

func fatal(stage string, err error) {
	_, _ = os.Stderr.WriteString(stage + ": " + err.Error() + "\n")
	os.Exit(1)
}

func providers(names []string) []engine.Provider {
	out := make([]engine.Provider, 0, len(names))
	for _, name := range names {
		switch name {
		case "wordlist":
			out = append(out, wordlist.Provider{})
		case "stardict":
			out = append(out, stardict.Provider{})
		}
	}
	return out
}
