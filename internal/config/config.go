package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Listen          string        `json:"listen" envconfig:"LISTEN"`
	ReadTimeout     time.Duration `json:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `json:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	Log             LogConfig     `json:"log"`
	DictDir         string        `json:"dict_dir" envconfig:"DICT_DIR"`
	CustomDict      string        `json:"custom_dict" envconfig:"CUSTOM_DICT"`
	Languages       []string      `json:"languages" envconfig:"LANGUAGES"`
	MaxSuggestions  int           `json:"max_suggestions" envconfig:"MAX_SUGGESTIONS"`
	Providers       []string      `json:"providers" envconfig:"PROVIDERS"`
}

type LogConfig struct {
	Level string `json:"level" envconfig:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Listen:          ":8080",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
		Providers: []string{"wordlist", "stardict"},
	}
}

// Load reads the JSON config at path and applies SPELLSERVE_* env
// overrides on top. An empty path skips the file and serves defaults
// plus environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := envconfig.Process("spellserve", &cfg); err != nil {
		return cfg, err
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.DictDir == "" {
		return cfg, errors.New("dict_dir is required")
	}
	if cfg.CustomDict == "" {
		cfg.CustomDict = filepath.Join(cfg.DictDir, "custom")
	}
	if len(cfg.Providers) == 0 {
		cfg.Providers = []string{"wordlist", "stardict"}
	}
	return cfg, nil
}
