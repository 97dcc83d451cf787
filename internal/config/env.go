package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/amterp/swatch/internal/model"
)

// Environment variables recognized by swatch.
const (
	EnvDataDir  = "SWATCH_DATA_DIR"
	EnvStore    = "SWATCH_STORE"
	EnvPort     = "SWATCH_PORT"
	EnvLogLevel = "SWATCH_LOG_LEVEL"
	EnvEnv      = "SWATCH_ENV"
)

// Settings is the effective runtime configuration after merging the global
// config file with environment overrides.
type Settings struct {
	DataDir        string
	Store          string
	Port           int
	LogLevel       string
	Environment    string
	Count          int
	DefaultHarmony model.Harmony
	DefaultTheme   model.Theme
}

// IsDevelopment reports whether human-friendly console logging should be used.
func (s Settings) IsDevelopment() bool {
	return s.Environment == "" || s.Environment == "development"
}

// LoadDotEnv loads .env from the working directory if present.
// Values already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// Resolve merges the global config with environment overrides.
func Resolve(cfg *model.GlobalConfig) (Settings, error) {
	return resolve(cfg, os.Getenv)
}

func resolve(cfg *model.GlobalConfig, getenv func(string) string) (Settings, error) {
	s := Settings{
		Store:       cfg.GetStore(),
		Port:        cfg.GetPort(),
		Count:       cfg.GetCount(),
		LogLevel:    "info",
		Environment: "development",
	}
	if cfg != nil {
		s.DataDir = cfg.DataDir

		h, err := model.ParseHarmony(cfg.DefaultHarmony)
		if err != nil {
			return Settings{}, fmt.Errorf("default_harmony: %w", err)
		}
		th, err := model.ParseTheme(cfg.DefaultTheme)
		if err != nil {
			return Settings{}, fmt.Errorf("default_theme: %w", err)
		}
		s.DefaultHarmony = h
		s.DefaultTheme = th
	}

	if v := getenv(EnvDataDir); v != "" {
		s.DataDir = v
	}
	if v := getenv(EnvStore); v != "" {
		s.Store = strings.ToLower(v)
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Settings{}, fmt.Errorf("%s: invalid port %q", EnvPort, v)
		}
		s.Port = port
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvEnv); v != "" {
		s.Environment = strings.ToLower(v)
	}

	if s.Store != model.StoreFile && s.Store != model.StoreSQLite {
		return Settings{}, fmt.Errorf("unsupported store %q (valid: %s, %s)", s.Store, model.StoreFile, model.StoreSQLite)
	}
	if s.Count > model.MaxCount {
		return Settings{}, fmt.Errorf("count must be at most %d, got %d", model.MaxCount, s.Count)
	}
	return s, nil
}
