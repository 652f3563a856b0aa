// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"platemap/internal/output"
)

// EnvPrefix namespaces environment overrides, e.g. PLATEMAP_INDEX_FILE.
const EnvPrefix = "PLATEMAP_"

// Config holds settings shared by every command. Flags override it.
type Config struct {
	IndexFile  string        `yaml:"index_file"`
	OutDir     string        `yaml:"out_dir"`
	Format     string        `yaml:"format"`
	Order      string        `yaml:"order"`
	Prefix     string        `yaml:"prefix"`
	Addr       string        `yaml:"addr"`
	SessionTTL time.Duration `yaml:"session_ttl"`
	LogLevel   string        `yaml:"log_level"`
}

// Default is the built-in configuration.
func Default() Config {
	return Config{
		IndexFile:  "index.csv",
		OutDir:     ".",
		Format:     "csv",
		Order:      "both",
		Addr:       ":8096",
		SessionTTL: 2 * time.Hour,
		LogLevel:   "info",
	}
}

// Sources says where to look. Empty paths are skipped; a missing EnvFile is
// not an error, a missing File is.
type Sources struct {
	File      string
	EnvFile   string
	LookupEnv func(string) (string, bool)
}

// Load layers defaults, the YAML file, the .env file and the process
// environment, in that order.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if src.File != "" {
		b, err := os.ReadFile(src.File)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", src.File, err)
		}
	}

	vars := map[string]string{}
	if src.EnvFile != "" {
		m, err := godotenv.Read(src.EnvFile)
		switch {
		case err == nil:
			vars = m
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("env file %s: %w", src.EnvFile, err)
		}
	}
	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := vars[EnvPrefix+key]
		return v, ok
	}

	if err := applyEnv(&cfg, get); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, get func(string) (string, bool)) error {
	str := map[string]*string{
		"INDEX_FILE": &cfg.IndexFile,
		"OUT_DIR":    &cfg.OutDir,
		"FORMAT":     &cfg.Format,
		"ORDER":      &cfg.Order,
		"PREFIX":     &cfg.Prefix,
		"ADDR":       &cfg.Addr,
		"LOG_LEVEL":  &cfg.LogLevel,
	}
	for k, dst := range str {
		if v, ok := get(k); ok {
			*dst = v
		}
	}
	if v, ok := get("SESSION_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSESSION_TTL: %w", EnvPrefix, err)
		}
		cfg.SessionTTL = d
	}
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if !output.ValidFormat(c.Format) {
		return fmt.Errorf("config: invalid format %q (%s)", c.Format, strings.Join(output.Formats, " | "))
	}
	switch c.Order {
	case "both", "horizontal", "vertical":
	default:
		return fmt.Errorf("config: invalid order %q (both | horizontal | vertical)", c.Order)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
	}
	if c.SessionTTL < 0 {
		return errors.New("config: session_ttl must be >= 0")
	}
	return nil
}
