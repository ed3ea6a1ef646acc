// Package config provides configuration management for campus-events.
// Configuration is loaded from ~/.config/campus-events/config.yaml with built-in
// defaults for everything that is not set. The loaded values are plain data;
// the search vocabulary and venue allowlist are built from them and injected
// into the filter pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/campus-events/internal/filter"
	"github.com/pfrederiksen/campus-events/internal/locality"
	"github.com/pfrederiksen/campus-events/internal/search"
)

const (
	// DefaultConfigPath is the default location for the config file.
	DefaultConfigPath = "~/.config/campus-events/config.yaml"

	// DefaultSnapshotTimeout bounds a single snapshot load.
	DefaultSnapshotTimeout = 30 * time.Second

	// EnvSnapshotSource overrides snapshot.source when set.
	EnvSnapshotSource = "CAMPUS_EVENTS_SNAPSHOT"
)

// Config holds the campus-events configuration.
type Config struct {
	Snapshot   SnapshotConfig `yaml:"snapshot"`
	Timezone   string         `yaml:"timezone"`
	Log        LogConfig      `yaml:"log"`
	Categories []string       `yaml:"categories"`
	Search     SearchConfig   `yaml:"search"`
	Locality   LocalityConfig `yaml:"locality"`
}

// SnapshotConfig locates the published snapshot.
type SnapshotConfig struct {
	Source  string        `yaml:"source"` // file path or http(s) URL
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SearchConfig holds the search vocabulary.
// Synonym entries are merged over the built-in table by key; a non-empty
// whole_word list replaces the built-in one.
type SearchConfig struct {
	Synonyms  map[string][]string `yaml:"synonyms"`
	WholeWord []string            `yaml:"whole_word"`
}

// LocalityConfig holds the home venue allowlist.
// A non-empty list replaces the built-in venues.
type LocalityConfig struct {
	Venues []string `yaml:"venues"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Snapshot: SnapshotConfig{
			Timeout: DefaultSnapshotTimeout,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from path, or from DefaultConfigPath when path is
// empty. A missing file at the default path yields the defaults; a missing
// file at an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	cfg := Default()

	data, err := os.ReadFile(expandPath(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// Config file doesn't exist - use defaults
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if src := strings.TrimSpace(os.Getenv(EnvSnapshotSource)); src != "" {
		cfg.Snapshot.Source = src
	}
	if cfg.Snapshot.Timeout <= 0 {
		cfg.Snapshot.Timeout = DefaultSnapshotTimeout
	}

	return cfg, nil
}

// Location resolves the configured time zone. Empty means the system zone.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CategoryList returns the configured categories, always led by the wildcard.
func (c *Config) CategoryList() []string {
	if len(c.Categories) == 0 {
		out := make([]string, len(filter.DefaultCategories))
		copy(out, filter.DefaultCategories)
		return out
	}

	out := []string{filter.AllCategories}
	for _, cat := range c.Categories {
		cat = strings.TrimSpace(cat)
		if cat == "" || cat == filter.AllCategories {
			continue
		}
		out = append(out, cat)
	}
	return out
}

// Vocabulary builds the search vocabulary.
func (c *Config) Vocabulary() *search.Vocabulary {
	synonyms := search.DefaultSynonyms()
	for key, related := range c.Search.Synonyms {
		synonyms[strings.ToLower(strings.TrimSpace(key))] = related
	}

	wholeWord := search.DefaultWholeWord()
	if len(c.Search.WholeWord) > 0 {
		wholeWord = c.Search.WholeWord
	}

	return search.NewVocabulary(synonyms, wholeWord)
}

// Allowlist builds the home venue allowlist.
func (c *Config) Allowlist() *locality.Allowlist {
	if len(c.Locality.Venues) > 0 {
		return locality.NewAllowlist(c.Locality.Venues)
	}
	return locality.DefaultAllowlist()
}

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
