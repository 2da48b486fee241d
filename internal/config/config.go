// Package config resolves ytshelf settings from the config file, a .env
// file and the process environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v2"

	"github.com/lvcoi/ytshelf/internal/pipeline"
)

const (
	envLibrary  = "YTSHELF_LIBRARY"
	envLoudness = "YTSHELF_LOUDNESS"
)

// Rule is one filename rewrite rule as it appears in the config file.
// Non-empty rule lists replace the built-in catalog wholesale.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Config holds the resolved settings for a run.
type Config struct {
	Library  string  `yaml:"library"`
	Loudness float64 `yaml:"loudness"`
	Rules    []Rule  `yaml:"rules"`
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "ytshelf", "config.yaml")
}

// Load reads the config file at path, or the default XDG location when
// path is empty, then overlays a .env file and the process environment.
// A missing config file is not an error; defaults apply. Precedence, low
// to high: defaults, config file, .env, environment.
func Load(path string) (Config, error) {
	cfg := Config{Loudness: pipeline.DefaultLoudness}

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	// godotenv never overrides variables already present, so the process
	// environment keeps precedence over .env.
	_ = godotenv.Load()

	if v := os.Getenv(envLibrary); v != "" {
		cfg.Library = v
	}
	if v := os.Getenv(envLoudness); v != "" {
		loudness, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", envLoudness, err)
		}
		cfg.Loudness = loudness
	}
	return cfg, nil
}

// Validate checks that the library root is set, exists, and is writable,
// and that any configured rewrite rules are usable.
func (c Config) Validate() error {
	if c.Library == "" {
		return fmt.Errorf("library root not set: pass --library, set %s, or add library to the config file", envLibrary)
	}
	info, err := os.Stat(c.Library)
	if err != nil {
		return fmt.Errorf("library root %s: %w", c.Library, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("library root %s is not a directory", c.Library)
	}
	probe, err := os.CreateTemp(c.Library, ".ytshelf-probe-*")
	if err != nil {
		return fmt.Errorf("library root %s is not writable: %w", c.Library, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return fmt.Errorf("rules[%d]: pattern must not be empty", i)
		}
	}
	return nil
}

// PipelineRules converts the configured rules to the pipeline's rule type.
func (c Config) PipelineRules() []pipeline.Rule {
	if len(c.Rules) == 0 {
		return nil
	}
	rules := make([]pipeline.Rule, len(c.Rules))
	for i, r := range c.Rules {
		rules[i] = pipeline.Rule{Pattern: r.Pattern, Replacement: r.Replacement}
	}
	return rules
}
