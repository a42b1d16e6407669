// Package config builds the tool configuration once at startup, layering an
// optional YAML file and flag values over environment-variable defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sonnes/yamadoot/locate"
	"gopkg.in/yaml.v3"
)

// DefaultMaxAgeHours is the age threshold applied when neither the
// environment nor a config file sets one.
const DefaultMaxAgeHours = 24

// Config holds the effective settings for a single run.
type Config struct {
	// CodexDir is the Codex home containing sessions/ (default ~/.codex).
	CodexDir string `yaml:"codex_dir"`
	// ClaudeDir is the Claude Code projects directory holding per-project
	// JSONL files (default ~/.claude/projects).
	ClaudeDir string `yaml:"claude_dir"`
	// MaxAgeHours is the minimum age before a warmup session is deleted.
	MaxAgeHours float64 `yaml:"max_age_hours"`
}

// Default returns the configuration derived from CODEX_DIR, CLAUDE_DIR, and
// WARMUP_MAX_AGE_HOURS, falling back to the conventional locations. An
// unparsable WARMUP_MAX_AGE_HOURS is ignored.
func Default() Config {
	home, _ := os.UserHomeDir()

	cfg := Config{
		CodexDir:    filepath.Join(home, ".codex"),
		ClaudeDir:   filepath.Join(home, ".claude", "projects"),
		MaxAgeHours: DefaultMaxAgeHours,
	}
	if dir := os.Getenv("CODEX_DIR"); dir != "" {
		cfg.CodexDir = dir
	}
	if dir := os.Getenv("CLAUDE_DIR"); dir != "" {
		cfg.ClaudeDir = dir
	}
	if v := os.Getenv("WARMUP_MAX_AGE_HOURS"); v != "" {
		if hours, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MaxAgeHours = hours
		}
	}
	return cfg
}

// Load reads a YAML config file and overlays its non-zero fields on cfg.
func Load(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if file.CodexDir != "" {
		cfg.CodexDir = file.CodexDir
	}
	if file.ClaudeDir != "" {
		cfg.ClaudeDir = file.ClaudeDir
	}
	if file.MaxAgeHours > 0 {
		cfg.MaxAgeHours = file.MaxAgeHours
	}
	return cfg, nil
}

// Roots returns the provider roots to walk.
func (c Config) Roots() []locate.Root {
	return []locate.Root{
		locate.Codex(c.CodexDir),
		locate.Claude(c.ClaudeDir),
	}
}

// MaxAge returns the age threshold as a duration.
func (c Config) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeHours * float64(time.Hour))
}
