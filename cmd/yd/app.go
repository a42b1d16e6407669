package main

import (
	"github.com/sonnes/yamadoot/config"
	"github.com/urfave/cli/v3"
)

// dirFlags are the provider directory and config-file flags shared by the
// prune and list commands.
func dirFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "codex-dir",
			Usage: "Codex directory containing sessions/ (default: $CODEX_DIR or ~/.codex)",
		},
		&cli.StringFlag{
			Name:  "claude-dir",
			Usage: "Claude projects directory with per-project JSONL files (default: $CLAUDE_DIR or ~/.claude/projects)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file",
		},
	}
}

// loadConfig builds the effective configuration: env defaults, then the
// optional config file, then explicit flags.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		var err error
		cfg, err = config.Load(cfg, path)
		if err != nil {
			return cfg, err
		}
	}

	if dir := cmd.String("codex-dir"); dir != "" {
		cfg.CodexDir = dir
	}
	if dir := cmd.String("claude-dir"); dir != "" {
		cfg.ClaudeDir = dir
	}
	if cmd.IsSet("max-age-hours") {
		cfg.MaxAgeHours = cmd.Float("max-age-hours")
	}
	return cfg, nil
}
