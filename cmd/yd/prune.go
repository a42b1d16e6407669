package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sonnes/yamadoot/config"
	"github.com/sonnes/yamadoot/prune"
	"github.com/urfave/cli/v3"
)

func pruneCmd() *cli.Command {
	flags := append(dirFlags(),
		&cli.FloatFlag{
			Name:  "max-age-hours",
			Usage: "Only delete sessions older than this many hours (default: $WARMUP_MAX_AGE_HOURS or 24)",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Show what would be deleted without removing files",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Suppress informational output",
		},
	)

	return &cli.Command{
		Name:  "prune",
		Usage: "Delete stale warmup-only sessions",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runPrune(cmd.Root().Writer, cfg, cmd.Bool("dry-run"), cmd.Bool("quiet"))
		},
	}
}

// runPrune executes a prune pass and writes line-per-action reporting to w.
// Delete failures go to the logger and never fail the run.
func runPrune(w io.Writer, cfg config.Config, dryRun, quiet bool) error {
	opts := prune.Options{MaxAge: cfg.MaxAge(), DryRun: dryRun}

	res := prune.Run(cfg.Roots(), opts, func(a prune.Action) {
		if a.Err != nil {
			log.Error("failed to delete session", "path", a.File.Path, "err", a.Err)
			return
		}
		if quiet {
			return
		}
		if dryRun {
			fmt.Fprintf(w, "[dry-run] Would delete %s warmup session: %s\n", a.File.Provider, a.File.Path)
		} else {
			fmt.Fprintf(w, "Deleted %s warmup session: %s\n", a.File.Provider, a.File.Path)
		}
	})

	if !quiet {
		if dryRun {
			fmt.Fprintf(w, "Would remove %d warmup session(s).\n", res.Deleted)
		} else {
			fmt.Fprintf(w, "Removed %d warmup session(s).\n", res.Deleted)
		}
	}
	return nil
}
