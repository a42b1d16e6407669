// Package prune deletes stale warmup-only session files. Every per-file
// failure is non-fatal: a file the tool cannot stat, read, or remove is
// skipped or reported, and the run carries on.
package prune

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/yamadoot/locate"
	"github.com/sonnes/yamadoot/warmup"
)

// Options controls a prune run.
type Options struct {
	// MaxAge is the minimum age a warmup session must reach before it is
	// deleted.
	MaxAge time.Duration
	// DryRun reports would-be deletions without touching the filesystem.
	DryRun bool
	// Now overrides the current time. Zero means time.Now().
	Now time.Time
}

// Action describes one warmup session the pruner acted on. Err is set when
// the deletion failed.
type Action struct {
	File locate.File
	Err  error
}

// Result summarizes a prune run. In dry-run mode Deleted counts the files
// that would have been removed.
type Result struct {
	Deleted int
	Failed  int
}

// Run walks the roots and deletes every warmup session older than MaxAge,
// invoking report for each deletion or failed deletion. Per-file failures
// never abort the run.
func Run(roots []locate.Root, opts Options, report func(Action)) Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	cutoff := now.Add(-opts.MaxAge)

	var res Result
	_ = locate.Walk(roots, func(f locate.File) error {
		info, err := os.Stat(f.Path)
		if err != nil {
			log.Debug("skipping unreadable session", "path", f.Path, "err", err)
			return nil
		}
		if !info.ModTime().Before(cutoff) {
			return nil
		}

		isWarmup, err := warmup.IsSessionFile(f.Path)
		if err != nil {
			log.Debug("skipping unreadable session", "path", f.Path, "err", err)
			return nil
		}
		if !isWarmup {
			return nil
		}

		if opts.DryRun {
			res.Deleted++
			report(Action{File: f})
			return nil
		}

		if err := os.Remove(f.Path); err != nil {
			res.Failed++
			report(Action{File: f, Err: err})
			return nil
		}
		res.Deleted++
		report(Action{File: f})
		return nil
	})
	return res
}
