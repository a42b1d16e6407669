package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/yamadoot/config"
	"github.com/sonnes/yamadoot/locate"
	"github.com/sonnes/yamadoot/warmup"
	"github.com/urfave/cli/v3"
)

const defaultWidth = 100

func listCmd() *cli.Command {
	flags := append(dirFlags(),
		&cli.BoolFlag{
			Name:  "warmup-only",
			Usage: "Show only sessions classified as warmup",
		},
	)

	return &cli.Command{
		Name:  "list",
		Usage: "List sessions with their warmup classification, without deleting",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runList(cmd.Root().Writer, cfg, cmd.Bool("warmup-only"), termWidth())
		},
	}
}

func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// runList walks both providers and prints one row per session: provider, age,
// message counts, verdict, and path. Counts come from a full scan so they are
// exact, unlike the early-exit scan the pruner uses.
func runList(w io.Writer, cfg config.Config, warmupOnly bool, width int) error {
	now := time.Now()
	total, warmups := 0, 0

	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%-8s %8s %5s %5s  %-7s %s",
		"PROVIDER", "AGE", "USER", "ASST", "VERDICT", "PATH")))

	_ = locate.Walk(cfg.Roots(), func(f locate.File) error {
		info, err := os.Stat(f.Path)
		if err != nil {
			log.Debug("skipping unreadable session", "path", f.Path, "err", err)
			return nil
		}

		file, err := os.Open(f.Path)
		if err != nil {
			log.Debug("skipping unreadable session", "path", f.Path, "err", err)
			return nil
		}
		stats := warmup.CollectFull(file)
		file.Close()

		isWarmup := stats.IsWarmup()
		if warmupOnly && !isWarmup {
			return nil
		}
		total++

		// Pad the verdict cell before styling; ANSI codes inside a %-7s
		// would break the alignment.
		verdict := styleKeep.Render(fmt.Sprintf("%-7s", "keep"))
		if isWarmup {
			warmups++
			verdict = styleWarmup.Render(fmt.Sprintf("%-7s", "warmup"))
		}

		row := fmt.Sprintf("%-8s %8s %5d %5d  ", f.Provider, formatAge(now.Sub(info.ModTime())),
			stats.UserMessages, stats.AssistantMessages)
		path := ansi.Truncate(f.Path, max(width-len(row)-9, 20), "…")
		fmt.Fprintf(w, "%s%s %s\n", styleCount.Render(row), verdict, stylePath.Render(path))
		return nil
	})

	fmt.Fprintln(w, styleSummary.Render(fmt.Sprintf("%d session(s), %d warmup", total, warmups)))
	return nil
}

// formatAge renders a file age like "3d 4h", "2h", or "15m".
func formatAge(d time.Duration) string {
	if d < time.Minute {
		return "<1m"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}
