package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "yd",
		Usage: "Sweep stale warmup-only Codex and Claude Code sessions",
		Description: `
                              _         _
 _  _ __ _ _ __  __ _ __| |___  ___| |_
| || / _' | '  \/ _' / _' / _ \/ _ \  _|
 \_, \__,_|_|_|_\__,_\__,_\___/\___/\__|
 |__/

 The collector of sessions — carrying away the warmup chats nobody will read.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			pruneCmd(),
			listCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
