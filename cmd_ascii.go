package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"termload/internal/ascii"
	"termload/internal/loader"
)

func asciiCmd(a *app) *cobra.Command {
	var (
		cfg      ascii.Config
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ascii [flags] [message]",
		Short: "Show an ASCII art loading animation",
		Long: `Show a multi-line ASCII art animation above a message.

Patterns: ` + strings.Join(ascii.Patterns(), ", ") + `.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ascii.New(cfg, a.loaderOptions(cmd)...)

			ctx := cmd.Context()
			err := loader.WithLoader(l, messageOr(args, "Please wait..."), func() error {
				pause(ctx, duration)
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to run ASCII loader: %w", err)
			}

			finish(ctx, cmd.OutOrStdout(), "Done")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Pattern, "pattern", ascii.DefaultPattern, "art pattern")
	cmd.Flags().DurationVar(&cfg.Speed, "speed", ascii.DefaultSpeed, "time per frame")
	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "how long to animate")

	return cmd
}
