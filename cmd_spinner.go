package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"termload/internal/loader"
	"termload/internal/spinner"
)

func spinnerCmd(a *app) *cobra.Command {
	var (
		cfg      spinner.Config
		duration time.Duration
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "spinner [flags] [message]",
		Short: "Show a spinner for a while",
		Long: `Show a single-line spinner next to a message.

Styles: ` + strings.Join(spinner.Styles(), ", ") + `.
Unset flags fall back to the stored preferences.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Store = a.store
			s := spinner.New(cfg, a.loaderOptions(cmd)...)

			if save {
				if err := s.SavePreferences(); err != nil {
					return fmt.Errorf("failed to save spinner preferences: %w", err)
				}
				a.log.Info("Saved spinner preferences", "path", a.store.Path())
			}

			message := messageOr(args, "Loading...")
			ctx := cmd.Context()
			err := loader.WithLoader(s, message, func() error {
				pause(ctx, duration)
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to run spinner: %w", err)
			}

			finish(ctx, cmd.OutOrStdout(), "Done")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Style, "style", "", "spinner style")
	cmd.Flags().StringVar(&cfg.Color, "color", "", "spinner color")
	cmd.Flags().DurationVar(&cfg.Speed, "speed", 0, "time per frame, e.g. 80ms")
	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "how long to spin")
	cmd.Flags().BoolVar(&save, "save", false, "store the resulting style, color and speed as preferences")

	return cmd
}

// messageOr joins the positional arguments, or returns fallback when there
// are none.
func messageOr(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}
	return strings.Join(args, " ")
}
