package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"termload/internal/progress"
)

func progressCmd(a *app) *cobra.Command {
	var (
		cfg  progress.Config
		step time.Duration
		save bool
	)

	cmd := &cobra.Command{
		Use:   "progress [flags] [message]",
		Short: "Simulate work with a progress bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Store = a.store
			bar := progress.New(cfg, a.loaderOptions(cmd)...)

			if save {
				if err := bar.SavePreferences(); err != nil {
					return fmt.Errorf("failed to save progress bar preferences: %w", err)
				}
				a.log.Info("Saved progress bar preferences", "path", a.store.Path())
			}

			ctx := cmd.Context()
			bar.Start(messageOr(args, "Processing..."))
			for i := 0; i <= bar.Total(); i++ {
				if err := bar.Update(i); err != nil {
					_ = bar.Stop()
					return fmt.Errorf("failed to update progress bar: %w", err)
				}
				if i < bar.Total() && !pause(ctx, step) {
					break
				}
			}
			if err := bar.Stop(); err != nil {
				return fmt.Errorf("failed to stop progress bar: %w", err)
			}

			finish(ctx, cmd.OutOrStdout(), "Complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Total, "total", 100, "number of work units")
	cmd.Flags().IntVar(&cfg.Width, "width", 0, "bar width in characters")
	cmd.Flags().StringVar(&cfg.FillChar, "fill", "", "character for completed units")
	cmd.Flags().StringVar(&cfg.EmptyChar, "empty", "", "character for remaining units")
	cmd.Flags().StringVar(&cfg.Color, "color", "", "bar color")
	cmd.Flags().DurationVar(&step, "step", 30*time.Millisecond, "time per work unit")
	cmd.Flags().BoolVar(&save, "save", false, "store the bar appearance as preferences")

	return cmd
}
