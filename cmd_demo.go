package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"termload/internal/ascii"
	"termload/internal/loader"
	"termload/internal/progress"
	"termload/internal/spinner"
)

func demoCmd(a *app) *cobra.Command {
	var beat time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a tour of every loader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := &demo{app: a, cmd: cmd, out: cmd.OutOrStdout(), beat: beat}
			steps := []func(context.Context) error{
				d.spinnerStyles,
				d.spinnerMessages,
				d.progressBar,
				d.asciiPatterns,
				d.wrappedTask,
			}

			ctx := cmd.Context()
			for _, step := range steps {
				if ctx.Err() != nil {
					break
				}
				if err := step(ctx); err != nil {
					return err
				}
			}

			finish(ctx, d.out, "Demo complete")
			return nil
		},
	}

	cmd.Flags().DurationVar(&beat, "beat", time.Second, "base duration of each demo step")

	return cmd
}

// demo walks through the loaders one after another on the command's output.
type demo struct {
	app  *app
	cmd  *cobra.Command
	out  io.Writer
	beat time.Duration
}

func (d *demo) heading(text string) {
	fmt.Fprintf(d.out, "\n== %s ==\n", text)
}

func (d *demo) spinnerStyles(ctx context.Context) error {
	d.heading("Spinner styles")

	for _, style := range spinner.Styles() {
		s := spinner.New(spinner.Config{Style: style, Store: d.app.store}, d.app.loaderOptions(d.cmd)...)
		err := loader.WithLoader(s, fmt.Sprintf("Loading with %s style...", style), func() error {
			pause(ctx, d.beat)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to run %s spinner: %w", style, err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

func (d *demo) spinnerMessages(ctx context.Context) error {
	d.heading("Changing messages")

	s := spinner.New(spinner.Config{Style: "dots", Color: "cyan"}, d.app.loaderOptions(d.cmd)...)
	return loader.WithLoader(s, "Connecting...", func() error {
		for _, msg := range []string{"Downloading...", "Verifying...", "Installing..."} {
			if !pause(ctx, d.beat/2) {
				return nil
			}
			s.UpdateMessage(msg)
		}
		pause(ctx, d.beat/2)
		return nil
	})
}

func (d *demo) progressBar(ctx context.Context) error {
	d.heading("Progress bar")

	const total = 50
	bar := progress.New(progress.Config{Total: total, Store: d.app.store}, d.app.loaderOptions(d.cmd)...)
	return loader.WithLoader(bar, "Copying files", func() error {
		step := 2 * d.beat / total
		for i := 0; i <= total; i++ {
			if err := bar.Update(i); err != nil {
				return err
			}
			if i < total && !pause(ctx, step) {
				return nil
			}
		}
		return nil
	})
}

func (d *demo) asciiPatterns(ctx context.Context) error {
	d.heading("ASCII art")

	for _, pattern := range ascii.Patterns() {
		l := ascii.New(ascii.Config{Pattern: pattern}, d.app.loaderOptions(d.cmd)...)
		err := loader.WithLoader(l, fmt.Sprintf("Pattern: %s", pattern), func() error {
			pause(ctx, d.beat)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to run %s pattern: %w", pattern, err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

// wrappedTask shows a spinner around an ordinary function call.
func (d *demo) wrappedTask(ctx context.Context) error {
	d.heading("Wrapped task")

	s := spinner.New(spinner.Config{Style: "line", Color: "green"}, d.app.loaderOptions(d.cmd)...)
	var result int
	err := loader.WithLoader(s, "Crunching numbers...", func() error {
		for i := 1; i <= 10; i++ {
			result += i * i
		}
		pause(ctx, d.beat)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Sum of squares 1..10 = %d\n", result)
	return nil
}
