// Package main provides the termload command, a showcase for the terminal
// loaders: spinners, progress bars and ASCII art animations.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"termload/internal/config"
	"termload/internal/loader"
	"termload/internal/logger"
	"termload/internal/signal"
	"termload/internal/terminal"
)

func main() {
	a := newApp()
	defer a.close()

	err := signal.SetUpHandler(context.Background(), nil, func(ctx context.Context) error {
		return newRootCmd(a).ExecuteContext(ctx)
	})
	if err != nil {
		a.close()
		os.Exit(1)
	}
}

// app carries the state shared by all commands.
type app struct {
	prefsPath string
	debug     bool
	logFile   string

	store   *config.FileStore
	log     *slog.Logger
	logSink io.Closer

	// newScreen creates the screen for the color picker.
	newScreen func() (tcell.Screen, error)
	// interactive reports whether the user can answer the color picker.
	interactive func() bool
}

func newApp() *app {
	return &app{
		log:         slog.New(slog.DiscardHandler),
		newScreen:   tcell.NewScreen,
		interactive: func() bool { return terminal.IsTerminal(os.Stdin) },
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "termload",
		Short: "Animated terminal loaders",
		Long: `termload shows spinners, progress bars and ASCII art loading screens.

Appearance defaults come from a preference file, by default
$XDG_CONFIG_HOME/termload/preferences.yaml. Environment variables prefixed
with TERMLOAD_ override the file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setUp(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.prefsPath, "prefs", "", "preference file (.yaml, .toml or .json)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log debug output to stderr")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(
		spinnerCmd(a),
		progressCmd(a),
		asciiCmd(a),
		pickColorCmd(a),
		prefsCmd(a),
		listCmd(a),
		demoCmd(a),
	)

	return root
}

// setUp builds the logger and opens the preference store.
func (a *app) setUp(cmd *cobra.Command) error {
	var opts []logger.Option
	opts = append(opts, logger.WithConsole(cmd.ErrOrStderr()))
	if a.debug {
		opts = append(opts, logger.WithDebug())
	} else {
		opts = append(opts, logger.WithQuiet())
	}
	if a.logFile != "" {
		f, err := logger.OpenFile(a.logFile)
		if err != nil {
			return err
		}
		a.logSink = f
		opts = append(opts, logger.WithWriter(f))
	}
	a.log = logger.New(opts...)

	path := a.prefsPath
	if path == "" {
		path = config.DefaultPath()
	}
	a.store = config.NewFileStore(path, a.log)

	if f, ok := cmd.OutOrStdout().(*os.File); ok && !terminal.IsTerminal(f) {
		a.log.Debug("Output is not a terminal, escape sequences are written as is")
	}
	a.log.Debug("Command started", "command", cmd.Name(), "prefs", path)

	return nil
}

// close releases the log file, if any.
func (a *app) close() {
	if a.logSink != nil {
		_ = a.logSink.Close()
		a.logSink = nil
	}
}

// loaderOptions directs a loader to the command's output and logger.
func (a *app) loaderOptions(cmd *cobra.Command) []loader.Option {
	return []loader.Option{
		loader.WithWriter(cmd.OutOrStdout()),
		loader.WithLogger(a.log),
	}
}

// pause waits for d or until ctx is cancelled. It reports whether the full
// duration elapsed.
func pause(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// finish prints a completion line unless the command was interrupted.
func finish(ctx context.Context, out io.Writer, text string) {
	if ctx.Err() != nil {
		fmt.Fprintln(out, "Interrupted.")
		return
	}
	fmt.Fprintln(out, "✓ "+text)
}
