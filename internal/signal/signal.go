// Package signal provides utilities for handling OS signals in a graceful manner.
package signal

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the signals that trigger a graceful shutdown.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// SetUpHandler runs action with a context that is cancelled when SIGINT or
// SIGTERM arrives, so running loaders can stop and restore the terminal
// before the program exits. It returns action's error.
func SetUpHandler(parent context.Context, log *slog.Logger, action func(context.Context) error) error {
	ctx, cancel := WithSignals(parent, log)
	defer cancel()

	return action(ctx)
}

// WithSignals returns a copy of parent that is cancelled on the first
// shutdown signal. Calling cancel releases the signal subscription.
func WithSignals(parent context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, Signals...)

	go func() {
		select {
		case sig := <-sigChan:
			log.Debug("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
