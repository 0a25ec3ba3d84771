// Package loader provides the lifecycle shared by every animated loader.
// The package separates animation timing and concurrency (Engine) from visual
// rendering (Renderer interface), allowing spinners, progress bars and ASCII
// art screens to be plugged into the same background render loop.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"termload/internal/terminal"
)

// DefaultInterval is the frame interval used when a non-positive one is given.
const DefaultInterval = 100 * time.Millisecond

// Renderer draws frames for an Engine.
type Renderer interface {
	// RenderTick draws exactly one frame for the current state and advances the
	// variant's animation state. It is always called with the render mutex held.
	RenderTick(w *terminal.Writer, message string) error
}

// Eraser is implemented by renderers whose frames span more than the current
// line. When present, Stop calls Erase instead of clearing a single line.
type Eraser interface {
	Erase(w *terminal.Writer) error
}

// Engine owns the background render loop of one loader.
//
// State machine: Idle -> Running (Start) -> Stopping (Stop signals) -> Idle
// (after the goroutine exits and the output is cleared).
type Engine struct {
	id       string
	interval time.Duration
	renderer Renderer
	out      *terminal.Writer
	log      *slog.Logger

	// mu is the render mutex. It guards message, err, all renderer state and
	// every write to out.
	mu      sync.Mutex
	message string
	err     error // first error hit by the render loop

	// lifecycle guards the goroutine handle. It is never held while the
	// render loop needs mu, so Stop can wait on done safely.
	lifecycle sync.Mutex
	cancel    context.CancelFunc // raises the stop signal
	done      chan struct{}      // closed when the render goroutine exits
}

// Option configures an Engine.
type Option func(*Engine)

// WithWriter sets the output stream. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(e *Engine) {
		e.out = terminal.NewWriter(w)
	}
}

// WithLogger sets the logger for lifecycle events. Defaults to a logger that
// discards everything, since stray log lines would tear the rendered frame.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine that drives r every interval.
func New(r Renderer, interval time.Duration, opts ...Option) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}

	e := &Engine{
		id:       uuid.NewString(),
		interval: interval,
		renderer: r,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.out == nil {
		e.out = terminal.NewWriter(os.Stdout)
	}
	e.log = e.log.With("loader", e.id)

	return e
}

// ID returns the unique identifier of this engine.
func (e *Engine) ID() string {
	return e.id
}

// Interval returns the time between two background ticks.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// Start stores message and begins rendering in a background goroutine.
// If the engine is already running, this is a no-op.
func (e *Engine) Start(message string) {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if e.cancel != nil {
		return // already running
	}

	e.mu.Lock()
	e.message = message
	e.err = nil
	e.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})

	e.log.Debug("Loader started", "interval", e.interval)
	go e.run(ctx, e.done)
}

// run is the render goroutine. It polls the stop signal before every tick,
// renders under the render mutex, then waits for the next interval outside it.
func (e *Engine) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		if err := e.Tick(); err != nil {
			e.log.Debug("Render loop aborted", "err", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Stop raises the stop signal, waits for the render goroutine to exit and
// clears what the loader left on screen. It returns the first terminal error
// encountered while rendering or clearing.
// If the engine is not running, this is a no-op.
func (e *Engine) Stop() error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if e.cancel == nil {
		return nil // not running
	}

	e.cancel()
	<-e.done
	e.cancel = nil
	e.done = nil

	e.mu.Lock()
	defer e.mu.Unlock()

	clearErr := e.clear()
	e.log.Debug("Loader stopped")

	if e.err != nil {
		return e.err
	}
	if clearErr != nil {
		return fmt.Errorf("failed to clear loader output: %w", clearErr)
	}
	return nil
}

// clear removes the last frame. Callers must hold mu.
func (e *Engine) clear() error {
	if eraser, ok := e.renderer.(Eraser); ok {
		if err := eraser.Erase(e.out); err != nil {
			return err
		}
	} else if err := e.out.ClearLine(); err != nil {
		return err
	}
	return e.out.Flush()
}

// Running reports whether the engine is between Start and a completed Stop.
func (e *Engine) Running() bool {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()
	return e.cancel != nil
}

// UpdateMessage replaces the message shown next to the animation.
// The change becomes visible on the next frame.
func (e *Engine) UpdateMessage(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.message = text
}

// Message returns the current message.
func (e *Engine) Message() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.message
}

// Tick renders one frame synchronously under the render mutex.
// The background loop calls it once per interval.
func (e *Engine) Tick() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.renderer.RenderTick(e.out, e.message); err != nil {
		err = fmt.Errorf("failed to render frame: %w", err)
		if e.err == nil {
			e.err = err
		}
		return err
	}
	return nil
}

// Do runs fn under the render mutex with the engine's writer and current
// message. Renderers use it for redraws that happen outside the tick loop.
func (e *Engine) Do(fn func(w *terminal.Writer, message string) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.out, e.message)
}

// Err returns the first error hit by the render loop since the last Start.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}
