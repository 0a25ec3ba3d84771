// Package progress provides a single-line progress bar with percentage and ETA.
//
// The bar redraws synchronously on every Update and, while started, also on a
// background tick so the line stays alive between updates. Both paths produce
// the same frame for the same state.
package progress

import (
	"fmt"
	"math"
	"strings"
	"time"

	"termload/internal/color"
	"termload/internal/config"
	"termload/internal/loader"
	"termload/internal/terminal"
)

// TickInterval is the keep-alive redraw interval.
const TickInterval = 100 * time.Millisecond

// etaUnknown is displayed until there is enough progress to estimate from.
const etaUnknown = "??:??"

// Config describes the bar. Zero fields are taken from the store's progress
// bar preferences when Store is set, otherwise from the built-in defaults
// (width 40, "█", "░", blue).
type Config struct {
	Total     int    // number of work units; values below 1 are treated as 1
	Width     int    // bar width in glyphs
	FillChar  string // glyph for completed units
	EmptyChar string // glyph for remaining units
	Color     string // one of color.Names(); unknown names fall back to white
	Store     config.Store

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Bar is a progress bar bound to a loader.Engine.
type Bar struct {
	*loader.Engine

	total     int
	width     int
	fillChar  string
	emptyChar string
	color     string
	colorCode string
	store     config.Store
	now       func() time.Time

	// Guarded by the engine's render mutex.
	current   int
	startTime time.Time
	started   bool // startTime is set
}

var _ loader.Renderer = (*Bar)(nil)

// New creates a progress bar. The keep-alive tick does not run until Start.
func New(cfg Config, opts ...loader.Option) *Bar {
	prefs := config.Default().ProgressBar
	if cfg.Store != nil {
		prefs = cfg.Store.Load().ProgressBar
	}
	if cfg.Width <= 0 {
		cfg.Width = prefs.Width
	}
	if cfg.FillChar == "" {
		cfg.FillChar = prefs.FillChar
	}
	if cfg.EmptyChar == "" {
		cfg.EmptyChar = prefs.EmptyChar
	}
	if cfg.Color == "" {
		cfg.Color = prefs.Color
	}
	if cfg.Total < 1 {
		cfg.Total = 1
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	colorName := color.Resolve(cfg.Color, color.Default)
	colorCode, _ := color.Code(colorName)

	b := &Bar{
		total:     cfg.Total,
		width:     cfg.Width,
		fillChar:  cfg.FillChar,
		emptyChar: cfg.EmptyChar,
		color:     colorName,
		colorCode: colorCode,
		store:     cfg.Store,
		now:       cfg.Now,
	}
	b.Engine = loader.New(b, TickInterval, opts...)

	return b
}

// Update sets the number of completed units, clamped to [0, total], and
// redraws immediately. The first call starts the ETA clock.
func (b *Bar) Update(current int) error {
	return b.Do(func(w *terminal.Writer, message string) error {
		b.current = min(max(current, 0), b.total)
		if !b.started {
			b.startTime = b.now()
			b.started = true
		}
		return b.render(w, message)
	})
}

// RenderTick implements loader.Renderer.
func (b *Bar) RenderTick(w *terminal.Writer, message string) error {
	return b.render(w, message)
}

// render draws the current state. Callers must hold the render mutex.
func (b *Bar) render(w *terminal.Writer, message string) error {
	if err := w.ClearLine(); err != nil {
		return err
	}
	if err := w.WriteString(b.colorCode + b.frame(message) + color.Reset); err != nil {
		return err
	}
	return w.Flush()
}

// frame formats the bar line without color codes.
func (b *Bar) frame(message string) string {
	percentage := float64(b.current) / float64(b.total) * 100
	filled := b.width * b.current / b.total

	bar := strings.Repeat(b.fillChar, filled) + strings.Repeat(b.emptyChar, b.width-filled)

	return fmt.Sprintf("Progress: [%s] %.1f%% (%d/%d) ETA: %s %s",
		bar, percentage, b.current, b.total, b.eta(), message)
}

// eta estimates the remaining time as MM:SS from the average rate so far.
func (b *Bar) eta() string {
	if !b.started || b.current == 0 {
		return etaUnknown
	}

	var remaining float64
	elapsed := b.now().Sub(b.startTime).Seconds()
	if elapsed > 0 {
		rate := float64(b.current) / elapsed
		remaining = float64(b.total-b.current) / rate
	}

	minutes := int(remaining / 60)
	seconds := int(math.Mod(remaining, 60))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Current returns the number of completed units.
func (b *Bar) Current() int {
	var current int
	_ = b.Do(func(*terminal.Writer, string) error {
		current = b.current
		return nil
	})
	return current
}

// Total returns the number of work units.
func (b *Bar) Total() int {
	return b.total
}

// Preferences returns the bar's effective appearance.
func (b *Bar) Preferences() config.ProgressBarPreferences {
	return config.ProgressBarPreferences{
		Color:     b.color,
		Width:     b.width,
		FillChar:  b.fillChar,
		EmptyChar: b.emptyChar,
	}
}

// SavePreferences stores the bar's appearance for bars created later.
func (b *Bar) SavePreferences() error {
	if b.store == nil {
		return config.ErrNoStore
	}

	p := b.store.Load()
	p.ProgressBar = b.Preferences()
	return b.store.Save(p)
}
