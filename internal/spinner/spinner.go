// Package spinner provides a single-line animated spinner with a message.
package spinner

import (
	"time"

	"termload/internal/color"
	"termload/internal/config"
	"termload/internal/loader"
	"termload/internal/terminal"
)

// Config selects the spinner appearance. Zero fields are taken from the
// store's spinner preferences when Store is set, otherwise from the built-in
// defaults (dots, white, 100ms).
type Config struct {
	Style string        // one of Styles(); unknown names fall back to dots
	Color string        // one of color.Names(); unknown names fall back to white
	Speed time.Duration // time per frame
	Store config.Store  // optional preference store
}

// Spinner represents an animated loading spinner.
type Spinner struct {
	*loader.Engine

	style     string
	color     string
	colorCode string
	frames    []string
	frameIdx  int // next frame to draw
	store     config.Store
}

var _ loader.Renderer = (*Spinner)(nil)

// New creates a new spinner. It does not start animating until Start.
func New(cfg Config, opts ...loader.Option) *Spinner {
	prefs := config.Default().Spinner
	if cfg.Store != nil {
		prefs = cfg.Store.Load().Spinner
	}
	if cfg.Style == "" {
		cfg.Style = prefs.Style
	}
	if cfg.Color == "" {
		cfg.Color = prefs.Color
	}
	if cfg.Speed <= 0 {
		cfg.Speed = prefs.Interval()
	}

	style := resolveStyle(cfg.Style)
	colorName := color.Resolve(cfg.Color, color.Default)
	colorCode, _ := color.Code(colorName)

	s := &Spinner{
		style:     style,
		color:     colorName,
		colorCode: colorCode,
		frames:    styles[style],
		store:     cfg.Store,
	}
	s.Engine = loader.New(s, cfg.Speed, opts...)

	return s
}

// RenderTick implements loader.Renderer. It redraws the line with the
// current frame and message, then advances to the next frame.
func (s *Spinner) RenderTick(w *terminal.Writer, message string) error {
	if err := w.ClearLine(); err != nil {
		return err
	}
	if err := w.WriteString(s.colorCode + s.frames[s.frameIdx] + " " + message + color.Reset); err != nil {
		return err
	}

	s.frameIdx = (s.frameIdx + 1) % len(s.frames)
	return w.Flush()
}

// FrameCount returns the total number of frames in one animation cycle.
func (s *Spinner) FrameCount() int {
	return len(s.frames)
}

// Preferences returns the spinner's effective style, color and speed.
func (s *Spinner) Preferences() config.SpinnerPreferences {
	return config.SpinnerPreferences{
		Style: s.style,
		Color: s.color,
		Speed: s.Interval().Seconds(),
	}
}

// SavePreferences stores the spinner's appearance so spinners created later
// without explicit settings look the same.
func (s *Spinner) SavePreferences() error {
	if s.store == nil {
		return config.ErrNoStore
	}

	p := s.store.Load()
	p.Spinner = s.Preferences()
	return s.store.Save(p)
}
