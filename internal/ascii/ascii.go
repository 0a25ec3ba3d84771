// Package ascii provides multi-line ASCII art loading animations.
//
// A frame is drawn as a block of lines followed by a message line, with the
// cursor left below the block. Before the next frame the whole block is
// cleared in place, so the block never scrolls or drifts.
package ascii

import (
	"strings"
	"time"

	"termload/internal/loader"
	"termload/internal/terminal"
)

// DefaultSpeed is the frame interval used when none is given.
const DefaultSpeed = 200 * time.Millisecond

// Config selects the art pattern and its speed.
type Config struct {
	Pattern string        // one of Patterns(); unknown names fall back to rocket
	Speed   time.Duration // time per frame
}

// Loader animates one ASCII art pattern.
type Loader struct {
	*loader.Engine

	pattern     string
	frames      [][]string // each padded to frameHeight lines
	frameHeight int

	// Guarded by the engine's render mutex.
	frameIdx int
	drawn    bool // a block is on screen below the cursor
}

var (
	_ loader.Renderer = (*Loader)(nil)
	_ loader.Eraser   = (*Loader)(nil)
)

// New creates an ASCII art loader. It does not draw anything until Start.
func New(cfg Config, opts ...loader.Option) *Loader {
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}

	pattern := resolvePattern(cfg.Pattern)
	raw := patterns[pattern]

	frames := make([][]string, len(raw))
	height := 0
	for i, r := range raw {
		frames[i] = splitFrame(r)
		height = max(height, len(frames[i]))
	}
	for i := range frames {
		for len(frames[i]) < height {
			frames[i] = append(frames[i], "")
		}
	}

	l := &Loader{
		pattern:     pattern,
		frames:      frames,
		frameHeight: height,
	}
	l.Engine = loader.New(l, cfg.Speed, opts...)

	return l
}

// RenderTick implements loader.Renderer. It replaces the previous block, if
// any, with the current frame and message, then advances to the next frame.
func (l *Loader) RenderTick(w *terminal.Writer, message string) error {
	if l.drawn {
		if err := l.clearBlock(w); err != nil {
			return err
		}
	}

	var b strings.Builder
	for _, line := range l.frames[l.frameIdx] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(message)
	b.WriteByte('\n')

	if err := w.WriteString(b.String()); err != nil {
		return err
	}
	l.drawn = true
	l.frameIdx = (l.frameIdx + 1) % len(l.frames)

	return w.Flush()
}

// Erase implements loader.Eraser. It blanks the block left by the last frame
// and returns the cursor to where the block started.
func (l *Loader) Erase(w *terminal.Writer) error {
	if !l.drawn {
		return nil
	}
	if err := l.clearBlock(w); err != nil {
		return err
	}
	l.drawn = false
	return nil
}

// clearBlock moves to the top of the block, clears each of its lines and
// moves back to the top.
func (l *Loader) clearBlock(w *terminal.Writer) error {
	h := l.frameHeight + 1
	if err := w.MoveCursorUp(h); err != nil {
		return err
	}
	if err := w.WriteString(strings.Repeat(terminal.ClearLineSequence+"\n", h)); err != nil {
		return err
	}
	return w.MoveCursorUp(h)
}

// Pattern returns the name of the pattern being animated.
func (l *Loader) Pattern() string {
	return l.pattern
}

// FrameCount returns the number of frames in one animation cycle.
func (l *Loader) FrameCount() int {
	return len(l.frames)
}

// FrameHeight returns the number of art lines in every frame, not counting
// the message line.
func (l *Loader) FrameHeight() int {
	return l.frameHeight
}
