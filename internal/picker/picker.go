// Package picker implements an interactive color chooser on a tcell screen.
package picker

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"termload/internal/color"
)

// ErrClosed is returned when the screen stops delivering events before a
// choice was made.
var ErrClosed = errors.New("screen closed before a color was selected")

// Cancelled is the color returned when the user quits without choosing.
const Cancelled = color.Default

const (
	title = "Select a color for your preferred style:"
	help  = "Use ↑/↓ arrows to navigate, Enter to select, q to quit"
	// listTop is the first row of the color list.
	listTop = 3
)

// Screen is the subset of tcell.Screen the picker draws on.
type Screen interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	Sync()
	PollEvent() tcell.Event
}

// palette maps color names to the closest tcell colors.
var palette = map[string]tcell.Color{
	"red":    tcell.ColorRed,
	"green":  tcell.ColorLime,
	"yellow": tcell.ColorYellow,
	"blue":   tcell.ColorBlue,
	"purple": tcell.ColorFuchsia,
	"cyan":   tcell.ColorAqua,
	"white":  tcell.ColorWhite,
}

// Run lets the user choose a color with the arrow keys (or k/j) and Enter.
// The cursor starts on initial, or on the first color when initial is not a
// known name. Pressing q, Esc or Ctrl-C returns Cancelled.
//
// The caller owns the screen: it must be initialized before Run and
// finalized after.
func Run(screen Screen, initial string) (string, error) {
	names := color.Names()
	current := 0
	for i, name := range names {
		if name == initial {
			current = i
		}
	}

	for {
		draw(screen, names, current)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return "", ErrClosed
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyUp, ev.Key() == tcell.KeyRune && ev.Rune() == 'k':
				current = (current - 1 + len(names)) % len(names)
			case ev.Key() == tcell.KeyDown, ev.Key() == tcell.KeyRune && ev.Rune() == 'j':
				current = (current + 1) % len(names)
			case ev.Key() == tcell.KeyEnter:
				return names[current], nil
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return Cancelled, nil
			}
		}
	}
}

// draw renders the title, help line and one sample row per color, with a
// marker in front of the highlighted one.
func draw(screen Screen, names []string, current int) {
	screen.Clear()

	plain := tcell.StyleDefault
	putString(screen, 0, 0, title, plain.Bold(true))
	putString(screen, 0, 1, help, plain.Dim(true))

	for i, name := range names {
		y := listTop + i
		if i == current {
			putString(screen, 0, y, "→", plain)
		}
		putString(screen, 2, y, "Sample Text - "+name, plain.Foreground(palette[name]))
	}

	screen.Show()
}

// putString writes s starting at column x, advancing by each rune's display
// width so wide glyphs do not overlap.
func putString(screen Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
