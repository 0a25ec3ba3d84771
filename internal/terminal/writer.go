// Package terminal provides low-level cursor and line control over an ANSI output stream.
package terminal

import (
	"bufio"
	"io"
	"strconv"
)

// ANSI escape sequences used by the loaders
const (
	ansiEscape     = "\033["
	ansiEraseLine  = ansiEscape + "2K" // erase the entire current line
	ansiColumnZero = ansiEscape + "G"  // move cursor to column 1
	ansiCursorUp   = "A"               // preceded by ESC[n
	ansiCursorDown = "B"               // preceded by ESC[n
)

// ClearLineSequence erases the current line and returns the cursor to column 0.
const ClearLineSequence = ansiEraseLine + ansiColumnZero

// Writer wraps an output stream with the handful of cursor operations the
// loaders need. Writes are buffered; cursor and line operations flush
// immediately so the terminal reflects them right away.
//
// A Writer is not safe for concurrent use. Each loader serializes access
// through its render mutex.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer on top of out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(out)}
}

// ClearLine erases the current line and moves the cursor to its first column.
func (t *Writer) ClearLine() error {
	if _, err := t.w.WriteString(ClearLineSequence); err != nil {
		return err
	}
	return t.w.Flush()
}

// MoveCursorUp moves the cursor up n lines. Non-positive n is a no-op.
func (t *Writer) MoveCursorUp(n int) error {
	return t.moveCursor(n, ansiCursorUp)
}

// MoveCursorDown moves the cursor down n lines. Non-positive n is a no-op.
func (t *Writer) MoveCursorDown(n int) error {
	return t.moveCursor(n, ansiCursorDown)
}

func (t *Writer) moveCursor(n int, direction string) error {
	if n <= 0 {
		return nil
	}
	if _, err := t.w.WriteString(ansiEscape + strconv.Itoa(n) + direction); err != nil {
		return err
	}
	return t.w.Flush()
}

// WriteString buffers raw text. Call Flush to push it to the terminal.
func (t *Writer) WriteString(s string) error {
	_, err := t.w.WriteString(s)
	return err
}

// Flush writes any buffered text to the underlying stream.
func (t *Writer) Flush() error {
	return t.w.Flush()
}
