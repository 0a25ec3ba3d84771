package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/quick"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termload/internal/color"
	"termload/internal/config"
	"termload/internal/loader"
	"termload/internal/terminal"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBar(t *testing.T, cfg Config) (*Bar, *bytes.Buffer, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cfg.Now = clock.now
	var buf bytes.Buffer
	return New(cfg, loader.WithWriter(&buf)), &buf, clock
}

// lastFrame strips the control sequences around the most recent frame.
func lastFrame(buf *bytes.Buffer) string {
	out := buf.String()
	out = out[strings.LastIndex(out, terminal.ClearLineSequence)+len(terminal.ClearLineSequence):]
	out = strings.TrimSuffix(out, color.Reset)
	for _, name := range color.Names() {
		code, _ := color.Code(name)
		out = strings.TrimPrefix(out, code)
	}
	return out
}

func TestHalfwayFrame(t *testing.T) {
	b, buf, clock := newTestBar(t, Config{Total: 100, Width: 10})

	require.NoError(t, b.Update(0))
	clock.advance(10 * time.Second)
	require.NoError(t, b.Update(50))

	frame := lastFrame(buf)
	assert.Contains(t, frame, "[█████░░░░░]")
	assert.Contains(t, frame, " 50.0% ")
	assert.Equal(t, "Progress: [█████░░░░░] 50.0% (50/100) ETA: 00:10 ", frame)
}

func TestImmediateUpdates(t *testing.T) {
	b, buf, _ := newTestBar(t, Config{Total: 100, Width: 10})

	require.NoError(t, b.Update(0))
	require.NoError(t, b.Update(50))

	frame := lastFrame(buf)
	assert.Equal(t, 5, strings.Count(frame, "█"))
	assert.Equal(t, 5, strings.Count(frame, "░"))
	assert.Contains(t, frame, "50.0%")
}

func TestClamp(t *testing.T) {
	b, buf, _ := newTestBar(t, Config{Total: 20, Width: 4})

	require.NoError(t, b.Update(35))
	assert.Equal(t, 20, b.Current())
	assert.Contains(t, lastFrame(buf), "[████] 100.0% (20/20)")

	require.NoError(t, b.Update(-7))
	assert.Zero(t, b.Current())
	assert.Contains(t, lastFrame(buf), "[░░░░] 0.0% (0/20) ETA: ??:??")
}

func TestETA(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		current int
		want    string
	}{
		{"no progress", 5 * time.Second, 0, "??:??"},
		{"done", 30 * time.Second, 100, "00:00"},
		{"no time elapsed", 0, 10, "00:00"},
		{"minutes and seconds", 30 * time.Second, 1, "49:30"},
		{"truncates fractions", 3 * time.Second, 7, "00:39"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, buf, clock := newTestBar(t, Config{Total: 100})

			require.NoError(t, b.Update(0))
			clock.advance(tt.elapsed)
			require.NoError(t, b.Update(tt.current))

			assert.Contains(t, lastFrame(buf), "ETA: "+tt.want+" ")
		})
	}
}

func TestETAUnknownBeforeFirstUpdate(t *testing.T) {
	b, buf, _ := newTestBar(t, Config{Total: 10})

	require.NoError(t, b.Tick())
	assert.Contains(t, lastFrame(buf), "ETA: ??:??")
}

func TestStartTimeSetOnce(t *testing.T) {
	b, _, clock := newTestBar(t, Config{Total: 10})
	first := clock.t

	require.NoError(t, b.Update(1))
	clock.advance(time.Minute)
	require.NoError(t, b.Update(2))

	assert.True(t, b.started)
	assert.Equal(t, first, b.startTime)
}

func TestTickMatchesUpdate(t *testing.T) {
	b, buf, clock := newTestBar(t, Config{Total: 40, Width: 8, Color: "green"})
	b.UpdateMessage("copying")

	require.NoError(t, b.Update(0))
	clock.advance(4 * time.Second)
	buf.Reset()
	require.NoError(t, b.Update(13))
	fromUpdate := buf.String()

	buf.Reset()
	require.NoError(t, b.Tick())
	assert.Equal(t, fromUpdate, buf.String())
	assert.True(t, strings.HasPrefix(fromUpdate, terminal.ClearLineSequence+color.Green))
	assert.True(t, strings.HasSuffix(fromUpdate, " copying"+color.Reset))
}

// TestFilledWidthInRange verifies the bar always has exactly width glyphs
// and never more filled glyphs than width, for any update value.
func TestFilledWidthInRange(t *testing.T) {
	property := func(total, width uint8, current int16) bool {
		b := New(Config{Total: int(total) + 1, Width: int(width) + 1, FillChar: "#", EmptyChar: "."},
			loader.WithWriter(&bytes.Buffer{}))
		if err := b.Update(int(current)); err != nil {
			return false
		}

		frame := b.frame("")
		bar := frame[strings.Index(frame, "[")+1 : strings.Index(frame, "]")]
		filled := strings.Count(bar, "#")

		return utf8.RuneCountInString(bar) == b.width &&
			filled >= 0 && filled <= b.width &&
			b.Current() >= 0 && b.Current() <= b.Total()
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestDefaultsAndFallbacks(t *testing.T) {
	b, _, _ := newTestBar(t, Config{Total: 0, Color: "magenta"})

	assert.Equal(t, 1, b.Total())
	assert.Equal(t, config.ProgressBarPreferences{Color: "white", Width: 40, FillChar: "█", EmptyChar: "░"}, b.Preferences())
	assert.Equal(t, TickInterval, b.Interval())

	b, _, _ = newTestBar(t, Config{Total: 5})
	assert.Equal(t, "blue", b.Preferences().Color)
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := config.NewMemoryStore(config.Preferences{})

	saved, _, _ := newTestBar(t, Config{Total: 10, Width: 20, FillChar: "=", EmptyChar: " ", Color: "purple", Store: store})
	require.NoError(t, saved.SavePreferences())

	loaded, _, _ := newTestBar(t, Config{Total: 99, Store: store})
	assert.Equal(t, saved.Preferences(), loaded.Preferences())
	assert.Equal(t, config.DefaultSpinnerStyle, store.Load().Spinner.Style, "other sections are kept")
}

func TestSavePreferencesWithoutStore(t *testing.T) {
	b, _, _ := newTestBar(t, Config{Total: 1})
	assert.True(t, errors.Is(b.SavePreferences(), config.ErrNoStore))
}

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestUpdateReturnsWriteError(t *testing.T) {
	b := New(Config{Total: 10}, loader.WithWriter(brokenWriter{}))
	assert.Error(t, b.Update(3))
	assert.Equal(t, 3, b.Current(), "state is updated even when drawing fails")
}

func TestKeepAliveTick(t *testing.T) {
	b, buf, _ := newTestBar(t, Config{Total: 10, Width: 10})
	frames := func() int {
		var n int
		_ = b.Do(func(*terminal.Writer, string) error {
			n = strings.Count(buf.String(), "Progress: ")
			return nil
		})
		return n
	}

	b.Start("idle")
	require.NoError(t, b.Update(4))
	assert.Eventually(t, func() bool { return frames() >= 3 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, b.Stop())

	assert.True(t, strings.HasSuffix(buf.String(), terminal.ClearLineSequence))
	assert.Contains(t, buf.String(), "(4/10)")
}
