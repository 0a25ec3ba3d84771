package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, SpinnerPreferences{Style: "dots", Color: "white", Speed: 0.1}, p.Spinner)
	assert.Equal(t, ProgressBarPreferences{Color: "blue", Width: 40, FillChar: "█", EmptyChar: "░"}, p.ProgressBar)
	assert.Equal(t, 100*time.Millisecond, p.Spinner.Interval())
}

func TestFileStoreRoundTrip(t *testing.T) {
	want := Preferences{
		Spinner:     SpinnerPreferences{Style: "line", Color: "red", Speed: 0.2},
		ProgressBar: ProgressBarPreferences{Color: "green", Width: 25, FillChar: "=", EmptyChar: "-"},
	}

	for _, name := range []string{"prefs.yaml", "prefs.yml", "prefs.toml", "prefs.json", "config"} {
		t.Run(name, func(t *testing.T) {
			store := NewFileStore(filepath.Join(t.TempDir(), "nested", name), nil)

			require.NoError(t, store.Save(want))
			assert.Equal(t, want, store.Load())
		})
	}
}

func TestFileStoreFormatFollowsExtension(t *testing.T) {
	dir := t.TempDir()
	p := Default()

	tests := []struct {
		file   string
		marker string
	}{
		{"p.yaml", "progress_bar:\n"},
		{"p.toml", "[progress_bar]"},
		{"p.json", `"progress_bar": {`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, NewFileStore(path, nil).Save(p))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.marker)
		})
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.Equal(t, Default(), store.Load())
}

func TestFileStoreMalformedFile(t *testing.T) {
	for _, name := range []string{"bad.json", "bad.yaml", "bad.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte("{{{ not: [valid"), 0644))

			assert.Equal(t, Default(), NewFileStore(path, nil).Load())
		})
	}
}

func TestFileStorePartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"spinner": {"style": "arrow"}}`), 0644))

	p := NewFileStore(path, nil).Load()

	assert.Equal(t, "arrow", p.Spinner.Style)
	assert.Equal(t, DefaultSpinnerColor, p.Spinner.Color)
	assert.Equal(t, DefaultSpinnerSpeed, p.Spinner.Speed)
	assert.Equal(t, Default().ProgressBar, p.ProgressBar)
}

func TestFileStoreEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store := NewFileStore(path, nil)
	require.NoError(t, store.Save(Preferences{
		Spinner: SpinnerPreferences{Style: "line", Color: "red", Speed: 0.2},
	}))

	t.Setenv("TERMLOAD_SPINNER_COLOR", "cyan")
	t.Setenv("TERMLOAD_PROGRESS_WIDTH", "12")

	p := store.Load()
	assert.Equal(t, "line", p.Spinner.Style)
	assert.Equal(t, "cyan", p.Spinner.Color)
	assert.Equal(t, 0.2, p.Spinner.Speed)
	assert.Equal(t, 12, p.ProgressBar.Width)
}

func TestFileStoreMalformedEnvIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store := NewFileStore(path, nil)
	require.NoError(t, store.Save(Preferences{
		Spinner: SpinnerPreferences{Style: "pulse", Speed: 0.3},
	}))

	t.Setenv("TERMLOAD_SPINNER_SPEED", "fast")
	t.Setenv("TERMLOAD_SPINNER_STYLE", "line")

	p := store.Load()
	assert.Equal(t, "pulse", p.Spinner.Style, "a bad variable discards all overrides")
	assert.Equal(t, 0.3, p.Spinner.Speed)
}

func TestApplyEnvLeavesUnsetFields(t *testing.T) {
	p := Default()
	require.NoError(t, ApplyEnv(&p))
	assert.Equal(t, Default(), p)
}

func TestFileStoreSaveError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := NewFileStore(filepath.Join(blocker, "prefs.yaml"), nil).Save(Default())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to"))
}

func TestMemoryStore(t *testing.T) {
	var zero MemoryStore
	assert.Equal(t, Default(), zero.Load())

	store := NewMemoryStore(Preferences{Spinner: SpinnerPreferences{Style: "arrow"}})
	assert.Equal(t, "arrow", store.Load().Spinner.Style)
	assert.Equal(t, DefaultSpinnerColor, store.Load().Spinner.Color)

	want := Default()
	want.ProgressBar.Width = 10
	require.NoError(t, store.Save(want))
	assert.Equal(t, want, store.Load())
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "preferences.yaml", filepath.Base(path))
	assert.Equal(t, "termload", filepath.Base(filepath.Dir(path)))
}

var _ Store = (*FileStore)(nil)
var _ Store = (*MemoryStore)(nil)
