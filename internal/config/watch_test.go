package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock3d.toml")
	writeFile(t, path, `pointers = "hms"`)

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok, "nothing changed yet")

	writeFile(t, path, `pointers = "h"`)

	// truncation can surface as its own event; wait for the final content
	require.Eventually(t, func() bool {
		select {
		case s := <-w.Updates():
			return s.Pointers == "h"
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchSkipsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clock3d.toml")
	writeFile(t, path, `pointers = "hms"`)

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, path, `pointers = `)
	// a sibling file is not the settings file
	writeFile(t, filepath.Join(dir, "other.toml"), `pointers = "m"`)
	writeFile(t, path, `pointers = "s"`)

	require.Eventually(t, func() bool {
		s, ok := w.Poll()
		return ok && s.Pointers == "s"
	}, 5*time.Second, 20*time.Millisecond)
}
