package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	c := Default()
	assert.Equal(t, time.Microsecond, c.Dispatch.WakeMin)
	assert.Equal(t, time.Millisecond, c.Dispatch.WakeMax)
	assert.Equal(t, 64*1024, c.Channel.DefaultBlockSize)
	assert.Equal(t, "device", c.Random.DefaultEntropySource)
}

func TestNewLoaderWithNoFileUsesDefaults(t *testing.T) {
	t.Parallel()
	l, err := NewLoader("")
	require.NoError(t, err)
	assert.Equal(t, Default(), l.Current())
}

func TestNewLoaderMergesFileOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "waitkit.yaml")
	contents := "dispatch:\n  wake_max: 5ms\nrandom:\n  default_entropy_source: fixed-seed\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	l, err := NewLoader(path)
	require.NoError(t, err)
	cur := l.Current()
	assert.Equal(t, 5*time.Millisecond, cur.Dispatch.WakeMax)
	assert.Equal(t, "fixed-seed", cur.Random.DefaultEntropySource)
	// Untouched keys keep their default value.
	assert.Equal(t, time.Microsecond, cur.Dispatch.WakeMin)
}

func TestWatchForChangesReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waitkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("random:\n  default_entropy_source: device\n"), 0o644))

	l, err := NewLoader(path)
	require.NoError(t, err)
	l.WatchForChanges()

	require.NoError(t, os.WriteFile(path, []byte("random:\n  default_entropy_source: urandom\n"), 0o644))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if l.Current().Random.DefaultEntropySource == "urandom" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("config was not reloaded after file write")
}
