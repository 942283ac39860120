package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`clear_color = "black"`), 0o644))

	watcher, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer watcher.Shutdown()

	require.NoError(t, os.WriteFile(path, []byte(`clear_color = "white"`), 0o644))

	select {
	case config := <-watcher.Changes():
		assert.Equal(t, "white", config.ClearColor)
	case <-time.After(3 * time.Second):
		t.Fatal("no config reload delivered")
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`clear_color = "black"`), 0o644))

	watcher, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer watcher.Shutdown()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-watcher.Changes():
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcherKeepsLatest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`clear_color = "black"`), 0o644))

	watcher, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer watcher.Shutdown()

	// Several saves in a row; the channel holds only the newest.
	require.NoError(t, os.WriteFile(path, []byte(`clear_color = "red"`), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`clear_color = "blue"`), 0o644))
	time.Sleep(200 * time.Millisecond)

	select {
	case config := <-watcher.Changes():
		assert.Equal(t, "blue", config.ClearColor)
	case <-time.After(3 * time.Second):
		t.Fatal("no config reload delivered")
	}
}
