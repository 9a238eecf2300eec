package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	data := "TearLifespan: 150\n" +
		"HueEnabled: false\n" +
		"AdaptiveEmission: true\n" +
		"ShowHud: true\n"
	require.NoError(t,
		os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0644))

	var config Config
	LoadYAML(os.DirFS(dir).(FS), "config.yaml", &config)
	assert.Equal(t, int64(150), config.TearLifespan)
	assert.False(t, config.HueEnabled)
	assert.True(t, config.AdaptiveEmission)
	assert.True(t, config.ShowHud)
}

func TestGetFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "imgs"), 0755))
	for _, name := range []string{"tear-01.png", "tear-02.png", "notes.txt"} {
		require.NoError(t,
			os.WriteFile(filepath.Join(dir, "imgs", name), []byte("x"), 0644))
	}

	files := GetFiles(os.DirFS(dir).(FS), "imgs", "*.png")
	assert.Equal(t, []string{"imgs/tear-01.png", "imgs/tear-02.png"}, files)
}

func TestFolderWatcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t,
		os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1"), 0644))

	w := FolderWatcher{Folder: dir}
	// The first poll initializes the watcher, which counts as a change.
	assert.True(t, w.FolderContentsChanged())
	assert.False(t, w.FolderContentsChanged())

	require.NoError(t,
		os.WriteFile(filepath.Join(dir, "b.txt"), []byte("2"), 0644))
	assert.True(t, w.FolderContentsChanged())
	assert.False(t, w.FolderContentsChanged())
}

func TestFolderWatcherWithoutFolder(t *testing.T) {
	// A watcher with no folder set is a valid do-nothing watcher. The Gui
	// relies on this when running from embedded assets.
	w := FolderWatcher{}
	assert.False(t, w.FolderContentsChanged())
}
