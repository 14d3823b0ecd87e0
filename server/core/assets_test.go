package core

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/wavebreak/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArena(t *testing.T) string {
	t.Helper()
	src, err := os.ReadFile(filepath.Join("..", "..", "shared", "leveldata", "testdata", "meadow.tmx"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "arenas"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arenas", "meadow.tmx"), src, 0o644))
	return dir
}

func TestLoadAndSelectArena(t *testing.T) {
	arenas, names, err := LoadArenas(writeArena(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"meadow"}, names)

	arena, err := SelectArena(arenas, names, "")
	require.NoError(t, err)
	assert.Equal(t, "meadow", arena.Name)

	_, err = SelectArena(arenas, names, "swamp")
	assert.ErrorContains(t, err, "swamp")
}

func TestLoadArenasEmptyDir(t *testing.T) {
	_, _, err := LoadArenas(t.TempDir())
	assert.Error(t, err)
}

func TestLoadTuningFile(t *testing.T) {
	saved := cfg.Current()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wave:\n  startQuota: 9\n"), 0o644))

	require.NoError(t, LoadTuningFile(path))
	assert.Equal(t, 9, cfg.Wave.StartQuota)
}
