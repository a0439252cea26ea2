package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newAnimals.txt")

	require.NoError(t, WriteFile(path, "first report\n"))
	require.NoError(t, WriteFile(path, "second\n"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFile_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newAnimals.txt")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := WriteFile(path, "report\n")
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "newAnimals.txt")
	err := WriteFile(path, "report\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open output")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
