package documents

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesBytes(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("resume.pdf", strings.NewReader("document bytes"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "document bytes", string(content))
	assert.True(t, strings.HasSuffix(path, "_resume.pdf"))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("cv.pdf", strings.NewReader("a"))
	require.NoError(t, err)

	second, err := store.Save("cv.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	require.NoError(t, err)

	path, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	rel, err := filepath.Rel(root, path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(rel, ".."))
	assert.True(t, strings.HasSuffix(path, "_passwd"))
}

func TestExists(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("cv.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	assert.True(t, store.Exists(path))
	assert.False(t, store.Exists(""))
	assert.False(t, store.Exists(path+".missing"))

	require.NoError(t, os.Remove(path))
	assert.False(t, store.Exists(path))
}

func TestNewStoreCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
