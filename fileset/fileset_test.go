package fileset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/databrickslabs/sandbox/buckets/fileset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(contents), 0o644))
	}
	return dir
}

func TestRecursiveChildren(t *testing.T) {
	dir := populate(t, map[string]string{
		"a.txt":          "alpha",
		"nested/b.txt":   "beta",
		"nested/c.md":    "gamma",
		".git/skipme":    "hidden",
		".hidden/d.note": "hidden too",
	})

	fs, err := fileset.RecursiveChildren(dir)
	require.NoError(t, err)
	require.Len(t, fs, 3)

	var relatives []string
	for _, f := range fs {
		relatives = append(relatives, f.Relative)
	}
	assert.ElementsMatch(t, []string{"a.txt", "nested/b.txt", "nested/c.md"}, relatives)
}

func TestNewMixesFilesAndDirs(t *testing.T) {
	dir := populate(t, map[string]string{
		"one.txt":       "1",
		"sub/two.txt":   "2",
		"sub/three.txt": "3",
	})

	fs, err := fileset.New(filepath.Join(dir, "one.txt"), filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.Len(t, fs, 3)

	_, err = fileset.New(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestFilterByPath(t *testing.T) {
	dir := populate(t, map[string]string{
		"a.txt": "alpha",
		"b.md":  "beta",
	})

	fs, err := fileset.RecursiveChildren(dir)
	require.NoError(t, err)

	onlyText := fs.Filter(`\.txt$`)
	require.Len(t, onlyText, 1)
	assert.True(t, onlyText[0].Ext(".txt"))

	raw, err := onlyText[0].Raw()
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(raw))
}

func TestRoot(t *testing.T) {
	dir := populate(t, map[string]string{"a.txt": "alpha"})

	fs, err := fileset.RecursiveChildren(dir)
	require.NoError(t, err)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, fs.Root())

	assert.Equal(t, ".", fileset.FileSet{}.Root())
}

func TestLastUpdated(t *testing.T) {
	dir := populate(t, map[string]string{"a.txt": "alpha"})

	fs, err := fileset.RecursiveChildren(dir)
	require.NoError(t, err)
	assert.False(t, fs.LastUpdated().IsZero())
}
