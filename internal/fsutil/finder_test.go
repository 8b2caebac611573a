package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindManifests(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"b.hcl", "a.hcl", "ignored.txt", "nested/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644))
	}

	files, err := FindManifests(dir, ".hcl")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "a.hcl", filepath.Base(files[0]), "sorted output")
	assert.Equal(t, "b.hcl", filepath.Base(files[1]))
	assert.Equal(t, "c.hcl", filepath.Base(files[2]))
}

func TestFindManifestsSingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "catalog.hcl")
	require.NoError(t, os.WriteFile(file, []byte{}, 0o644))

	files, err := FindManifests(file, "hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestFindManifestsMissingPath(t *testing.T) {
	_, err := FindManifests(filepath.Join(t.TempDir(), "absent"), ".hcl")
	assert.Error(t, err)
}
