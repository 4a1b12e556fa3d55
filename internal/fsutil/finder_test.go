package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.hcl", "nested/b.hcl", "ignored.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	t.Run("walks a directory", func(t *testing.T) {
		files, err := FindFilesByExtension(dir, ".hcl")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "nested", "b.hcl"),
		}, files)
	})

	t.Run("accepts a single matching file", func(t *testing.T) {
		files, err := FindFilesByExtension(filepath.Join(dir, "a.hcl"), ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.hcl")}, files)
	})

	t.Run("non-matching file yields nothing", func(t *testing.T) {
		files, err := FindFilesByExtension(filepath.Join(dir, "ignored.txt"), ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(dir, "absent"), ".hcl")
		require.Error(t, err)
	})
}
