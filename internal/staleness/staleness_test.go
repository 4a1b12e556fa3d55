package staleness

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFileWithMtime creates a file with the given content and pins its
// modification time, so tests don't depend on filesystem timestamp granularity.
func writeFileWithMtime(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestMtime(t *testing.T) {
	t.Parallel()

	t.Run("missing path yields the epoch", func(t *testing.T) {
		got := Mtime(filepath.Join(t.TempDir(), "does-not-exist"))
		assert.True(t, got.Equal(time.Unix(0, 0)))
	})

	t.Run("existing file yields its modification time", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "f")
		stamp := time.Now().Add(-time.Hour).Truncate(time.Second)
		writeFileWithMtime(t, path, stamp)
		assert.True(t, Mtime(path).Equal(stamp))
	})
}

func TestUpToDate_MissingDestination(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFileWithMtime(t, src, time.Now())

	ok, err := UpToDate(src, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpToDate_FileSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	writeFileWithMtime(t, dst, base)

	t.Run("older source is up to date", func(t *testing.T) {
		writeFileWithMtime(t, src, base.Add(-time.Minute))
		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("equal mtimes are up to date", func(t *testing.T) {
		writeFileWithMtime(t, src, base)
		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("source one second newer forces a rebuild", func(t *testing.T) {
		writeFileWithMtime(t, src, base.Add(time.Second))
		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing source metadata aborts the check", func(t *testing.T) {
		ok, err := UpToDate(filepath.Join(dir, "nope"), dst)
		require.Error(t, err)
		assert.False(t, ok)

		var metaErr *MetadataError
		require.ErrorAs(t, err, &metaErr)
		assert.Equal(t, filepath.Join(dir, "nope"), metaErr.Path)
	})
}

func TestUpToDate_DirectorySource(t *testing.T) {
	t.Parallel()

	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	setup := func(t *testing.T) (src, dst string) {
		dir := t.TempDir()
		src = filepath.Join(dir, "src")
		dst = filepath.Join(dir, "dst")
		require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0755))
		writeFileWithMtime(t, dst, base)
		return src, dst
	}

	t.Run("strictly older entries are up to date", func(t *testing.T) {
		src, dst := setup(t)
		writeFileWithMtime(t, filepath.Join(src, "a"), base.Add(-time.Minute))
		writeFileWithMtime(t, filepath.Join(src, "nested", "b"), base.Add(-time.Minute))

		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("newer entry forces a rebuild", func(t *testing.T) {
		src, dst := setup(t)
		writeFileWithMtime(t, filepath.Join(src, "a"), base.Add(time.Minute))

		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("entry equal to the threshold forces a rebuild", func(t *testing.T) {
		// Directory entries are compared strictly, unlike a top-level
		// file source where an equal mtime still counts as up to date.
		src, dst := setup(t)
		writeFileWithMtime(t, filepath.Join(src, "a"), base)

		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nested newer entry forces a rebuild", func(t *testing.T) {
		src, dst := setup(t)
		writeFileWithMtime(t, filepath.Join(src, "nested", "b"), base.Add(time.Minute))

		ok, err := UpToDate(src, dst)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
